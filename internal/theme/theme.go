// Package theme provides color themes for the dragresize editor.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"charm.land/log/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming will be disabled and the built-in palette is used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	registerUserThemes()

	if !tint.SetTintID(themeName) {
		log.Warn("unknown theme, using default", "theme", themeName)
		tint.SetTintID("default")
	}
	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Available returns the IDs of every registered theme, custom themes included.
func Available() []string {
	tint.NewDefaultRegistry()
	registerUserThemes()
	return tint.TintIDs()
}

// pick returns the theme colour chosen by sel, or fallback when theming is off.
func pick(sel func(*tint.Tint) *tint.Color, fallback string) color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color(fallback)
	}
	if c := sel(t); c != nil {
		return c
	}
	return lipgloss.Color(fallback)
}

// DocumentBg returns the page background.
func DocumentBg() color.Color {
	return pick(func(t *tint.Tint) *tint.Color { return t.Bg }, "#1e1e2e")
}

// DocumentFg returns the colour of document text.
func DocumentFg() color.Color {
	return pick(func(t *tint.Tint) *tint.Color { return t.Fg }, "#cdd6f4")
}

// ImageFill returns the fill of an image placeholder.
func ImageFill() color.Color {
	return pick(func(t *tint.Tint) *tint.Color { return t.BrightBlack }, "#45475a")
}

// ImageBorder returns the image outline colour.
func ImageBorder(selected bool) color.Color {
	if selected {
		return pick(func(t *tint.Tint) *tint.Color { return t.BrightBlue }, "#89b4fa")
	}
	return pick(func(t *tint.Tint) *tint.Color { return t.White }, "#7f849c")
}

// ImageResizing returns the outline of an image while it is being resized.
func ImageResizing() color.Color {
	return pick(func(t *tint.Tint) *tint.Color { return t.Yellow }, "#f9e2af")
}

// Handle returns the colour of an idle resize handle.
func Handle() color.Color {
	return pick(func(t *tint.Tint) *tint.Color { return t.BrightCyan }, "#94e2d5")
}

// HandleActive returns the colour of the handle being dragged.
func HandleActive() color.Color {
	return pick(func(t *tint.Tint) *tint.Color { return t.BrightPurple }, "#cba6f7")
}

// Preview returns the preview colour blended over the page at opacity.
func Preview(opacity float64) color.Color {
	c := pick(func(t *tint.Tint) *tint.Color { return t.Blue }, "#89b4fa")
	return Blend(c, DocumentBg(), opacity)
}

// StatusBar returns the status bar background and foreground.
func StatusBar() (bg color.Color, fg color.Color) {
	return pick(func(t *tint.Tint) *tint.Color { return t.Black }, "#181825"),
		pick(func(t *tint.Tint) *tint.Color { return t.Fg }, "#cdd6f4")
}

// StatusAccent returns the highlight colour used in the status bar.
func StatusAccent() color.Color {
	return pick(func(t *tint.Tint) *tint.Color { return t.Green }, "#a6e3a1")
}

// NotificationError returns the colour for error messages.
func NotificationError() color.Color {
	return pick(func(t *tint.Tint) *tint.Color { return t.Red }, "#f38ba8")
}

// Blend mixes fg over bg with the given opacity, clamped to [0, 1].
func Blend(fg, bg color.Color, opacity float64) color.Color {
	opacity = min(max(opacity, 0), 1)
	fr, fgG, fb, _ := fg.RGBA()
	br, bgG, bb, _ := bg.RGBA()
	mix := func(a, b uint32) uint8 {
		v := float64(a)*opacity + float64(b)*(1-opacity)
		return uint8(uint32(v+0.5) >> 8)
	}
	return color.RGBA{R: mix(fr, br), G: mix(fgG, bgG), B: mix(fb, bb), A: 0xff}
}
