// Package config provides configuration constants, keybinding management, and user settings.
package config

import (
	"time"

	"charm.land/lipgloss/v2"
)

// =============================================================================
// Display Defaults
// =============================================================================

const (
	// DefaultCellWidth is how many document pixels one terminal column covers
	DefaultCellWidth = 8

	// DefaultCellHeight is how many document pixels one terminal row covers
	DefaultCellHeight = 16

	// NormalFPS is the render rate of the editor
	NormalFPS = 60

	// StatusBarHeight is the number of rows reserved for the status bar
	StatusBarHeight = 1
)

// NotificationDuration is how long status messages stay visible
const NotificationDuration = 2 * time.Second

// UseASCIIOnly replaces box drawing and block glyphs with plain ASCII
var UseASCIIOnly = false

// BorderStyle is the border drawn around images
var BorderStyle = "rounded"

// =============================================================================
// Handle Glyphs
// =============================================================================

const (
	// HandleGlyph is drawn for an idle resize handle.
	HandleGlyph = "■"
	// HandleGlyphActive is drawn for the handle being dragged.
	HandleGlyphActive = "█"
	// PreviewFillGlyph shades the resize preview.
	PreviewFillGlyph = "░"

	// HandleGlyphASCII is the ASCII fallback for HandleGlyph.
	HandleGlyphASCII = "#"
	// HandleGlyphActiveASCII is the ASCII fallback for HandleGlyphActive.
	HandleGlyphActiveASCII = "@"
	// PreviewFillGlyphASCII is the ASCII fallback for PreviewFillGlyph.
	PreviewFillGlyphASCII = "."
)

// GetHandleGlyph returns the glyph for a handle.
func GetHandleGlyph(active bool) string {
	switch {
	case UseASCIIOnly && active:
		return HandleGlyphActiveASCII
	case UseASCIIOnly:
		return HandleGlyphASCII
	case active:
		return HandleGlyphActive
	}
	return HandleGlyph
}

// GetPreviewFillGlyph returns the glyph used to shade the preview.
func GetPreviewFillGlyph() string {
	if UseASCIIOnly {
		return PreviewFillGlyphASCII
	}
	return PreviewFillGlyph
}

// GetBorderForStyle returns the lipgloss Border for the current style
func GetBorderForStyle() lipgloss.Border {
	if UseASCIIOnly || BorderStyle == "ascii" {
		return lipgloss.ASCIIBorder()
	}
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "block":
		return lipgloss.BlockBorder()
	case "rounded":
		fallthrough
	default:
		return lipgloss.RoundedBorder()
	}
}

// ValidBorderStyles lists the accepted border_style values.
var ValidBorderStyles = []string{"rounded", "normal", "thick", "double", "hidden", "block", "ascii"}
