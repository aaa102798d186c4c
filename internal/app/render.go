package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/dragresize/internal/config"
	"github.com/Gaurav-Gosain/dragresize/internal/document"
	"github.com/Gaurav-Gosain/dragresize/internal/geom"
	"github.com/Gaurav-Gosain/dragresize/internal/resizer"
	"github.com/Gaurav-Gosain/dragresize/internal/theme"
)

// Layer depths.
const (
	zBackground = 0
	zImages     = 1
	zPreview    = 1000
	zHandles    = 1001
	zStatus     = 2000
	zHelp       = 3000
)

// GetCanvas composes the document, the resize overlay and the chrome.
func (e *Editor) GetCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(e.Width, e.Height)
	var layers []*lipgloss.Layer

	usable := e.UsableHeight()
	bg := lipgloss.NewStyle().
		Width(e.Width).
		Height(usable).
		Background(theme.DocumentBg()).
		Render("")
	layers = append(layers, lipgloss.NewLayer(bg).X(0).Y(0).Z(zBackground))

	for i, img := range e.Doc.ImageList() {
		if l := e.imageLayer(img, zImages+i); l != nil {
			layers = append(layers, l)
		}
	}
	layers = append(layers, e.overlayLayers()...)
	layers = append(layers, lipgloss.NewLayer(e.StatusLine()).X(0).Y(usable).Z(zStatus))

	if e.ShowHelp {
		layers = append(layers, e.helpLayer())
	}

	for _, layer := range layers {
		canvas.Compose(layer)
	}
	return canvas
}

// View renders the editor.
func (e *Editor) View() tea.View {
	var view tea.View
	if e.Width > 0 && e.Height > 0 {
		view.SetContent(lipgloss.Sprint(e.GetCanvas().Render()))
	}

	view.AltScreen = true
	// Motion without a pressed button is ignored, but dragging needs every
	// motion event.
	view.MouseMode = tea.MouseModeAllMotion
	view.ReportFocus = true
	return view
}

func (e *Editor) imageLayer(img *document.Image, z int) *lipgloss.Layer {
	x, y, w, h := e.BoxToCells(img.Box())

	borderColor := theme.ImageBorder(e.Doc.Selected() == img)
	if img.Resizing() {
		borderColor = theme.ImageResizing()
	}

	style := lipgloss.NewStyle().
		Width(w).
		Height(h).
		Background(theme.ImageFill()).
		Foreground(theme.DocumentFg())
	inner := w
	if w > 2 && h > 2 {
		style = style.Border(config.GetBorderForStyle()).BorderForeground(borderColor)
		inner = w - 2
	}

	label := img.Alt()
	if label == "" {
		label = img.Source()
	}
	box := img.Box()
	lines := []string{
		ansi.Truncate(label, inner, "…"),
		ansi.Truncate(fmt.Sprintf("%g×%g", box.Width, box.Height), inner, "…"),
	}

	return e.clippedLayer(style.Render(strings.Join(lines, "\n")), x, y, z)
}

func (e *Editor) overlayLayers() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	for _, o := range e.Doc.Overlays() {
		if o.Preview.Visible {
			layers = append(layers, e.previewLayer(o))
		}
		for _, h := range o.Handles {
			if !h.Visible {
				continue
			}
			centre := o.Origin.Add(h.Pos).Add(geom.Point{X: h.Size / 2, Y: h.Size / 2})
			x, y := e.DocToCell(centre)
			fg := theme.Handle()
			if h.Active {
				fg = theme.HandleActive()
			}
			glyph := lipgloss.NewStyle().Foreground(fg).Render(config.GetHandleGlyph(h.Active))
			if l := e.clippedLayer(glyph, x, y, zHandles); l != nil {
				layers = append(layers, l)
			}
		}
	}
	return layers
}

func (e *Editor) previewLayer(o *resizer.Overlay) *lipgloss.Layer {
	p := o.Preview
	abs := geom.Box{
		Left:   o.Origin.X + p.Box.Left,
		Top:    o.Origin.Y + p.Box.Top,
		Width:  p.Box.Width,
		Height: p.Box.Height,
	}
	x, y, w, h := e.BoxToCells(abs)

	fill := strings.Repeat(config.GetPreviewFillGlyph(), w)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = fill
	}
	rows[0] = ansi.Truncate(fmt.Sprintf("%g×%g", p.Box.Width, p.Box.Height), w, "")

	content := lipgloss.NewStyle().
		Width(w).
		Background(theme.Preview(p.Opacity)).
		Foreground(theme.DocumentFg()).
		Render(strings.Join(rows, "\n"))
	return e.clippedLayer(content, x, y, zPreview)
}

// clippedLayer places content at cell (x, y), cutting whatever falls
// outside the document area. It returns nil when nothing is visible.
func (e *Editor) clippedLayer(content string, x, y, z int) *lipgloss.Layer {
	usable := e.UsableHeight()
	lines := strings.Split(content, "\n")
	if y < 0 {
		if -y >= len(lines) {
			return nil
		}
		lines = lines[-y:]
		y = 0
	}
	if y >= usable || x >= e.Width {
		return nil
	}
	if y+len(lines) > usable {
		lines = lines[:usable-y]
	}
	left := 0
	if x < 0 {
		left = -x
		x = 0
	}
	for i, line := range lines {
		lines[i] = ansi.Cut(line, left, left+e.Width-x)
	}
	return lipgloss.NewLayer(strings.Join(lines, "\n")).X(x).Y(y).Z(z)
}

// StatusLine renders the bottom bar, truncated to the terminal width.
func (e *Editor) StatusLine() string {
	bg, fg := theme.StatusBar()
	sep := " │ "
	if config.UseASCIIOnly {
		sep = " | "
	}

	title := e.Doc.Title
	if title == "" {
		title = "untitled"
	}
	if e.Doc.Modified() {
		title += " [+]"
	}
	parts := []string{title}

	if img := e.Doc.Selected(); img != nil {
		b := img.Box()
		parts = append(parts, fmt.Sprintf("%s %g×%g", img.Alt(), b.Width, b.Height))
	}
	switch e.Resizer.State() {
	case resizer.StateDragging:
		c := e.Resizer.Calculated()
		s := e.Resizer.Session()
		parts = append(parts, fmt.Sprintf("%s → %g×%g (%s)", s.Handle().Cursor(), c.Width, c.Height, e.Doc.Cursor()))
	case resizer.StateShown:
		parts = append(parts, "drag a handle to resize")
	}

	snap := "snap off"
	if e.Resizer.Calculator().Snapping() {
		snap = "snap on"
	}
	parts = append(parts, snap)

	if n := e.Notification; n != nil {
		style := lipgloss.NewStyle().Foreground(theme.StatusAccent())
		if n.Type == "error" {
			style = style.Foreground(theme.NotificationError())
		}
		parts = append(parts, style.Render(n.Message))
	}
	if keys := e.Keys.Keys(config.ActionHelp); len(keys) > 0 {
		parts = append(parts, keys[0]+" help")
	}

	line := ansi.Truncate(" "+strings.Join(parts, sep), e.Width, "…")
	return lipgloss.NewStyle().
		Width(e.Width).
		Background(bg).
		Foreground(fg).
		Render(line)
}

func (e *Editor) helpLayer() *lipgloss.Layer {
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Keybindings"))
	sb.WriteString("\n\n")
	help := e.Keys.Help()
	keyWidth := 0
	for _, kb := range help {
		keyWidth = max(keyWidth, ansi.StringWidth(kb.Key))
	}
	for _, kb := range help {
		fmt.Fprintf(&sb, "%-*s  %s\n", keyWidth, kb.Key, kb.Description)
	}
	sb.WriteString("\nDrag a corner to resize with the aspect ratio kept.\nHold shift to resize freely.")

	box := lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(theme.ImageBorder(true)).
		Background(theme.DocumentBg()).
		Foreground(theme.DocumentFg()).
		Padding(1, 2).
		Render(sb.String())

	x := max((e.Width-lipgloss.Width(box))/2, 0)
	y := max((e.UsableHeight()-lipgloss.Height(box))/2, 0)
	return lipgloss.NewLayer(box).X(x).Y(y).Z(zHelp)
}
