// Package document is an in-memory editing surface for the resizer: a flat
// list of positioned images with a selection, a selection lock, a surface
// cursor marker and geometry undo history.
package document

import (
	"maps"
	"slices"

	"github.com/Gaurav-Gosain/dragresize/internal/geom"
	"github.com/Gaurav-Gosain/dragresize/internal/resizer"
)

// Hooks are called around every undo snapshot and history restore.
type Hooks struct {
	BeforeSnapshot func()
	AfterSnapshot  func()
}

// Document implements resizer.Surface.
type Document struct {
	Title string

	images   []*Image
	selected *Image
	locked   bool
	cursors  []string
	overlays []*resizer.Overlay
	history  *History
	saved    snapshot
	hooks    Hooks
}

var _ resizer.Surface = (*Document)(nil)

// New creates a document and records its initial state as the first undo
// step.
func New(title string, images ...*Image) *Document {
	d := &Document{
		Title:   title,
		images:  images,
		history: newHistory(DefaultHistoryLimit),
	}
	d.history.record(d.capture())
	d.saved = d.capture()
	return d
}

// SetHooks installs snapshot hooks.
func (d *Document) SetHooks(h Hooks) { d.hooks = h }

// SetHistoryLimit bounds the undo stack, keeping the current state.
func (d *Document) SetHistoryLimit(n int) {
	d.history = newHistory(n)
	d.history.record(d.capture())
}

// ImageList returns the images in document order.
func (d *Document) ImageList() []*Image { return d.images }

// Images implements resizer.Surface.
func (d *Document) Images() []resizer.Element {
	out := make([]resizer.Element, len(d.images))
	for i, img := range d.images {
		out[i] = img
	}
	return out
}

// Image looks an image up by ID.
func (d *Document) Image(id string) *Image {
	for _, img := range d.images {
		if img.id == id {
			return img
		}
	}
	return nil
}

// ImageAt returns the topmost image containing p.
func (d *Document) ImageAt(p geom.Point) *Image {
	for i := len(d.images) - 1; i >= 0; i-- {
		if d.images[i].box.Contains(p) {
			return d.images[i]
		}
	}
	return nil
}

// Bounds returns the smallest box enclosing every image.
func (d *Document) Bounds() geom.Box {
	if len(d.images) == 0 {
		return geom.Box{}
	}
	b := d.images[0].box
	right, bottom := b.Right(), b.Bottom()
	for _, img := range d.images[1:] {
		b.Left = min(b.Left, img.box.Left)
		b.Top = min(b.Top, img.box.Top)
		right = max(right, img.box.Right())
		bottom = max(bottom, img.box.Bottom())
	}
	b.Width = right - b.Left
	b.Height = bottom - b.Top
	return b
}

// Select makes img the selection; nil clears it. It reports false when the
// selection is locked.
func (d *Document) Select(img *Image) bool {
	if d.locked {
		return false
	}
	d.selected = img
	return true
}

// Selected returns the selected image, if any.
func (d *Document) Selected() *Image { return d.selected }

// Selection implements resizer.Surface.
func (d *Document) Selection() resizer.Selection {
	if d.selected == nil {
		return resizer.Selection{Kind: resizer.SelectionNone}
	}
	return resizer.Selection{Kind: resizer.SelectionElement, Image: d.selected}
}

// LockSelection implements resizer.Surface.
func (d *Document) LockSelection() { d.locked = true }

// UnlockSelection implements resizer.Surface.
func (d *Document) UnlockSelection() { d.locked = false }

// Locked reports whether the selection is locked.
func (d *Document) Locked() bool { return d.locked }

// SetCursor implements resizer.Surface.
func (d *Document) SetCursor(marker string) {
	d.cursors = append(d.cursors, marker)
}

// ClearCursor implements resizer.Surface.
func (d *Document) ClearCursor(marker string) {
	if i := slices.Index(d.cursors, marker); i >= 0 {
		d.cursors = slices.Delete(d.cursors, i, i+1)
	}
}

// Cursor returns the most recent cursor marker, or "".
func (d *Document) Cursor() string {
	if len(d.cursors) == 0 {
		return ""
	}
	return d.cursors[len(d.cursors)-1]
}

// Attach implements resizer.Surface.
func (d *Document) Attach(o *resizer.Overlay) {
	if !slices.Contains(d.overlays, o) {
		d.overlays = append(d.overlays, o)
	}
}

// Detach implements resizer.Surface.
func (d *Document) Detach(o *resizer.Overlay) {
	if i := slices.Index(d.overlays, o); i >= 0 {
		d.overlays = slices.Delete(d.overlays, i, i+1)
	}
}

// Overlays returns the attached overlays.
func (d *Document) Overlays() []*resizer.Overlay { return d.overlays }

// SaveSnapshot implements resizer.Surface.
func (d *Document) SaveSnapshot() {
	d.fire(d.hooks.BeforeSnapshot)
	d.history.record(d.capture())
	d.fire(d.hooks.AfterSnapshot)
}

// History exposes the undo stack.
func (d *Document) History() *History { return d.history }

// Undo restores the previous snapshot.
func (d *Document) Undo() bool {
	s, ok := d.history.undo()
	if ok {
		d.restore(s)
	}
	return ok
}

// Redo restores the next snapshot.
func (d *Document) Redo() bool {
	s, ok := d.history.redo()
	if ok {
		d.restore(s)
	}
	return ok
}

// Modified reports whether the geometry differs from the last save.
func (d *Document) Modified() bool {
	return !maps.Equal(d.saved, d.capture())
}

func (d *Document) markSaved() { d.saved = d.capture() }

func (d *Document) capture() snapshot {
	s := make(snapshot, len(d.images))
	for _, img := range d.images {
		s[img.id] = img.box
	}
	return s
}

func (d *Document) restore(s snapshot) {
	d.fire(d.hooks.BeforeSnapshot)
	for _, img := range d.images {
		if b, ok := s[img.id]; ok {
			img.box = b
		}
	}
	d.fire(d.hooks.AfterSnapshot)
}

func (d *Document) fire(fn func()) {
	if fn != nil {
		fn()
	}
}
