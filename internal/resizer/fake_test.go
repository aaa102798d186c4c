package resizer

import (
	"github.com/Gaurav-Gosain/dragresize/internal/geom"
)

type fakeImage struct {
	id       string
	box      geom.Box
	src      string
	resizing bool
	resized  int
}

func (f *fakeImage) ID() string         { return f.id }
func (f *fakeImage) Box() geom.Box      { return f.box }
func (f *fakeImage) Source() string     { return f.src }
func (f *fakeImage) SetResizing(b bool) { f.resizing = b }
func (f *fakeImage) SetSize(w, h float64) {
	f.box.Width, f.box.Height = w, h
	f.resized++
}

// fakeSurface records every host call in order.
type fakeSurface struct {
	images   []*fakeImage
	sel      Selection
	locked   int
	cursors  []string
	attached []*Overlay
	calls    []string

	beforeSnapshot func()
	afterSnapshot  func()
	snapshots      []map[string]geom.Box
}

func newFakeSurface(images ...*fakeImage) *fakeSurface {
	return &fakeSurface{images: images}
}

func (f *fakeSurface) Images() []Element {
	out := make([]Element, len(f.images))
	for i, img := range f.images {
		out[i] = img
	}
	return out
}

func (f *fakeSurface) Selection() Selection { return f.sel }

func (f *fakeSurface) selectImage(img *fakeImage) {
	if img == nil {
		f.sel = Selection{}
		return
	}
	f.sel = Selection{Kind: SelectionElement, Image: img}
}

func (f *fakeSurface) LockSelection() {
	f.locked++
	f.calls = append(f.calls, "lock")
}

func (f *fakeSurface) UnlockSelection() {
	f.locked--
	f.calls = append(f.calls, "unlock")
}

func (f *fakeSurface) SaveSnapshot() {
	if f.beforeSnapshot != nil {
		f.beforeSnapshot()
	}
	state := make(map[string]geom.Box, len(f.images))
	for _, img := range f.images {
		state[img.id] = img.box
	}
	f.snapshots = append(f.snapshots, state)
	f.calls = append(f.calls, "snapshot")
	if f.afterSnapshot != nil {
		f.afterSnapshot()
	}
}

func (f *fakeSurface) SetCursor(m string) {
	f.cursors = append(f.cursors, m)
	f.calls = append(f.calls, "cursor+"+m)
}

func (f *fakeSurface) ClearCursor(m string) {
	for i, c := range f.cursors {
		if c == m {
			f.cursors = append(f.cursors[:i], f.cursors[i+1:]...)
			break
		}
	}
	f.calls = append(f.calls, "cursor-"+m)
}

func (f *fakeSurface) Attach(o *Overlay) {
	for _, a := range f.attached {
		if a == o {
			return
		}
	}
	f.attached = append(f.attached, o)
	f.calls = append(f.calls, "attach")
}

func (f *fakeSurface) Detach(o *Overlay) {
	for i, a := range f.attached {
		if a == o {
			f.attached = append(f.attached[:i], f.attached[i+1:]...)
			break
		}
	}
	f.calls = append(f.calls, "detach")
}
