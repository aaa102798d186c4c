package document

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Gaurav-Gosain/dragresize/internal/geom"
	"github.com/Gaurav-Gosain/dragresize/internal/resize"
	"github.com/Gaurav-Gosain/dragresize/internal/resizer"
)

const layout = `
title = "Trip"

[[image]]
src = "a.png"
alt = "A"
left = 10.0
top = 20.0
width = 100.0
height = 100.0

[[image]]
src = "b.png"
left = 200.0
top = 20.0
width = 104.0
height = 100.0
`

func TestParse(t *testing.T) {
	d, err := Parse([]byte(layout))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Title != "Trip" || len(d.ImageList()) != 2 {
		t.Fatalf("got title %q with %d images", d.Title, len(d.ImageList()))
	}
	a := d.ImageList()[0]
	if a.Source() != "a.png" || a.Alt() != "A" || a.Box() != (geom.Box{Left: 10, Top: 20, Width: 100, Height: 100}) {
		t.Errorf("image a = %q %q %v", a.Source(), a.Alt(), a.Box())
	}
	if a.ID() == d.ImageList()[1].ID() || a.ID() == "" {
		t.Errorf("image IDs not unique: %q", a.ID())
	}
	if d.Modified() {
		t.Error("freshly parsed document reports modified")
	}
}

func TestParseRejectsEmptyImage(t *testing.T) {
	_, err := Parse([]byte("[[image]]\nsrc = \"x.png\"\nwidth = 0.0\nheight = 10.0\n"))
	if !errors.Is(err, ErrInvalidImage) {
		t.Errorf("err = %v, want ErrInvalidImage", err)
	}
	if _, err := Parse([]byte("title = ")); err == nil {
		t.Error("malformed TOML parsed")
	}
}

func TestSaveAndLoad(t *testing.T) {
	d, err := Parse([]byte(layout))
	if err != nil {
		t.Fatal(err)
	}
	d.ImageList()[1].SetSize(150, 144)
	if !d.Modified() {
		t.Fatal("resize did not mark document modified")
	}

	path := filepath.Join(t.TempDir(), "docs", "trip.toml")
	if err := d.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if d.Modified() {
		t.Error("document still modified after save")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := loaded.ImageList()[1].Box(); got != (geom.Box{Left: 200, Top: 20, Width: 150, Height: 144}) {
		t.Errorf("loaded box = %v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}

func TestImageAtTopmost(t *testing.T) {
	under := NewImage("under.png", "", geom.Box{Width: 100, Height: 100})
	over := NewImage("over.png", "", geom.Box{Left: 50, Top: 50, Width: 100, Height: 100})
	d := New("", under, over)

	if got := d.ImageAt(geom.Point{X: 75, Y: 75}); got != over {
		t.Errorf("ImageAt overlap = %v, want over", got)
	}
	if got := d.ImageAt(geom.Point{X: 10, Y: 10}); got != under {
		t.Errorf("ImageAt = %v, want under", got)
	}
	if got := d.ImageAt(geom.Point{X: 500, Y: 500}); got != nil {
		t.Errorf("ImageAt empty = %v, want nil", got)
	}
	if got := d.Bounds(); got != (geom.Box{Width: 150, Height: 150}) {
		t.Errorf("Bounds = %v", got)
	}
}

func TestSelectionLock(t *testing.T) {
	a := NewImage("a.png", "", geom.Box{Width: 10, Height: 10})
	b := NewImage("b.png", "", geom.Box{Left: 20, Width: 10, Height: 10})
	d := New("", a, b)

	if sel := d.Selection(); sel.SingleImage() {
		t.Fatal("empty document has an image selection")
	}
	d.Select(a)
	d.LockSelection()
	if d.Select(b) {
		t.Error("Select succeeded while locked")
	}
	if sel := d.Selection(); sel.Image != resizer.Element(a) {
		t.Errorf("selection = %v, want a", sel.Image)
	}
	d.UnlockSelection()
	if !d.Select(nil) || d.Selected() != nil {
		t.Error("clearing selection failed")
	}
}

func TestCursorMarkers(t *testing.T) {
	d := New("")
	d.SetCursor("dragging-tl")
	d.SetCursor("dragging-br")
	d.ClearCursor("dragging-br")
	if got := d.Cursor(); got != "dragging-tl" {
		t.Errorf("Cursor() = %q, want dragging-tl", got)
	}
	d.ClearCursor("dragging-tl")
	d.ClearCursor("dragging-tl")
	if got := d.Cursor(); got != "" {
		t.Errorf("Cursor() = %q, want empty", got)
	}
}

func TestHistoryUndoRedo(t *testing.T) {
	a := NewImage("a.png", "", geom.Box{Width: 100, Height: 100})
	d := New("", a)

	var before, after int
	d.SetHooks(Hooks{
		BeforeSnapshot: func() { before++ },
		AfterSnapshot:  func() { after++ },
	})

	d.SaveSnapshot()
	a.SetSize(150, 150)
	d.SaveSnapshot()

	if before != 2 || after != 2 {
		t.Errorf("hooks before=%d after=%d, want 2/2", before, after)
	}
	if got := d.History().Len(); got != 2 {
		t.Fatalf("history length = %d, want 2 (duplicate snapshot collapsed)", got)
	}

	if !d.Undo() || a.Box().Width != 100 {
		t.Fatalf("after undo box = %v, want 100 wide", a.Box())
	}
	if d.Undo() {
		t.Error("undo past first step succeeded")
	}
	if !d.Redo() || a.Box().Width != 150 {
		t.Fatalf("after redo box = %v, want 150 wide", a.Box())
	}
	if d.Redo() {
		t.Error("redo past last step succeeded")
	}
}

func TestHistoryLimit(t *testing.T) {
	a := NewImage("a.png", "", geom.Box{Width: 100, Height: 100})
	d := New("", a)
	d.SetHistoryLimit(3)

	for w := 110.0; w <= 150; w += 10 {
		a.SetSize(w, 100)
		d.SaveSnapshot()
	}
	if got := d.History().Len(); got != 3 {
		t.Fatalf("history length = %d, want 3", got)
	}
	for d.Undo() {
	}
	if got := a.Box().Width; got != 130 {
		t.Errorf("oldest width = %v, want 130", got)
	}
}

// The resizer drives the document end to end: one drag produces one undo
// step, and the overlay never outlives the resize.
func TestResizerOnDocument(t *testing.T) {
	a := NewImage("a.png", "", geom.Box{Left: 10, Top: 10, Width: 100, Height: 100})
	b := NewImage("b.png", "", geom.Box{Left: 200, Top: 10, Width: 104, Height: 100})
	d := New("", a, b)

	r := resizer.New(d, resizer.DefaultOptions())
	w := resizer.NewWatcher(r)
	d.SetHooks(Hooks{BeforeSnapshot: w.BeforeSnapshot, AfterSnapshot: w.AfterSnapshot})

	d.Select(a)
	w.SelectionChanged(resizer.Trigger{Pointer: true})
	if len(d.Overlays()) != 1 || !a.Resizing() {
		t.Fatalf("overlays = %d resizing = %v", len(d.Overlays()), a.Resizing())
	}

	if err := r.StartDrag(resize.RightMiddle, geom.Point{X: 110, Y: 60}, resize.Modifiers{}); err != nil {
		t.Fatal(err)
	}
	if !d.Locked() || d.Cursor() != "dragging-rm" {
		t.Errorf("locked = %v cursor = %q", d.Locked(), d.Cursor())
	}
	d.Select(b)
	r.UpdateDrag(geom.Point{X: 115, Y: 60}, resize.Modifiers{})
	r.EndDrag()

	if got := a.Box(); got.Width != 104 || got.Height != 100 {
		t.Errorf("a = %v, want snapped to 104x100", got)
	}
	if d.Selected() != a {
		t.Error("selection changed during locked drag")
	}
	if d.Locked() || d.Cursor() != "" {
		t.Errorf("locked = %v cursor = %q after drag", d.Locked(), d.Cursor())
	}
	if len(d.Overlays()) != 1 || r.State() != resizer.StateShown {
		t.Errorf("overlays = %d state = %v, want re-shown once", len(d.Overlays()), r.State())
	}
	if got := d.History().Len(); got != 2 {
		t.Errorf("history length = %d, want 2", got)
	}

	d.Undo()
	if got := a.Box().Width; got != 100 {
		t.Errorf("after undo width = %v, want 100", got)
	}
	if got := r.OriginalBox().Width; got != 100 {
		t.Errorf("resizer original width = %v, want re-anchored at 100", got)
	}
}
