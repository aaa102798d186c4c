package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Gaurav-Gosain/dragresize/internal/document"
	"github.com/Gaurav-Gosain/dragresize/internal/geom"
	"github.com/Gaurav-Gosain/dragresize/internal/resize"
	"github.com/Gaurav-Gosain/dragresize/internal/resizer"
	"github.com/Gaurav-Gosain/dragresize/internal/tape"
)

// tapeExecutor runs tape commands against an Editor.
type tapeExecutor struct {
	e *Editor
}

var _ tape.Executor = tapeExecutor{}

// TapeExecutor returns a tape.Executor driving the editor.
func (e *Editor) TapeExecutor() tape.Executor {
	return tapeExecutor{e: e}
}

// RunTape executes cmds against the editor, stopping at the first error.
func (e *Editor) RunTape(cmds []tape.Command) error {
	return tape.NewCommandExecutor(e.TapeExecutor()).Run(cmds)
}

// SelectByIndex selects the index-th image (1-based) in document order.
func (t tapeExecutor) SelectByIndex(index int) error {
	images := t.e.Doc.ImageList()
	if index < 1 || index > len(images) {
		return fmt.Errorf("no image %d (document has %d)", index, len(images))
	}
	return t.selectImage(images[index-1])
}

// SelectByName selects the first image whose alt text, source or ID
// matches name, ignoring case.
func (t tapeExecutor) SelectByName(name string) error {
	for _, img := range t.e.Doc.ImageList() {
		if strings.EqualFold(img.Alt(), name) || strings.EqualFold(img.Source(), name) || img.ID() == name {
			return t.selectImage(img)
		}
	}
	return fmt.Errorf("no image named %q", name)
}

func (t tapeExecutor) selectImage(img *document.Image) error {
	t.e.SelectImage(img, resizer.Trigger{})
	if t.e.Resizer.Target() == nil || t.e.Resizer.Target().ID() != img.ID() {
		return fmt.Errorf("could not select %q", img.Alt())
	}
	return nil
}

// NextImage selects the image after the current one.
func (t tapeExecutor) NextImage() error {
	t.e.CycleSelection(1)
	return nil
}

// PrevImage selects the image before the current one.
func (t tapeExecutor) PrevImage() error {
	t.e.CycleSelection(-1)
	return nil
}

// Drag grabs handle at its centre, moves the pointer by (dx, dy) and
// releases it, exactly as a mouse drag would.
func (t tapeExecutor) Drag(handle string, dx, dy float64, shift bool) error {
	id, err := resize.ParseHandle(handle)
	if err != nil {
		return err
	}
	start, ok := t.e.handleCenter(id)
	if !ok {
		return fmt.Errorf("drag %s: %w", id, resizer.ErrNotShown)
	}
	mods := resize.Modifiers{Shift: shift}
	if err := t.e.Resizer.StartDrag(id, start, mods); err != nil {
		return err
	}
	t.e.Resizer.UpdateDrag(start.Add(geom.Point{X: dx, Y: dy}), mods)
	t.e.Resizer.EndDrag()
	t.e.Log.Debug("tape drag", "handle", id, "dx", dx, "dy", dy, "shift", shift)
	return nil
}

// handleCenter returns the document position of the centre of handle id.
func (e *Editor) handleCenter(id resize.HandleID) (geom.Point, bool) {
	if e.Resizer.State() != resizer.StateShown {
		return geom.Point{}, false
	}
	o := e.Resizer.Overlay()
	for _, h := range o.Handles {
		if h.ID == id {
			return o.Origin.Add(geom.Point{X: h.Pos.X + h.Size/2, Y: h.Pos.Y + h.Size/2}), true
		}
	}
	return geom.Point{}, false
}

// Undo reverts the last resize. Unlike the key binding, an empty history
// is an error so a tape cannot silently drift.
func (t tapeExecutor) Undo() error {
	if !t.e.Undo() {
		return errors.New("nothing to undo")
	}
	return nil
}

// Redo reapplies an undone resize.
func (t tapeExecutor) Redo() error {
	if !t.e.Redo() {
		return errors.New("nothing to redo")
	}
	return nil
}

// SetSnap turns snapping on or off.
func (t tapeExecutor) SetSnap(on bool) error {
	if t.e.Resizer.Calculator().Snapping() != on {
		t.e.ToggleSnap()
	}
	return nil
}

// SaveTo writes the document to path, or to its own file when path is
// empty.
func (t tapeExecutor) SaveTo(path string) error {
	if path == "" {
		return t.e.Save()
	}
	if err := t.e.Doc.Save(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
