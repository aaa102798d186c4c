package input

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/dragresize/internal/app"
	"github.com/Gaurav-Gosain/dragresize/internal/resize"
	"github.com/Gaurav-Gosain/dragresize/internal/resizer"
)

// modifiers converts the key modifiers of a mouse event.
func modifiers(mod tea.KeyMod) resize.Modifiers {
	return resize.Modifiers{
		Shift: mod&tea.ModShift != 0,
		Ctrl:  mod&tea.ModCtrl != 0,
		Alt:   mod&tea.ModAlt != 0,
	}
}

// button maps a terminal mouse button to a selection trigger button.
func button(b tea.MouseButton) int {
	switch b {
	case tea.MouseMiddle:
		return resizer.ButtonMiddle
	case tea.MouseRight:
		return resizer.ButtonSecondary
	}
	return resizer.ButtonPrimary
}

// handleMouseClick starts a drag when a handle is pressed and otherwise
// moves the selection to the image under the pointer.
func handleMouseClick(msg tea.MouseClickMsg, e *app.Editor) (*app.Editor, tea.Cmd) {
	mouse := msg.Mouse()

	if e.ShowHelp {
		e.ShowHelp = false
		return e, nil
	}
	// The status bar is not part of the document.
	if mouse.Y >= e.UsableHeight() {
		return e, nil
	}

	pos := e.CellToDoc(mouse.X, mouse.Y)

	if mouse.Button == tea.MouseLeft {
		if id, ok := e.Resizer.HandleAt(pos, e.HandleSlop()); ok {
			if err := e.Resizer.StartDrag(id, pos, modifiers(mouse.Mod)); err != nil {
				e.Log.Debug("drag refused", "handle", id, "err", err)
				if !errors.Is(err, resizer.ErrNotShown) {
					return e, e.NotifyCmd("Cannot resize right now", "error")
				}
			}
			return e, nil
		}
	}

	if e.Resizer.State() == resizer.StateDragging {
		return e, nil
	}
	e.SelectImage(e.Doc.ImageAt(pos), resizer.Trigger{Pointer: true, Button: button(mouse.Button)})
	return e, nil
}

// handleMouseMotion feeds pointer moves into a running drag.
func handleMouseMotion(msg tea.MouseMotionMsg, e *app.Editor) (*app.Editor, tea.Cmd) {
	if e.Resizer.State() != resizer.StateDragging {
		return e, nil
	}
	mouse := msg.Mouse()
	e.Resizer.UpdateDrag(e.CellToDoc(mouse.X, mouse.Y), modifiers(mouse.Mod))
	return e, nil
}

// handleMouseRelease ends a running drag and reports the committed size.
func handleMouseRelease(msg tea.MouseReleaseMsg, e *app.Editor) (*app.Editor, tea.Cmd) {
	if e.Resizer.State() != resizer.StateDragging {
		return e, nil
	}
	mouse := msg.Mouse()
	// The release position is the last word on the box.
	e.Resizer.UpdateDrag(e.CellToDoc(mouse.X, mouse.Y), modifiers(mouse.Mod))

	target := e.Resizer.Target()
	before := target.Box()
	e.Resizer.EndDrag()

	after := target.Box()
	if after == before {
		return e, nil
	}
	return e, e.NotifyCmd(resizedMessage(after.Width, after.Height), "success")
}

// handleMouseWheel scrolls the document, except while dragging.
func handleMouseWheel(msg tea.MouseWheelMsg, e *app.Editor) (*app.Editor, tea.Cmd) {
	if e.Resizer.State() == resizer.StateDragging {
		return e, nil
	}
	switch msg.Mouse().Button {
	case tea.MouseWheelUp:
		e.Scroll(-1)
	case tea.MouseWheelDown:
		e.Scroll(1)
	}
	return e, nil
}
