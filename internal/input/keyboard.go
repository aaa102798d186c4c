package input

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/dragresize/internal/app"
	"github.com/Gaurav-Gosain/dragresize/internal/config"
)

func resizedMessage(w, h float64) string {
	return fmt.Sprintf("Resized to %g×%g", w, h)
}

// HandleKeyPress runs the action bound to the pressed key.
func HandleKeyPress(msg tea.KeyPressMsg, e *app.Editor) (*app.Editor, tea.Cmd) {
	action, ok := e.Keys.Action(msg.String())
	if !ok {
		return e, nil
	}

	// Any key closes the help overlay; its own key just toggles it.
	if e.ShowHelp && action != config.ActionHelp && action != config.ActionQuit {
		e.ShowHelp = false
		return e, nil
	}

	switch action {
	case config.ActionQuit:
		e.Shutdown()
		return e, tea.Quit

	case config.ActionCancel:
		if e.Cancel() {
			return e, e.NotifyCmd("Resize cancelled", "info")
		}
		return e, nil

	case config.ActionUndo:
		if !e.Undo() {
			return e, e.NotifyCmd("Nothing to undo", "info")
		}
		return e, nil

	case config.ActionRedo:
		if !e.Redo() {
			return e, e.NotifyCmd("Nothing to redo", "info")
		}
		return e, nil

	case config.ActionSave:
		if err := e.Save(); err != nil {
			if errors.Is(err, app.ErrNoPath) {
				return e, e.NotifyCmd("No file to save to, start with: dragresize edit FILE", "error")
			}
			e.Log.Error("save failed", "err", err)
			return e, e.NotifyCmd(err.Error(), "error")
		}
		return e, e.NotifyCmd("Saved "+e.Path, "success")

	case config.ActionToggleSnap:
		if e.ToggleSnap() {
			return e, e.NotifyCmd("Snapping on", "info")
		}
		return e, e.NotifyCmd("Snapping off", "info")

	case config.ActionNextImage:
		e.CycleSelection(1)
		return e, nil

	case config.ActionPrevImage:
		e.CycleSelection(-1)
		return e, nil

	case config.ActionHelp:
		e.ShowHelp = !e.ShowHelp
		return e, nil
	}
	return e, nil
}
