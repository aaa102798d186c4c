package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// ResizeSettledMsg is delivered once the viewport has stopped resizing
// for the debounce interval. Gen identifies the resize that scheduled it.
type ResizeSettledMsg struct {
	Gen uint64
}

// ClearNotificationMsg expires the notification with the given sequence.
type ClearNotificationMsg struct {
	Seq int
}

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without creating a circular dependency.
type InputHandler func(msg tea.Msg, e *Editor) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
// This will be set by the main package to break the circular dependency.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init initializes the editor. Mouse tracking and focus reporting are
// configured in View.
func (e *Editor) Init() tea.Cmd {
	return nil
}

// Update handles window, focus and timer messages and forwards input to
// the registered input handler.
func (e *Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.Width = msg.Width
		e.Height = msg.Height
		e.Scroll(0)
		gen := e.Watcher.ViewportResized()
		return e, SettleCmd(gen, e.settleDelay())

	case ResizeSettledMsg:
		if e.Watcher.Debounced(msg.Gen) {
			e.Log.Debug("viewport settled", "gen", msg.Gen, "width", e.Width, "height", e.Height)
		}
		return e, nil

	case ClearNotificationMsg:
		e.clearNotification(msg.Seq)
		return e, nil

	case tea.FocusMsg:
		e.Focused = true
		return e, nil

	case tea.BlurMsg:
		// Losing focus mid-drag cancels the drag; the release would be lost.
		e.Focused = false
		e.Watcher.Blur()
		return e, nil
	}

	if inputHandler != nil {
		return inputHandler(msg, e)
	}
	return e, nil
}

// SettleCmd schedules a ResizeSettledMsg for gen after delay.
func SettleCmd(gen uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ResizeSettledMsg{Gen: gen}
	})
}

// NotifyCmd shows a notification and schedules its removal.
func (e *Editor) NotifyCmd(message, notifType string) tea.Cmd {
	seq := e.Notify(message, notifType)
	return tea.Tick(notificationDuration, func(time.Time) tea.Msg {
		return ClearNotificationMsg{Seq: seq}
	})
}
