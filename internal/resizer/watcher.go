package resizer

import (
	"time"
)

// DefaultResizeDebounce is how long viewport resizes settle before the
// selection is re-evaluated.
const DefaultResizeDebounce = 50 * time.Millisecond

// Pointer buttons as reported in a Trigger.
const (
	ButtonPrimary   = 0
	ButtonMiddle    = 1
	ButtonSecondary = 2
)

// Trigger describes the input behind a selection change.
type Trigger struct {
	// Pointer is set when the change came from a pointer press.
	Pointer bool
	Button  int
}

// Watcher applies the activation policy: it turns host selection, focus,
// undo and viewport events into Show and Hide calls.
type Watcher struct {
	r        *Resizer
	gen      uint64
	unloaded bool
}

// NewWatcher returns a watcher driving r from r's surface selection.
func NewWatcher(r *Resizer) *Watcher {
	return &Watcher{r: r}
}

// SelectionChanged re-evaluates the selection. A single selected image is
// shown unless the change came from a non-primary button; anything else
// hides the resizer.
func (w *Watcher) SelectionChanged(t Trigger) {
	sel := w.r.surface.Selection()
	if !sel.SingleImage() {
		w.r.Hide()
		return
	}
	if t.Pointer && t.Button != ButtonPrimary {
		return
	}
	w.r.Show(sel.Image)
}

// Blur hides the resizer when the editor loses focus.
func (w *Watcher) Blur() {
	w.r.Hide()
}

// BeforeSnapshot hides the resizer so the handles never end up in undo
// history.
func (w *Watcher) BeforeSnapshot() {
	w.r.Hide()
}

// AfterSnapshot restores the handles once a snapshot has been taken.
func (w *Watcher) AfterSnapshot() {
	w.SelectionChanged(Trigger{})
}

// ModeUnload hides the resizer on content teardown. Only the first call
// has any effect until Reload.
func (w *Watcher) ModeUnload() {
	if w.unloaded {
		return
	}
	w.unloaded = true
	w.r.Hide()
}

// Reload re-arms ModeUnload after new content has been loaded.
func (w *Watcher) Reload() {
	w.unloaded = false
}

// ViewportResized records a viewport resize and returns its generation.
// The host schedules Debounced with that generation after the debounce
// interval.
func (w *Watcher) ViewportResized() uint64 {
	w.gen++
	return w.gen
}

// Debounced re-evaluates the selection if gen is still the latest resize
// and no drag is running. It reports whether the selection was
// re-evaluated.
func (w *Watcher) Debounced(gen uint64) bool {
	if gen != w.gen || w.r.State() == StateDragging {
		return false
	}
	w.SelectionChanged(Trigger{})
	return true
}
