package resizer

import (
	"errors"
	"fmt"
	"io"

	"charm.land/log/v2"
	"github.com/Gaurav-Gosain/dragresize/internal/geom"
	"github.com/Gaurav-Gosain/dragresize/internal/resize"
)

// State is the lifecycle state of a Resizer.
type State int

// Resizer states.
const (
	StateHidden State = iota
	StateShown
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateShown:
		return "shown"
	case StateDragging:
		return "dragging"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Errors returned by StartDrag.
var (
	ErrNotShown      = errors.New("resizer is not shown")
	ErrDragging      = errors.New("drag already in progress")
	ErrUnknownHandle = errors.New("unknown handle")
)

// Options configures a Resizer.
type Options struct {
	Calculator     resize.Calculator
	Metrics        resize.Metrics
	PreviewOpacity float64
	Logger         *log.Logger
}

// DefaultOptions returns the stock calculator, handle metrics and preview
// opacity with logging discarded.
func DefaultOptions() Options {
	return Options{
		Calculator:     resize.NewCalculator(),
		Metrics:        resize.DefaultMetrics(),
		PreviewOpacity: DefaultPreviewOpacity,
	}
}

// Resizer is the per-surface resize controller. It is not safe for
// concurrent use; hosts call it from their single event loop.
type Resizer struct {
	surface Surface
	calc    resize.Calculator
	log     *log.Logger

	state      State
	target     Element
	original   geom.Box
	calculated geom.Box
	others     []geom.Box

	overlay Overlay
	handles handleController
	session *Session
}

// New binds a Resizer to surface.
func New(surface Surface, opts Options) *Resizer {
	if opts.Metrics.Size <= 0 {
		opts.Metrics = resize.DefaultMetrics()
	}
	if opts.PreviewOpacity <= 0 || opts.PreviewOpacity > 1 {
		opts.PreviewOpacity = DefaultPreviewOpacity
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := &Resizer{
		surface: surface,
		calc:    opts.Calculator,
		log:     logger,
	}
	r.overlay.Preview.Opacity = opts.PreviewOpacity
	r.handles = newHandleController(opts.Metrics, &r.overlay)
	return r
}

// State returns the lifecycle state.
func (r *Resizer) State() State { return r.state }

// Target returns the element being resized, or nil when hidden.
func (r *Resizer) Target() Element { return r.target }

// OriginalBox returns the target box captured by Show.
func (r *Resizer) OriginalBox() geom.Box { return r.original }

// Calculated returns the latest accepted calculated box.
func (r *Resizer) Calculated() geom.Box { return r.calculated }

// Overlay exposes the container for drawing. It is only attached to the
// surface while the Resizer is not hidden.
func (r *Resizer) Overlay() *Overlay { return &r.overlay }

// Session returns the active drag session, if any.
func (r *Resizer) Session() *Session { return r.session }

// SetCalculator replaces the calculator. A running drag keeps the
// candidates it collected at start.
func (r *Resizer) SetCalculator(c resize.Calculator) { r.calc = c }

// Calculator returns the calculator in use.
func (r *Resizer) Calculator() resize.Calculator { return r.calc }

// Show attaches the handles around el. Any previously shown target is
// hidden first, so at most one overlay is ever attached.
func (r *Resizer) Show(el Element) {
	if el == nil {
		return
	}
	if r.state != StateHidden {
		r.Hide()
	}

	r.target = el
	r.original = el.Box()
	r.calculated = resize.Baseline(r.original)
	r.overlay.Origin = r.original.Origin()
	r.overlay.Preview.hide()
	r.surface.Attach(&r.overlay)

	r.handles.layout(r.original, geom.Point{})
	r.handles.show()
	r.handles.bind(true)
	el.SetResizing(true)

	r.state = StateShown
	r.log.Debug("resizer shown", "target", el.ID(), "box", r.original)
}

// Hide detaches the overlay. Hiding during a drag cancels the drag without
// committing it.
func (r *Resizer) Hide() {
	if r.state == StateHidden {
		return
	}
	if r.state == StateDragging {
		r.log.Debug("hide during drag, cancelling", "handle", r.session.Handle())
		r.closeSession()
		defer r.surface.UnlockSelection()
	}

	r.handles.bind(false)
	r.handles.hide()
	if r.target != nil {
		r.target.SetResizing(false)
	}
	r.surface.Detach(&r.overlay)

	r.target = nil
	r.state = StateHidden
	r.log.Debug("resizer hidden")
}

// HandleAt returns the handle under p, given in document coordinates. slop
// grows each handle's hit area on every side.
func (r *Resizer) HandleAt(p geom.Point, slop float64) (resize.HandleID, bool) {
	if r.state != StateShown {
		return "", false
	}
	return r.handles.at(p.Sub(r.overlay.Origin), slop)
}

// StartDrag begins a drag on handle at pointer position pos.
func (r *Resizer) StartDrag(handle resize.HandleID, pos geom.Point, mods resize.Modifiers) error {
	switch r.state {
	case StateDragging:
		return fmt.Errorf("start %s: %w", handle, ErrDragging)
	case StateHidden:
		return fmt.Errorf("start %s: %w", handle, ErrNotShown)
	}
	h, ok := r.handles.get(handle)
	if !ok {
		return fmt.Errorf("start %q: %w", handle, ErrUnknownHandle)
	}
	if !h.Bound {
		return fmt.Errorf("start %s: %w", handle, ErrNotShown)
	}

	r.session = NewSession(handle, pos, mods)
	r.state = StateDragging

	r.surface.SetCursor(handle.DraggingMarker())
	r.handles.setActive(handle)
	r.calculated = resize.Baseline(r.original)
	r.overlay.Preview.show(r.target.Source(), r.calculated)
	r.surface.LockSelection()
	r.others = r.candidates()

	r.log.Debug("drag started", "handle", handle, "at", pos, "candidates", len(r.others))
	return nil
}

// UpdateDrag feeds a pointer move into the active drag. It is a no-op when
// no drag is active.
func (r *Resizer) UpdateDrag(pos geom.Point, mods resize.Modifiers) {
	if r.state != StateDragging {
		return
	}
	r.session.Update(pos, mods)

	prev := r.calculated
	r.calculated = r.calc.Compute(r.original, r.session.State(), r.others, prev)
	if r.calculated == prev && r.session.Delta() != (geom.Point{}) {
		r.log.Debug("drag update kept previous box", "delta", r.session.Delta())
	}

	r.overlay.Preview.move(r.calculated)
	r.handles.layout(r.calculated, r.calculated.Origin())
}

// EndDrag finishes the active drag: the overlay is removed, the selection
// unlocked and the final box committed between two undo snapshots. A box
// without a positive size is not committed.
func (r *Resizer) EndDrag() {
	if r.state != StateDragging {
		return
	}
	target := r.target
	final := r.calculated

	r.closeSession()
	r.Hide()
	r.surface.UnlockSelection()

	r.surface.SaveSnapshot()
	r.commit(target, final)
	r.surface.SaveSnapshot()
}

// CancelDrag abandons the active drag without committing or recording
// undo snapshots.
func (r *Resizer) CancelDrag() {
	if r.state != StateDragging {
		return
	}
	r.log.Debug("drag cancelled", "handle", r.session.Handle())
	r.closeSession()
	r.Hide()
	r.surface.UnlockSelection()
}

func (r *Resizer) closeSession() {
	r.surface.ClearCursor(r.session.Handle().DraggingMarker())
	r.overlay.Preview.hide()
	r.handles.setActive("")
	r.session = nil
	r.others = nil
	r.state = StateShown
}

func (r *Resizer) commit(target Element, box geom.Box) {
	if target == nil || !box.Valid() {
		r.log.Debug("commit skipped", "box", box)
		return
	}
	target.SetSize(box.Width, box.Height)
	r.log.Info("image resized", "target", target.ID(), "width", box.Width, "height", box.Height)
}

// candidates snapshots the boxes of every other image. Nothing is collected
// when snapping is disabled.
func (r *Resizer) candidates() []geom.Box {
	if !r.calc.Snapping() {
		return nil
	}
	var out []geom.Box
	for _, el := range r.surface.Images() {
		if el.ID() == r.target.ID() {
			continue
		}
		out = append(out, el.Box())
	}
	return out
}
