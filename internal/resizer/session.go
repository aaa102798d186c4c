package resizer

import (
	"github.com/Gaurav-Gosain/dragresize/internal/geom"
	"github.com/Gaurav-Gosain/dragresize/internal/resize"
)

// Session is the state of one drag: the immutable start and the latest
// delta and modifiers.
type Session struct {
	handle  resize.HandleID
	start   geom.Point
	delta   geom.Point
	mods    resize.Modifiers
	updates int
}

// NewSession starts a session on handle at pos with a zero delta.
func NewSession(handle resize.HandleID, pos geom.Point, mods resize.Modifiers) *Session {
	return &Session{handle: handle, start: pos, mods: mods}
}

// Update records the pointer position and modifiers of a move event.
func (s *Session) Update(pos geom.Point, mods resize.Modifiers) {
	s.delta = pos.Sub(s.start)
	s.mods = mods
	s.updates++
}

// Handle returns the handle being dragged.
func (s *Session) Handle() resize.HandleID { return s.handle }

// Delta returns the pointer movement since the start.
func (s *Session) Delta() geom.Point { return s.delta }

// Updates counts the move events seen so far.
func (s *Session) Updates() int { return s.updates }

// State returns the calculator input for the current event.
func (s *Session) State() *resize.DragState {
	return &resize.DragState{
		Handle: s.handle,
		Start:  s.start,
		Delta:  s.delta,
		Mods:   s.mods,
	}
}
