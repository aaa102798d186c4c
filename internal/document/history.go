package document

import (
	"maps"

	"github.com/Gaurav-Gosain/dragresize/internal/geom"
)

// DefaultHistoryLimit bounds the number of undo steps kept.
const DefaultHistoryLimit = 100

// snapshot maps image IDs to their boxes.
type snapshot map[string]geom.Box

// History is a linear undo stack of image geometry. Recording a snapshot
// equal to the current one is a no-op, so bracketing a change with two
// snapshots produces exactly one undo step.
type History struct {
	steps []snapshot
	index int
	limit int
}

func newHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{index: -1, limit: limit}
}

func (h *History) record(s snapshot) bool {
	if h.index >= 0 && maps.Equal(h.steps[h.index], s) {
		return false
	}
	h.steps = append(h.steps[:h.index+1], s)
	if len(h.steps) > h.limit {
		h.steps = h.steps[len(h.steps)-h.limit:]
	}
	h.index = len(h.steps) - 1
	return true
}

// CanUndo reports whether an earlier step exists.
func (h *History) CanUndo() bool { return h.index > 0 }

// CanRedo reports whether a later step exists.
func (h *History) CanRedo() bool { return h.index >= 0 && h.index < len(h.steps)-1 }

// Len returns the number of recorded steps.
func (h *History) Len() int { return len(h.steps) }

func (h *History) undo() (snapshot, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.index--
	return h.steps[h.index], true
}

func (h *History) redo() (snapshot, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.index++
	return h.steps[h.index], true
}
