package resize

import (
	"math"

	"github.com/Gaurav-Gosain/dragresize/internal/geom"
)

// Calculator defaults.
const (
	DefaultMinSize       = 32
	DefaultSnapThreshold = 7
)

// Calculator maps a drag onto a proposed box. It holds configuration only;
// Compute has no side effects.
type Calculator struct {
	// MinSize is the floor applied to a dragged dimension. Zero means
	// DefaultMinSize.
	MinSize float64
	// SnapThreshold is the per-axis distance within which a candidate size
	// is adopted exactly. Zero or negative disables snapping.
	SnapThreshold float64
}

// NewCalculator returns a calculator with the stock floor and snap
// threshold.
func NewCalculator() Calculator {
	return Calculator{MinSize: DefaultMinSize, SnapThreshold: DefaultSnapThreshold}
}

// Snapping reports whether sibling sizes are considered at all.
func (c Calculator) Snapping() bool {
	return c.SnapThreshold > 0
}

func (c Calculator) minSize() float64 {
	if c.MinSize <= 0 {
		return DefaultMinSize
	}
	return c.MinSize
}

// Baseline is the calculated box before any delta is applied.
func Baseline(original geom.Box) geom.Box {
	return geom.Box{Width: original.Width, Height: original.Height}
}

// Compute returns the calculated box for drag against original. Left and
// Top of the result are offsets from the original origin. previous is the
// last accepted result; a candidate whose width more than doubles or halves
// relative to it is dropped and previous is returned instead.
//
// The ratio lock on corner handles runs after the size floor. It only ever
// grows the dimension it recomputes, so the floor survives it.
func (c Calculator) Compute(original geom.Box, drag *DragState, others []geom.Box, previous geom.Box) geom.Box {
	out := Baseline(original)
	if drag == nil {
		return out
	}

	floor := c.minSize()
	h := drag.Handle
	if h.MovesRight() {
		out.Width = math.Max(floor, original.Width+drag.Delta.X)
	}
	if h.MovesBottom() {
		out.Height = math.Max(floor, original.Height+drag.Delta.Y)
	}
	if h.MovesLeft() {
		out.Width = math.Max(floor, original.Width-drag.Delta.X)
	}
	if h.MovesTop() {
		out.Height = math.Max(floor, original.Height-drag.Delta.Y)
	}

	if h.IsCorner() && !drag.Mods.Shift {
		ratio := original.Ratio()
		if out.Width/out.Height > ratio {
			out.Height = geom.Round(out.Width / ratio)
		} else {
			out.Width = geom.Round(out.Height * ratio)
		}
	}

	if c.Snapping() {
		if snapped, ok := c.snap(out, others); ok {
			out.Width, out.Height = snapped.Width, snapped.Height
		}
	}

	if h.MovesLeft() {
		out.Left = original.Width - out.Width
	}
	if h.MovesTop() {
		out.Top = original.Height - out.Height
	}

	if previous.Valid() && Jitter(previous, out) {
		return previous
	}
	return out
}

// snap returns the first candidate within the threshold on both axes.
func (c Calculator) snap(box geom.Box, others []geom.Box) (geom.Box, bool) {
	for _, other := range others {
		if math.Abs(box.Width-other.Width) <= c.SnapThreshold &&
			math.Abs(box.Height-other.Height) <= c.SnapThreshold {
			return other, true
		}
	}
	return geom.Box{}, false
}

// Jitter reports whether moving from prev to next changes the width by more
// than the smaller of the two widths.
func Jitter(prev, next geom.Box) bool {
	return math.Abs(prev.Width-next.Width) > math.Min(prev.Width, next.Width)
}
