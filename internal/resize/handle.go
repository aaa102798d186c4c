// Package resize implements the geometry of an image resize: the eight
// handle identities, where they sit around a box, and the calculator that
// turns a drag into a proposed box.
package resize

import (
	"fmt"
	"strings"

	"github.com/Gaurav-Gosain/dragresize/internal/geom"
)

// HandleID names a handle by compass position. The letters are meaningful:
// t, b, l and r name the edges the handle moves and m marks an edge
// midpoint.
type HandleID string

// Handle identities.
const (
	TopLeft      HandleID = "tl"
	TopMiddle    HandleID = "tm"
	TopRight     HandleID = "tr"
	LeftMiddle   HandleID = "lm"
	RightMiddle  HandleID = "rm"
	BottomLeft   HandleID = "bl"
	BottomMiddle HandleID = "bm"
	BottomRight  HandleID = "br"
)

// Handles lists every handle in render order.
var Handles = [...]HandleID{TopLeft, TopMiddle, TopRight, LeftMiddle, RightMiddle, BottomLeft, BottomMiddle, BottomRight}

// ParseHandle converts a handle name such as "br" into a HandleID.
func ParseHandle(s string) (HandleID, error) {
	id := HandleID(strings.ToLower(strings.TrimSpace(s)))
	if !id.Valid() {
		return "", fmt.Errorf("unknown handle %q", s)
	}
	return id, nil
}

// Valid reports whether id is one of the eight handles.
func (id HandleID) Valid() bool {
	for _, h := range Handles {
		if h == id {
			return true
		}
	}
	return false
}

func (id HandleID) has(letter rune) bool {
	return strings.ContainsRune(string(id), letter)
}

// MovesTop reports whether dragging id moves the top edge.
func (id HandleID) MovesTop() bool { return id.has('t') }

// MovesBottom reports whether dragging id moves the bottom edge.
func (id HandleID) MovesBottom() bool { return id.has('b') }

// MovesLeft reports whether dragging id moves the left edge.
func (id HandleID) MovesLeft() bool { return id.has('l') }

// MovesRight reports whether dragging id moves the right edge.
func (id HandleID) MovesRight() bool { return id.has('r') }

// IsCorner reports whether id is a corner handle.
func (id HandleID) IsCorner() bool { return id.Valid() && !id.has('m') }

// Cursor returns the CSS-style resize cursor shown over the handle.
func (id HandleID) Cursor() string {
	switch id {
	case TopLeft, BottomRight:
		return "nwse-resize"
	case TopRight, BottomLeft:
		return "nesw-resize"
	case TopMiddle, BottomMiddle:
		return "ns-resize"
	case LeftMiddle, RightMiddle:
		return "ew-resize"
	}
	return "default"
}

// DraggingMarker is the surface-wide cursor marker applied while id is
// being dragged.
func (id HandleID) DraggingMarker() string {
	return "dragging-" + string(id)
}

// Default handle metrics in pixels.
const (
	DefaultHandleSize  = 6
	DefaultHandleInset = 3
)

// Metrics describes the handle square and how far it is pulled outside the
// box edge.
type Metrics struct {
	Size  float64
	Inset float64
}

// DefaultMetrics returns the stock 6px handle with a 3px inset.
func DefaultMetrics() Metrics {
	return Metrics{Size: DefaultHandleSize, Inset: DefaultHandleInset}
}

// Position returns the top-left corner of handle id for a box of the given
// size, shifted by off. Only box.Width and box.Height are used.
func (m Metrics) Position(id HandleID, box geom.Box, off geom.Point) geom.Point {
	near := -m.Inset
	farX := box.Width - m.Inset - 1
	farY := box.Height - m.Inset - 1
	midX := geom.Round(box.Width/2) - m.Inset
	midY := geom.Round(box.Height/2) - m.Inset

	var p geom.Point
	switch id {
	case TopLeft:
		p = geom.Point{X: near, Y: near}
	case TopMiddle:
		p = geom.Point{X: midX, Y: near}
	case TopRight:
		p = geom.Point{X: farX, Y: near}
	case LeftMiddle:
		p = geom.Point{X: near, Y: midY}
	case RightMiddle:
		p = geom.Point{X: farX, Y: midY}
	case BottomLeft:
		p = geom.Point{X: near, Y: farY}
	case BottomMiddle:
		p = geom.Point{X: midX, Y: farY}
	case BottomRight:
		p = geom.Point{X: farX, Y: farY}
	}
	return p.Add(off)
}

// Layout positions all eight handles.
func (m Metrics) Layout(box geom.Box, off geom.Point) map[HandleID]geom.Point {
	out := make(map[HandleID]geom.Point, len(Handles))
	for _, id := range Handles {
		out[id] = m.Position(id, box, off)
	}
	return out
}

// Bounds returns the square occupied by a handle placed at pos.
func (m Metrics) Bounds(pos geom.Point) geom.Box {
	return geom.Box{Left: pos.X, Top: pos.Y, Width: m.Size, Height: m.Size}
}
