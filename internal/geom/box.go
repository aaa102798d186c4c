// Package geom holds the small geometric value types shared by the resize
// engine and its hosts. Coordinates are floating-point pixels relative to
// the scrollable document surface.
package geom

import (
	"fmt"
	"math"
)

// Point is a position or a delta on the document surface.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Box is an axis-aligned bounding box.
type Box struct {
	Left   float64 `toml:"left" json:"left"`
	Top    float64 `toml:"top" json:"top"`
	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`
}

// Valid reports whether the box has a strictly positive size.
func (b Box) Valid() bool {
	return b.Width > 0 && b.Height > 0
}

// Origin returns the top-left corner.
func (b Box) Origin() Point {
	return Point{X: b.Left, Y: b.Top}
}

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 { return b.Left + b.Width }

// Bottom returns the y coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Top + b.Height }

// Contains reports whether p lies inside b. The right and bottom edges are
// exclusive.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Left && p.X < b.Right() && p.Y >= b.Top && p.Y < b.Bottom()
}

// Translate returns b moved by d.
func (b Box) Translate(d Point) Box {
	b.Left += d.X
	b.Top += d.Y
	return b
}

// Inflate grows b by n on every side.
func (b Box) Inflate(n float64) Box {
	return Box{Left: b.Left - n, Top: b.Top - n, Width: b.Width + 2*n, Height: b.Height + 2*n}
}

// Ratio returns Width/Height. Callers must check Valid first.
func (b Box) Ratio() float64 {
	return b.Width / b.Height
}

func (b Box) String() string {
	return fmt.Sprintf("%gx%g@(%g,%g)", b.Width, b.Height, b.Left, b.Top)
}

// Round rounds half-way values toward positive infinity, so Round(-2.5) is
// -2 and Round(2.5) is 3. math.Round rounds halves away from zero, which
// would shift handle positions by one pixel for negative offsets.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}
