package resizer

import (
	"math"

	"github.com/Gaurav-Gosain/dragresize/internal/geom"
	"github.com/Gaurav-Gosain/dragresize/internal/resize"
)

// DefaultPreviewOpacity is the alpha of the in-progress preview.
const DefaultPreviewOpacity = 0.65

// Overlay is the container the Resizer attaches to the surface. Origin is
// the original box origin; handle and preview positions are relative to it.
// Only the Resizer writes to an Overlay; hosts read it to draw.
type Overlay struct {
	Origin  geom.Point
	Handles []Handle
	Preview Preview
}

// Handle is one drag affordance.
type Handle struct {
	ID      resize.HandleID
	Pos     geom.Point
	Size    float64
	Visible bool
	// Bound is set while drag input is wired to the handle.
	Bound bool
	// Active is set on the handle being dragged.
	Active bool
}

// Bounds returns the handle square relative to the overlay origin.
func (h Handle) Bounds() geom.Box {
	return geom.Box{Left: h.Pos.X, Top: h.Pos.Y, Width: h.Size, Height: h.Size}
}

// Preview is the semi-transparent proxy of the calculated box. The image is
// stretched to fill Box.
type Preview struct {
	Box     geom.Box
	Source  string
	Opacity float64
	Visible bool
}

func (p *Preview) show(src string, box geom.Box) {
	p.Source = src
	p.Box = box
	p.Visible = true
}

func (p *Preview) move(box geom.Box) {
	p.Box = box
}

func (p *Preview) hide() {
	p.Visible = false
}

// handleController lays out the eight handles of an overlay and tracks
// which of them accept drags.
type handleController struct {
	metrics resize.Metrics
	o       *Overlay
}

func newHandleController(m resize.Metrics, o *Overlay) handleController {
	o.Handles = make([]Handle, len(resize.Handles))
	for i, id := range resize.Handles {
		o.Handles[i] = Handle{ID: id, Size: m.Size}
	}
	return handleController{metrics: m, o: o}
}

func (c *handleController) layout(box geom.Box, off geom.Point) {
	for i := range c.o.Handles {
		h := &c.o.Handles[i]
		h.Pos = c.metrics.Position(h.ID, box, off)
	}
}

func (c *handleController) show() {
	for i := range c.o.Handles {
		c.o.Handles[i].Visible = true
	}
}

func (c *handleController) hide() {
	for i := range c.o.Handles {
		c.o.Handles[i].Visible = false
		c.o.Handles[i].Active = false
	}
}

func (c *handleController) bind(on bool) {
	for i := range c.o.Handles {
		c.o.Handles[i].Bound = on
	}
}

func (c *handleController) setActive(id resize.HandleID) {
	for i := range c.o.Handles {
		c.o.Handles[i].Active = c.o.Handles[i].ID == id
	}
}

func (c *handleController) get(id resize.HandleID) (Handle, bool) {
	for _, h := range c.o.Handles {
		if h.ID == id {
			return h, true
		}
	}
	return Handle{}, false
}

// at returns the bound handle under p, which is relative to the overlay
// origin. Each handle square is grown by slop. When several overlap, as on
// small images, the one whose centre is nearest wins.
func (c *handleController) at(p geom.Point, slop float64) (resize.HandleID, bool) {
	var (
		best     resize.HandleID
		bestDist = math.Inf(1)
	)
	for _, h := range c.o.Handles {
		if !h.Visible || !h.Bound {
			continue
		}
		b := h.Bounds().Inflate(slop)
		if !b.Contains(p) {
			continue
		}
		cx := h.Pos.X + h.Size/2
		cy := h.Pos.Y + h.Size/2
		if d := math.Hypot(p.X-cx, p.Y-cy); d < bestDist {
			best, bestDist = h.ID, d
		}
	}
	return best, best != ""
}
