package document

import (
	"github.com/Gaurav-Gosain/dragresize/internal/geom"
	"github.com/google/uuid"
)

// Image is an embedded image element. It implements resizer.Element.
type Image struct {
	id       string
	src      string
	alt      string
	box      geom.Box
	resizing bool
}

// NewImage creates an image with a fresh ID.
func NewImage(src, alt string, box geom.Box) *Image {
	return &Image{
		id:  uuid.NewString(),
		src: src,
		alt: alt,
		box: box,
	}
}

// ID returns the element ID.
func (i *Image) ID() string { return i.id }

// Box returns the image bounds in document coordinates.
func (i *Image) Box() geom.Box { return i.box }

// Source returns the image location.
func (i *Image) Source() string { return i.src }

// Alt returns the alternative text.
func (i *Image) Alt() string { return i.alt }

// SetSize changes the rendered size. The position is kept.
func (i *Image) SetSize(width, height float64) {
	i.box.Width = width
	i.box.Height = height
}

// SetResizing toggles the resize marker drawn around the image.
func (i *Image) SetResizing(on bool) { i.resizing = on }

// Resizing reports whether the resize marker is set.
func (i *Image) Resizing() bool { return i.resizing }
