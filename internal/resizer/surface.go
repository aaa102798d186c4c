// Package resizer drives an interactive image resize: it owns the handle
// overlay around the selected image, runs the drag session that feeds the
// resize calculator, and commits the result back to the host document.
//
// The host editing surface is reached only through the Surface and Element
// interfaces, so the package has no knowledge of how the document is drawn
// or where pointer events come from.
package resizer

import "github.com/Gaurav-Gosain/dragresize/internal/geom"

// Element is an image in the host document.
type Element interface {
	// ID identifies the element within its document.
	ID() string
	// Box returns the element's bounding box in document coordinates.
	Box() geom.Box
	// Source returns the image location, used to fill the preview.
	Source() string
	// SetSize applies a committed size.
	SetSize(width, height float64)
	// SetResizing toggles the host's "being resized" marker.
	SetResizing(on bool)
}

// SelectionKind classifies the host selection.
type SelectionKind int

// Selection kinds.
const (
	SelectionNone SelectionKind = iota
	SelectionText
	SelectionElement
)

// Selection is the host's current selection. Image is set when the
// selection starts at an image element.
type Selection struct {
	Kind  SelectionKind
	Image Element
}

// SingleImage reports whether the selection resolves to exactly one image.
func (s Selection) SingleImage() bool {
	return s.Kind != SelectionNone && s.Image != nil
}

// Surface is the editing surface a Resizer is bound to.
type Surface interface {
	// Images lists every image in document order.
	Images() []Element
	// Selection reports the current selection.
	Selection() Selection
	// LockSelection freezes the selection for the duration of a drag.
	LockSelection()
	// UnlockSelection releases a LockSelection.
	UnlockSelection()
	// SaveSnapshot records an undo step.
	SaveSnapshot()
	// SetCursor forces a cursor marker across the whole surface.
	SetCursor(marker string)
	// ClearCursor removes a marker set by SetCursor.
	ClearCursor(marker string)
	// Attach adds the overlay container to the surface.
	Attach(o *Overlay)
	// Detach removes the overlay container from the surface.
	Detach(o *Overlay)
}
