package resize

import "github.com/Gaurav-Gosain/dragresize/internal/geom"

// Modifiers is the modifier key state sampled with a pointer event.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}

// DragState is the input the calculator needs from an active drag.
type DragState struct {
	Handle HandleID
	Start  geom.Point
	Delta  geom.Point
	Mods   Modifiers
}
