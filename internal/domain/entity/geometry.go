package entity

// Point is a position in level pixel coordinates
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in level pixel coordinates.
// Right >= Left and Bottom >= Top.
type Rect struct {
	Top, Right, Bottom, Left float64
}

// NewRect builds a Rect from a top-left corner and a size
func NewRect(x, y, w, h float64) Rect {
	return Rect{Top: y, Right: x + w, Bottom: y + h, Left: x}
}

// Width returns Right - Left
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Overlaps is the inclusive AABB test: touching edges count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left <= o.Right &&
		r.Right >= o.Left &&
		r.Bottom >= o.Top &&
		r.Top <= o.Bottom
}

// Stage is the static geometry of one loaded level.
// Blocks keep the order they were loaded in; a Stage is replaced wholesale
// on every level (re)load and never mutated in place.
type Stage struct {
	Index       int
	Width       float64
	Height      float64
	Blocks      []Rect
	Door        Rect
	HasDoor     bool
	PlayerSpawn Point
	DoorSpawn   Point
}

// Block returns the rectangle behind a handle
func (s *Stage) Block(id BlockID) (Rect, bool) {
	if s == nil || id < 0 || int(id) >= len(s.Blocks) {
		return Rect{}, false
	}
	return s.Blocks[id], true
}

// EmptyStage has no geometry and no door
func EmptyStage() *Stage {
	return &Stage{}
}
