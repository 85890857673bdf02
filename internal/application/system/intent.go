package system

// Direction is one of the four directional inputs
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Axis is a tri-state directional intent: -1, +1, or 0 when nothing is held
type Axis int8

const (
	AxisNegative Axis = -1
	AxisUnset    Axis = 0
	AxisPositive Axis = 1
)

// EventKind selects which fields of an InputEvent are meaningful
type EventKind uint8

const (
	EventDirection EventKind = iota
	EventSpecial
	EventPointer
)

// PointerPhase is the stage of a mouse or touch gesture
type PointerPhase uint8

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
)

// InputEvent is one raw input the snapshot consumes.
// Events are serialised in replays, hence the short tags.
type InputEvent struct {
	Kind      EventKind    `json:"k"`
	Direction Direction    `json:"d,omitempty"`
	Pressed   bool         `json:"p,omitempty"`
	Phase     PointerPhase `json:"ph,omitempty"`
	X         float64      `json:"x,omitempty"`
	Y         float64      `json:"y,omitempty"`
}

// DirectionEvent builds a key press or release
func DirectionEvent(dir Direction, pressed bool) InputEvent {
	return InputEvent{Kind: EventDirection, Direction: dir, Pressed: pressed}
}

// SpecialEvent builds a modifier press or release
func SpecialEvent(pressed bool) InputEvent {
	return InputEvent{Kind: EventSpecial, Pressed: pressed}
}

// PointerEvent builds a pointer event at level coordinates
func PointerEvent(phase PointerPhase, x, y float64) InputEvent {
	return InputEvent{Kind: EventPointer, Phase: phase, X: x, Y: y}
}
