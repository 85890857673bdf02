package system

import (
	"github.com/younwookim/kingsdoor/internal/domain/entity"
)

// InputSnapshot holds the directional intent currently held by the player.
// Events mutate it between ticks; the tick only reads it.
type InputSnapshot struct {
	Horizontal Axis
	Vertical   Axis
	Special    bool
}

// HasLeft returns true if a left direction is held
func (s InputSnapshot) HasLeft() bool { return s.Horizontal < 0 }

// HasRight returns true if a right direction is held
func (s InputSnapshot) HasRight() bool { return s.Horizontal > 0 }

// HasUp returns true if an up direction is held
func (s InputSnapshot) HasUp() bool { return s.Vertical < 0 }

// HasDown returns true if a down direction is held
func (s InputSnapshot) HasDown() bool { return s.Vertical > 0 }

// HasSpecial returns true if the modifier is held
func (s InputSnapshot) HasSpecial() bool { return s.Special }

// Reset clears every held input
func (s *InputSnapshot) Reset() {
	*s = InputSnapshot{}
}

// Apply consumes one input event. bounds is the player's sprite box, used to
// turn pointer positions into directions.
func (s *InputSnapshot) Apply(ev InputEvent, bounds entity.Rect, diag Diagnostics) {
	diag = diagOrNop(diag)
	switch ev.Kind {
	case EventDirection:
		s.ApplyDirection(ev.Direction, ev.Pressed)
		diag.Logf(ChannelInputDirection, "%s pressed=%t h=%d v=%d", ev.Direction, ev.Pressed, s.Horizontal, s.Vertical)
	case EventSpecial:
		s.Special = ev.Pressed
	case EventPointer:
		diag.Logf(ChannelPointerEvent, "phase=%d px=%.0f py=%.0f", ev.Phase, ev.X, ev.Y)
		s.ApplyPointer(ev.Phase, ev.X, ev.Y, bounds)
		diag.Logf(ChannelInputDirection, "pointer h=%d v=%d special=%t", s.Horizontal, s.Vertical, s.Special)
	}
}

// ApplyDirection presses or releases one direction.
// A release only clears the axis if that same direction is the one held, so a
// late key-up cannot cancel the opposite key that is still down.
func (s *InputSnapshot) ApplyDirection(dir Direction, pressed bool) {
	switch dir {
	case DirLeft:
		s.Horizontal = applyAxis(s.Horizontal, AxisNegative, pressed)
	case DirRight:
		s.Horizontal = applyAxis(s.Horizontal, AxisPositive, pressed)
	case DirUp:
		s.Vertical = applyAxis(s.Vertical, AxisNegative, pressed)
	case DirDown:
		s.Vertical = applyAxis(s.Vertical, AxisPositive, pressed)
	}
}

func applyAxis(current, want Axis, pressed bool) Axis {
	if pressed {
		return want
	}
	if current == want {
		return AxisUnset
	}
	return current
}

// ApplyPointer maps a pointer gesture onto the axes.
// Down, or a move while something is already held, points the axes at the
// pointer relative to bounds; a pointer above the player also sets special.
// Inside the bounds an axis keeps its previous value. Up clears everything.
func (s *InputSnapshot) ApplyPointer(phase PointerPhase, x, y float64, bounds entity.Rect) {
	switch phase {
	case PointerUp:
		s.Reset()
		return
	case PointerMove:
		if !s.pointerHeld() {
			return
		}
	}

	if x >= bounds.Right {
		s.Horizontal = AxisPositive
	} else if x <= bounds.Left {
		s.Horizontal = AxisNegative
	}
	if y <= bounds.Top {
		s.Vertical = AxisNegative
		s.Special = true
	} else if y >= bounds.Bottom {
		s.Vertical = AxisPositive
	}
}

func (s *InputSnapshot) pointerHeld() bool {
	return s.Horizontal != AxisUnset || s.Vertical != AxisUnset
}
