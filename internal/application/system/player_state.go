package system

import (
	"fmt"

	"github.com/younwookim/kingsdoor/internal/domain/entity"
)

// Signals is everything a player state looks at to pick its successor
type Signals struct {
	Left     bool
	Right    bool
	Up       bool
	OnGround bool
	Falling  bool
}

// NextState is the player transition table. It returns the state to switch
// to, or false when the current state holds. Enter-door states never leave
// on their own; only a level reset moves the player out of them.
// A state outside the ten known ones is a programming error and panics.
func NextState(s entity.PlayerState, sig Signals) (entity.PlayerState, bool) {
	switch s {
	case entity.IdleLeft:
		switch {
		case sig.Up:
			if sig.Right {
				return entity.JumpRight, true
			}
			return entity.JumpLeft, true
		case sig.Left:
			return entity.RunLeft, true
		case sig.Right:
			return entity.RunRight, true
		}
	case entity.IdleRight:
		switch {
		case sig.Up:
			if sig.Left {
				return entity.JumpLeft, true
			}
			return entity.JumpRight, true
		case sig.Left:
			return entity.RunLeft, true
		case sig.Right:
			return entity.RunRight, true
		}
	case entity.RunLeft:
		switch {
		case sig.Up:
			if sig.Right {
				return entity.JumpRight, true
			}
			return entity.JumpLeft, true
		case sig.Right:
			return entity.RunRight, true
		case !sig.Left:
			return entity.IdleLeft, true
		}
	case entity.RunRight:
		switch {
		case sig.Up:
			if sig.Left {
				return entity.JumpLeft, true
			}
			return entity.JumpRight, true
		case sig.Left:
			return entity.RunLeft, true
		case !sig.Right:
			return entity.IdleRight, true
		}
	case entity.JumpLeft:
		if sig.Falling {
			return entity.FallLeft, true
		}
	case entity.JumpRight:
		if sig.Falling {
			return entity.FallRight, true
		}
	case entity.FallLeft:
		if sig.OnGround {
			return entity.RunLeft, true
		}
	case entity.FallRight:
		if sig.OnGround {
			return entity.RunRight, true
		}
	case entity.EnterDoorLeft, entity.EnterDoorRight:
	default:
		panic(fmt.Sprintf("player state %d has no transition handler", int(s)))
	}
	return s, false
}

// AnimationFor returns the animation a state plays. Jumps and falls reuse
// the run animation.
func AnimationFor(s entity.PlayerState) entity.AnimationID {
	switch s {
	case entity.IdleLeft:
		return entity.AnimIdleLeft
	case entity.IdleRight:
		return entity.AnimIdleRight
	case entity.RunLeft, entity.JumpLeft, entity.FallLeft:
		return entity.AnimRunLeft
	case entity.RunRight, entity.JumpRight, entity.FallRight:
		return entity.AnimRunRight
	case entity.EnterDoorLeft:
		return entity.AnimEnterDoorLeft
	case entity.EnterDoorRight:
		return entity.AnimEnterDoorRight
	default:
		panic(fmt.Sprintf("player state %d has no animation", int(s)))
	}
}

// DoorStateFor picks the enter-door state for the state the player was in
// when it reached the door
func DoorStateFor(s entity.PlayerState) entity.PlayerState {
	if s == entity.IdleLeft {
		return entity.EnterDoorLeft
	}
	return entity.EnterDoorRight
}
