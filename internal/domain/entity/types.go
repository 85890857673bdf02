package entity

// BlockID is a handle into the block list of the current Stage.
type BlockID int

// NoBlock means "no block" (the player is airborne)
const NoBlock BlockID = -1

// PlayerState is one of the ten exclusive player states
type PlayerState int

const (
	IdleLeft PlayerState = iota
	IdleRight
	RunLeft
	RunRight
	JumpLeft
	JumpRight
	FallLeft
	FallRight
	EnterDoorLeft
	EnterDoorRight
)

// PlayerStateCount is the number of valid player states
const PlayerStateCount = 10

// String returns the string representation of the player state
func (s PlayerState) String() string {
	switch s {
	case IdleLeft:
		return "idleLeft"
	case IdleRight:
		return "idleRight"
	case RunLeft:
		return "runLeft"
	case RunRight:
		return "runRight"
	case JumpLeft:
		return "jumpLeft"
	case JumpRight:
		return "jumpRight"
	case FallLeft:
		return "fallLeft"
	case FallRight:
		return "fallRight"
	case EnterDoorLeft:
		return "enterDoorLeft"
	case EnterDoorRight:
		return "enterDoorRight"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the ten known states
func (s PlayerState) Valid() bool {
	return s >= IdleLeft && s <= EnterDoorRight
}

// IsEnterDoor reports whether s is an enter-door state
func (s PlayerState) IsEnterDoor() bool {
	return s == EnterDoorLeft || s == EnterDoorRight
}

// FacesLeft reports whether s is a left-facing state
func (s PlayerState) FacesLeft() bool {
	switch s {
	case IdleLeft, RunLeft, JumpLeft, FallLeft, EnterDoorLeft:
		return true
	}
	return false
}

// AnimationID identifies one of the player's sprite animations
type AnimationID int

const (
	AnimIdleLeft AnimationID = iota
	AnimIdleRight
	AnimRunLeft
	AnimRunRight
	AnimEnterDoorLeft
	AnimEnterDoorRight

	// AnimationCount is the number of player animations
	AnimationCount = 6
)

// AllAnimations lists every animation the player owns
var AllAnimations = []AnimationID{
	AnimIdleLeft, AnimIdleRight,
	AnimRunLeft, AnimRunRight,
	AnimEnterDoorLeft, AnimEnterDoorRight,
}

// String returns the config key of the animation
func (a AnimationID) String() string {
	switch a {
	case AnimIdleLeft:
		return "idleLeft"
	case AnimIdleRight:
		return "idleRight"
	case AnimRunLeft:
		return "runLeft"
	case AnimRunRight:
		return "runRight"
	case AnimEnterDoorLeft:
		return "enterDoorLeft"
	case AnimEnterDoorRight:
		return "enterDoorRight"
	default:
		return "unknown"
	}
}
