package system

import (
	"github.com/younwookim/kingsdoor/internal/domain/entity"
	"github.com/younwookim/kingsdoor/internal/infrastructure/config"
)

// TickResult reports what a player tick asks of the run controller
type TickResult struct {
	// DoorFadeRequested is set on the one tick the door animation first
	// advances
	DoorFadeRequested bool
}

// PlayerSystem runs the player state machine and moves the player body
type PlayerSystem struct {
	config     *config.PlayerConfig
	physics    *PhysicsSystem
	animations [entity.AnimationCount]entity.Animation
}

// NewPlayerSystem creates a new player system.
// cfg must have passed GameConfig.Validate.
func NewPlayerSystem(cfg *config.PlayerConfig, physics *PhysicsSystem) *PlayerSystem {
	s := &PlayerSystem{
		config:  cfg,
		physics: physics,
	}
	for _, id := range entity.AllAnimations {
		anim := cfg.Animations[id.String()]
		s.animations[id] = entity.Animation{ID: id, Frames: anim.Frames, Loop: anim.Loop}
	}
	return s
}

// Physics returns the physics system the player moves through
func (s *PlayerSystem) Physics() *PhysicsSystem {
	return s.physics
}

// NewPlayer creates a player sized from config, standing in IdleRight
func (s *PlayerSystem) NewPlayer() *entity.Player {
	hb := s.config.Hitbox
	p := entity.NewPlayer(s.config.SpriteWidth, s.config.SpriteHeight, entity.HitboxRect{
		OffsetX: hb.OffsetX,
		OffsetY: hb.OffsetY,
		Width:   hb.Width,
		Height:  hb.Height,
	})
	s.SetState(p, entity.IdleRight, nil)
	return p
}

// SetState switches state and runs its enter action: pick the animation
// and, for jumps, kick off the jump if the player stands on something.
// Re-entering a jump in mid-air therefore never double-jumps.
func (s *PlayerSystem) SetState(p *entity.Player, state entity.PlayerState, diag Diagnostics) {
	p.State = state
	p.Animation = s.animations[AnimationFor(state)]
	p.DoorSignalled = false

	switch state {
	case entity.JumpLeft, entity.JumpRight:
		if p.IsOnGround() {
			s.physics.Jump(&p.Body)
		}
	case entity.EnterDoorLeft, entity.EnterDoorRight:
		p.VX = 0
	}

	diagOrNop(diag).Logf(ChannelPlayerState, "state=%s", state)
}

// Restart zeroes velocity and forces IdleRight
func (s *PlayerSystem) Restart(p *entity.Player, diag Diagnostics) {
	p.Stop()
	s.SetState(p, entity.IdleRight, diag)
}

// Place puts the player's hitbox at spawn on a freshly loaded stage
func (s *PlayerSystem) Place(p *entity.Player, spawn entity.Point, diag Diagnostics) {
	p.GroundBlock = entity.NoBlock
	p.FrameTimer = 0
	p.SetHitboxPosition(spawn)
	s.SetState(p, entity.IdleRight, diag)
}

// EnterDoor starts the door animation
func (s *PlayerSystem) EnterDoor(p *entity.Player, diag Diagnostics) {
	s.SetState(p, DoorStateFor(p.State), diag)
}

// Signals samples the inputs of the transition table
func (s *PlayerSystem) Signals(p *entity.Player, in *InputSnapshot) Signals {
	return Signals{
		Left:     in.HasLeft(),
		Right:    in.HasRight(),
		Up:       in.HasUp(),
		OnGround: p.IsOnGround(),
		Falling:  s.physics.IsFalling(&p.Body),
	}
}

// Update advances the player by one tick:
// state transition, horizontal move and resolve, gravity, vertical resolve,
// door check, then the animation clock.
func (s *PlayerSystem) Update(p *entity.Player, in *InputSnapshot, deltaMillis float64, diag Diagnostics) TickResult {
	var result TickResult
	inDoor := p.State.IsEnterDoor()

	if inDoor {
		p.VX = 0
	} else {
		if next, ok := NextState(p.State, s.Signals(p, in)); ok {
			s.SetState(p, next, diag)
		}
		p.VX = s.physics.HorizontalVelocity(in)
	}

	s.physics.MoveHorizontal(&p.Body)
	s.physics.MoveVertical(&p.Body)

	if !inDoor && s.physics.TouchesDoor(&p.Body) {
		s.EnterDoor(p, diag)
	}

	if p.FrameTimer > s.config.FrameIntervalMillis() {
		p.FrameTimer = 0
		p.Animation.Advance()
		if inDoor && !p.DoorSignalled {
			p.DoorSignalled = true
			result.DoorFadeRequested = true
		}
	} else {
		p.FrameTimer += deltaMillis
	}

	return result
}
