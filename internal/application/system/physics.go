package system

import (
	"github.com/younwookim/kingsdoor/internal/domain/entity"
	"github.com/younwookim/kingsdoor/internal/infrastructure/config"
)

// PhysicsSystem moves a body through a stage one tick at a time.
// Velocities are pixels per tick; there is no dt scaling.
type PhysicsSystem struct {
	config *config.PhysicsConfig
	stage  *entity.Stage
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig, stage *entity.Stage) *PhysicsSystem {
	if stage == nil {
		stage = entity.EmptyStage()
	}
	return &PhysicsSystem{
		config: cfg,
		stage:  stage,
	}
}

// Stage returns the stage bodies collide with
func (s *PhysicsSystem) Stage() *entity.Stage {
	return s.stage
}

// SetStage swaps in a freshly loaded stage. Ground handles point into the
// old stage's blocks, so callers must reset them (see PlayerSystem.Place).
func (s *PhysicsSystem) SetStage(stage *entity.Stage) {
	if stage == nil {
		stage = entity.EmptyStage()
	}
	s.stage = stage
}

// HorizontalVelocity returns the run speed for the held direction.
// Left wins if both are somehow held.
func (s *PhysicsSystem) HorizontalVelocity(in *InputSnapshot) float64 {
	switch {
	case in.HasLeft():
		return -s.config.MoveSpeed
	case in.HasRight():
		return s.config.MoveSpeed
	default:
		return 0
	}
}

// MoveHorizontal applies VX and resolves horizontal collisions
func (s *PhysicsSystem) MoveHorizontal(body *entity.Body) {
	body.X += body.VX
	ResolveHorizontal(body, s.stage.Blocks)
}

// ApplyGravity accelerates the body downward and moves it by VY
func (s *PhysicsSystem) ApplyGravity(body *entity.Body) {
	body.VY += s.config.Gravity
	body.Y += body.VY
}

// MoveVertical applies gravity and resolves vertical collisions
func (s *PhysicsSystem) MoveVertical(body *entity.Body) {
	s.ApplyGravity(body)
	ResolveVertical(body, s.stage.Blocks)
}

// IsFalling reports whether the body is accelerating downward past a single
// gravity step, which tells a fresh jump apart from a real fall
func (s *PhysicsSystem) IsFalling(body *entity.Body) bool {
	return body.VY > s.config.Gravity
}

// Jump gives the body the jump impulse
func (s *PhysicsSystem) Jump(body *entity.Body) {
	body.VY = -s.config.JumpSpeed
}

// TouchesDoor reports whether the body overlaps the stage door
func (s *PhysicsSystem) TouchesDoor(body *entity.Body) bool {
	return OverlapsDoor(body, s.stage)
}
