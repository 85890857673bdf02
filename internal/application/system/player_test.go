package system

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/kingsdoor/internal/domain/entity"
	"github.com/younwookim/kingsdoor/internal/infrastructure/config"
)

const testDelta = 1000.0 / 60.0

func createTestPlayerSystem(stage *entity.Stage) *PlayerSystem {
	cfg := config.DefaultGameConfig()
	return NewPlayerSystem(&cfg.Player, NewPhysicsSystem(&cfg.Physics, stage))
}

// landPlayer places the player at x and ticks until it stands on the floor
func landPlayer(t *testing.T, sys *PlayerSystem, x float64) *entity.Player {
	t.Helper()
	p := sys.NewPlayer()
	sys.Place(p, entity.Point{X: x, Y: 600}, nil)
	var in InputSnapshot
	for i := 0; i < 100 && !p.IsOnGround(); i++ {
		sys.Update(p, &in, testDelta, nil)
	}
	require.True(t, p.IsOnGround())
	return p
}

func TestPlayerSystem_NewPlayer(t *testing.T) {
	sys := createTestPlayerSystem(createTestStage())

	p := sys.NewPlayer()

	assert.Equal(t, entity.IdleRight, p.State)
	assert.Equal(t, entity.AnimIdleRight, p.Animation.ID)
	assert.Equal(t, 11, p.Animation.Frames)
	assert.True(t, p.Animation.Loop)
	assert.Equal(t, 50.0, p.Hitbox.Width)
}

func TestPlayerSystem_Place(t *testing.T) {
	sys := createTestPlayerSystem(createTestStage())
	p := sys.NewPlayer()
	p.GroundBlock = 4
	sys.SetState(p, entity.FallLeft, nil)

	sys.Place(p, entity.Point{X: 128, Y: 600}, nil)

	assert.Equal(t, entity.Point{X: 128, Y: 600}, entity.Point{X: p.HitboxBounds().Left, Y: p.HitboxBounds().Top})
	assert.Equal(t, entity.NoBlock, p.GroundBlock)
	assert.Equal(t, entity.IdleRight, p.State)
}

func TestPlayerSystem_AirborneFallsUntilGround(t *testing.T) {
	sys := createTestPlayerSystem(createTestStage())
	p := sys.NewPlayer()
	sys.Place(p, entity.Point{X: 100, Y: 400}, nil)
	var in InputSnapshot

	landed := false
	for i := 0; i < 100; i++ {
		prevY := p.Y
		sys.Update(p, &in, testDelta, nil)
		if p.IsOnGround() {
			landed = true
			break
		}
		assert.Greater(t, p.Y, prevY, "tick %d", i)
	}

	require.True(t, landed)
	assert.Zero(t, p.VY)
	assert.Equal(t, entity.BlockID(0), p.GroundBlock)
	assert.Equal(t, 703.0, p.HitboxBounds().Bottom)
}

func TestPlayerSystem_StandingIsStable(t *testing.T) {
	sys := createTestPlayerSystem(createTestStage())
	p := landPlayer(t, sys, 100)
	y := p.Y
	var in InputSnapshot

	for i := 0; i < 60; i++ {
		sys.Update(p, &in, testDelta, nil)
		require.True(t, p.IsOnGround(), "tick %d", i)
		require.Equal(t, y, p.Y, "tick %d", i)
		require.Zero(t, p.VY, "tick %d", i)
	}
}

func TestPlayerSystem_RunRight(t *testing.T) {
	sys := createTestPlayerSystem(createTestStage())
	p := landPlayer(t, sys, 100)
	x := p.X
	var in InputSnapshot
	in.ApplyDirection(DirRight, true)

	sys.Update(p, &in, testDelta, nil)

	assert.Equal(t, entity.RunRight, p.State)
	assert.Equal(t, 5.0, p.VX)
	assert.Equal(t, x+5, p.X)

	in.ApplyDirection(DirRight, false)
	sys.Update(p, &in, testDelta, nil)

	assert.Equal(t, entity.IdleRight, p.State)
	assert.Zero(t, p.VX)
}

func TestPlayerSystem_JumpCycle(t *testing.T) {
	sys := createTestPlayerSystem(createTestStage())
	p := landPlayer(t, sys, 100)
	var in InputSnapshot
	in.ApplyDirection(DirUp, true)

	sys.Update(p, &in, testDelta, nil)

	assert.Equal(t, entity.JumpRight, p.State)
	assert.Equal(t, -24.0, p.VY, "impulse then one gravity step")
	assert.False(t, p.IsOnGround())

	in.ApplyDirection(DirUp, false)
	seenFall := false
	for i := 0; i < 200 && p.State != entity.RunRight; i++ {
		sys.Update(p, &in, testDelta, nil)
		if p.State == entity.FallRight {
			seenFall = true
		}
	}
	assert.True(t, seenFall)
	require.Equal(t, entity.RunRight, p.State, "landing from a fall runs")

	sys.Update(p, &in, testDelta, nil)
	assert.Equal(t, entity.IdleRight, p.State)
}

func TestPlayerSystem_NoJumpImpulseInAir(t *testing.T) {
	sys := createTestPlayerSystem(createTestStage())
	p := sys.NewPlayer()
	sys.Place(p, entity.Point{X: 100, Y: 300}, nil)
	var in InputSnapshot

	sys.Update(p, &in, testDelta, nil)
	require.Equal(t, 1.0, p.VY)

	in.ApplyDirection(DirUp, true)
	sys.Update(p, &in, testDelta, nil)

	assert.Equal(t, entity.JumpRight, p.State)
	assert.Equal(t, 2.0, p.VY, "no impulse without ground")

	sys.Update(p, &in, testDelta, nil)
	assert.Equal(t, entity.FallRight, p.State)
}

func TestPlayerSystem_DoorEntry(t *testing.T) {
	sys := createTestPlayerSystem(createTestStage())
	p := sys.NewPlayer()
	sys.Place(p, entity.Point{X: 1090, Y: 650}, nil)
	var in InputSnapshot

	result := sys.Update(p, &in, testDelta, nil)

	assert.Equal(t, entity.EnterDoorRight, p.State)
	assert.Equal(t, entity.AnimEnterDoorRight, p.Animation.ID)
	assert.False(t, p.Animation.Loop)
	assert.False(t, result.DoorFadeRequested)
}

func TestPlayerSystem_DoorEntryFacingLeft(t *testing.T) {
	sys := createTestPlayerSystem(createTestStage())
	p := sys.NewPlayer()
	sys.Place(p, entity.Point{X: 1090, Y: 650}, nil)
	sys.SetState(p, entity.IdleLeft, nil)
	var in InputSnapshot

	sys.Update(p, &in, testDelta, nil)

	assert.Equal(t, entity.EnterDoorLeft, p.State)
}

func TestPlayerSystem_DoorIsTerminalAndSignalsOnce(t *testing.T) {
	sys := createTestPlayerSystem(createTestStage())
	p := sys.NewPlayer()
	sys.Place(p, entity.Point{X: 1090, Y: 650}, nil)
	var in InputSnapshot
	sys.Update(p, &in, testDelta, nil)
	require.Equal(t, entity.EnterDoorRight, p.State)
	x := p.X

	in.ApplyDirection(DirLeft, true)
	in.ApplyDirection(DirUp, true)

	signals := 0
	for i := 0; i < 100; i++ {
		if sys.Update(p, &in, testDelta, nil).DoorFadeRequested {
			signals++
		}
		require.Equal(t, entity.EnterDoorRight, p.State, "tick %d", i)
	}

	assert.Equal(t, 1, signals)
	assert.Equal(t, x, p.X, "movement input is ignored at the door")
	assert.Equal(t, 7, p.Animation.Frame, "door animation parks on its last frame")
}

func TestPlayerSystem_AnimationClock(t *testing.T) {
	sys := createTestPlayerSystem(createTestStage())
	p := landPlayer(t, sys, 100)
	p.FrameTimer = 0
	p.Animation.Frame = 0
	var in InputSnapshot

	for i := 0; i < 3; i++ {
		sys.Update(p, &in, 20, nil)
	}
	assert.Equal(t, 0, p.Animation.Frame)
	assert.Equal(t, 60.0, p.FrameTimer)

	sys.Update(p, &in, 20, nil)
	assert.Equal(t, 1, p.Animation.Frame)
	assert.Zero(t, p.FrameTimer)
}

func TestPlayerSystem_Restart(t *testing.T) {
	sys := createTestPlayerSystem(createTestStage())
	p := sys.NewPlayer()
	sys.SetState(p, entity.FallLeft, nil)
	p.VX, p.VY = -5, 12

	sys.Restart(p, nil)

	assert.Equal(t, entity.IdleRight, p.State)
	assert.Zero(t, p.VX)
	assert.Zero(t, p.VY)
}

func TestPlayerSystem_LogsStateChanges(t *testing.T) {
	var buf bytes.Buffer
	diag := NewLogDiagnostics(log.New(&buf, "", 0), []string{string(ChannelPlayerState)})
	sys := createTestPlayerSystem(createTestStage())
	p := landPlayer(t, sys, 100)
	var in InputSnapshot
	in.ApplyDirection(DirLeft, true)

	sys.Update(p, &in, testDelta, diag)

	assert.Equal(t, "[player-state] state=runLeft\n", buf.String())
}
