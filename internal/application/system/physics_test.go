package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/kingsdoor/internal/domain/entity"
	"github.com/younwookim/kingsdoor/internal/infrastructure/config"
)

func createTestPhysicsConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Gravity:   1,
		MoveSpeed: 5,
		JumpSpeed: 25,
	}
}

// createTestStage has a floor whose top is at y=704 and a door at the far right
func createTestStage() *entity.Stage {
	return &entity.Stage{
		Width:   1280,
		Height:  768,
		Blocks:  []entity.Rect{entity.NewRect(0, 704, 1280, 64)},
		Door:    entity.NewRect(1100, 648, 46, 56),
		HasDoor: true,
	}
}

func TestNewPhysicsSystem(t *testing.T) {
	cfg := createTestPhysicsConfig()

	sys := NewPhysicsSystem(cfg, nil)

	require.NotNil(t, sys)
	assert.Equal(t, cfg, sys.config)
	require.NotNil(t, sys.Stage(), "nil stage is replaced by an empty one")
	assert.Empty(t, sys.Stage().Blocks)

	stage := createTestStage()
	sys.SetStage(stage)
	assert.Same(t, stage, sys.Stage())
}

func TestPhysicsSystem_HorizontalVelocity(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), nil)

	tests := []struct {
		name string
		in   InputSnapshot
		want float64
	}{
		{"nothing held", InputSnapshot{}, 0},
		{"left", InputSnapshot{Horizontal: AxisNegative}, -5},
		{"right", InputSnapshot{Horizontal: AxisPositive}, 5},
		{"up only", InputSnapshot{Vertical: AxisNegative}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sys.HorizontalVelocity(&tt.in))
		})
	}
}

func TestPhysicsSystem_ApplyGravity(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), nil)
	body := createTestBody(0, 100)

	sys.ApplyGravity(body)
	assert.Equal(t, 1.0, body.VY)
	assert.Equal(t, 101.0, body.Y)

	sys.ApplyGravity(body)
	assert.Equal(t, 2.0, body.VY)
	assert.Equal(t, 103.0, body.Y)
}

func TestPhysicsSystem_IsFalling(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), nil)
	body := createTestBody(0, 0)

	body.VY = 1
	assert.False(t, sys.IsFalling(body), "a single gravity step is not a fall")

	body.VY = 1.5
	assert.True(t, sys.IsFalling(body))

	body.VY = -20
	assert.False(t, sys.IsFalling(body))
}

func TestPhysicsSystem_Jump(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), nil)
	body := createTestBody(0, 0)

	sys.Jump(body)

	assert.Equal(t, -25.0, body.VY)
}

func TestPhysicsSystem_MoveHorizontal(t *testing.T) {
	stage := createTestStage()
	stage.Blocks = append(stage.Blocks, entity.NewRect(300, 600, 64, 104))
	sys := NewPhysicsSystem(createTestPhysicsConfig(), stage)

	body := createTestBody(240, 650)
	body.VX = 5
	for i := 0; i < 10; i++ {
		sys.MoveHorizontal(body)
	}

	assert.Equal(t, 249.0, body.X, "stopped one pixel before the wall")
}

func TestPhysicsSystem_TouchesDoor(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsConfig(), createTestStage())

	assert.True(t, sys.TouchesDoor(createTestBody(1080, 650)))
	assert.False(t, sys.TouchesDoor(createTestBody(500, 650)))
}
