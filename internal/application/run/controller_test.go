package run

import (
	"bytes"
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/kingsdoor/internal/application/state"
	"github.com/younwookim/kingsdoor/internal/application/system"
	"github.com/younwookim/kingsdoor/internal/domain/entity"
	"github.com/younwookim/kingsdoor/internal/infrastructure/config"
)

const testDelta = 1000.0 / 60.0

var (
	farSpawn  = config.Point{X: 128, Y: 600}
	farDoor   = config.Point{X: 1088, Y: 648}
	doorSpawn = config.Point{X: 1090, Y: 650}
)

// fakeLevels serves flat levels with a tiled floor at y=704
type fakeLevels struct {
	count  int
	spawns map[int]config.Point
	fail   map[int]error
	loads  []int
}

func newFakeLevels(count int) *fakeLevels {
	return &fakeLevels{
		count:  count,
		spawns: make(map[int]config.Point),
		fail:   make(map[int]error),
	}
}

func (f *fakeLevels) Count() int { return f.count }

func (f *fakeLevels) Level(index int) (*config.LevelData, error) {
	f.loads = append(f.loads, index)
	if err, ok := f.fail[index]; ok {
		return nil, err
	}
	if index < 1 || index > f.count {
		return nil, fmt.Errorf("level %d: %w", index, config.ErrLevelNotFound)
	}
	spawn, ok := f.spawns[index]
	if !ok {
		spawn = farSpawn
	}
	data := &config.LevelData{
		Index:       index,
		Width:       1280,
		Height:      768,
		TileWidth:   64,
		TileHeight:  64,
		PlayerSpawn: spawn,
		DoorSpawn:   farDoor,
	}
	for x := 0; x < 20; x++ {
		data.Collisions = append(data.Collisions, config.Point{X: float64(x) * 64, Y: 704})
	}
	return data, nil
}

func createTestController(t *testing.T, levels *fakeLevels) *Controller {
	t.Helper()
	c := New(config.DefaultGameConfig(), levels, nil)
	require.NoError(t, c.StartGame())
	return c
}

func TestController_StartGame(t *testing.T) {
	levels := newFakeLevels(3)
	c := createTestController(t, levels)

	assert.Equal(t, 1, c.Level())
	assert.Equal(t, state.StatePlaying, c.State())
	assert.Equal(t, state.OutcomeNone, c.Outcome())
	assert.Zero(t, c.Elapsed())
	assert.Zero(t, c.Alpha())
	assert.Equal(t, entity.IdleRight, c.Player().State)
	assert.Equal(t, []int{1}, levels.loads)
	assert.Len(t, c.Stage().Blocks, 20)

	hb := c.Player().HitboxBounds()
	assert.Equal(t, 128.0, hb.Left, "hitbox lands on the spawn")
	assert.Equal(t, 600.0, hb.Top)
}

func TestController_RestartRoundTrip(t *testing.T) {
	c := createTestController(t, newFakeLevels(3))
	c.HandleEvent(system.DirectionEvent(system.DirRight, true))
	c.HandleEvent(system.DirectionEvent(system.DirUp, true))
	for i := 0; i < 30; i++ {
		require.NoError(t, c.Update(testDelta))
	}
	require.NotZero(t, c.Elapsed())

	require.NoError(t, c.StartGame())

	p := c.Player()
	assert.Equal(t, entity.IdleRight, p.State)
	assert.Zero(t, p.VX)
	assert.Zero(t, p.VY)
	assert.Zero(t, c.Elapsed())
	assert.Equal(t, 1, c.Level())
	assert.Equal(t, system.InputSnapshot{}, c.Input())
	assert.Equal(t, entity.NoBlock, p.GroundBlock)
}

func TestController_TimeOutAtLimit(t *testing.T) {
	c := createTestController(t, newFakeLevels(3))

	for i := 0; i < 19; i++ {
		require.NoError(t, c.Update(1000))
	}
	assert.Equal(t, state.StatePlaying, c.State())

	require.NoError(t, c.Update(1000))

	assert.Equal(t, 20000.0, c.Elapsed())
	assert.Equal(t, state.StateEnded, c.State())
	assert.Equal(t, state.OutcomeTimeOut, c.Outcome())
	assert.Equal(t, "Time out!", c.Outcome().String())
	assert.Equal(t, 1, c.Level())
}

func TestController_EndedFreezesGameplay(t *testing.T) {
	c := createTestController(t, newFakeLevels(3))
	require.NoError(t, c.Update(20000))
	require.True(t, c.Ended())
	p := *c.Player()

	c.HandleEvent(system.DirectionEvent(system.DirRight, true))
	for i := 0; i < 10; i++ {
		require.NoError(t, c.Update(testDelta))
	}

	assert.Equal(t, 20000.0, c.Elapsed())
	assert.Equal(t, p.X, c.Player().X)
	assert.Equal(t, p.Y, c.Player().Y)
}

func TestController_WinPastLastLevel(t *testing.T) {
	levels := newFakeLevels(3)
	c := createTestController(t, levels)
	c.level = 3

	require.NoError(t, c.RunLevel(true))

	assert.Equal(t, 4, c.Level())
	assert.Equal(t, state.StateEnded, c.State())
	assert.Equal(t, state.OutcomeWin, c.Outcome())
	assert.Equal(t, "Win!!", c.Outcome().String())
	assert.Equal(t, []int{1}, levels.loads, "no geometry load past the last level")
}

func TestController_FadeLoadsNextLevelOnce(t *testing.T) {
	levels := newFakeLevels(3)
	c := createTestController(t, levels)
	c.toOverlay = true

	for i := 0; i < 90; i++ {
		require.NoError(t, c.Update(1))
	}
	assert.InDelta(t, 0.90, c.Alpha(), 1e-9)
	assert.Equal(t, []int{1}, levels.loads)
	assert.Equal(t, state.StateFadingToOverlay, c.State())

	require.NoError(t, c.Update(1))

	assert.GreaterOrEqual(t, c.Alpha(), 0.91)
	assert.Equal(t, []int{1, 2}, levels.loads)
	assert.Equal(t, 2, c.Level())
	assert.Equal(t, state.StateFadingToLevel, c.State())

	for i := 0; i < 200; i++ {
		require.NoError(t, c.Update(1))
	}
	assert.Equal(t, []int{1, 2}, levels.loads, "no reload while the overlay fades out")
	assert.Zero(t, c.Alpha())
	assert.Equal(t, state.StatePlaying, c.State())
}

func TestController_FadeInSequence(t *testing.T) {
	c := createTestController(t, newFakeLevels(3))
	c.toLevel = true
	c.alpha = 15

	var alphas []int
	for i := 0; i < 7; i++ {
		require.NoError(t, c.Update(1))
		alphas = append(alphas, c.alpha)
	}

	assert.Equal(t, []int{14, 13, 12, 11, 10, 0, 0}, alphas)
	assert.False(t, c.toLevel)
	assert.False(t, c.toOverlay)
}

func TestController_DoorDuringFadeIn(t *testing.T) {
	levels := newFakeLevels(3)
	levels.spawns[1] = doorSpawn
	c := createTestController(t, levels)
	c.toLevel = true
	c.alpha = 50

	for i := 0; i < 100 && c.State() != state.StateFadingToOverlay; i++ {
		require.NoError(t, c.Update(testDelta))
	}
	require.Equal(t, state.StateFadingToOverlay, c.State())
	assert.False(t, c.toLevel, "the door request cancels the fade-in")

	// The fade-out picks up from the current opacity, not from zero
	start := c.alpha
	assert.Greater(t, start, 40)
	require.NoError(t, c.Update(testDelta))
	assert.Greater(t, c.alpha, start)
	assert.Equal(t, 1, c.Level())
}

func TestController_DoorAdvancesLevel(t *testing.T) {
	levels := newFakeLevels(3)
	levels.spawns[1] = doorSpawn
	c := createTestController(t, levels)

	require.NoError(t, c.Update(testDelta))
	require.True(t, c.Player().State.IsEnterDoor())

	for i := 0; i < 300 && c.Level() == 1; i++ {
		require.NoError(t, c.Update(testDelta))
	}

	assert.Equal(t, 2, c.Level())
	assert.Equal(t, []int{1, 2}, levels.loads)
	assert.Equal(t, entity.IdleRight, c.Player().State)
	assert.False(t, c.Ended())
}

func TestController_WinThroughDoors(t *testing.T) {
	levels := newFakeLevels(3)
	for i := 1; i <= 3; i++ {
		levels.spawns[i] = doorSpawn
	}
	c := createTestController(t, levels)

	for i := 0; i < 1000 && !c.Ended(); i++ {
		require.NoError(t, c.Update(testDelta))
	}

	require.True(t, c.Ended())
	assert.Equal(t, state.OutcomeWin, c.Outcome())
	assert.Equal(t, []int{1, 2, 3}, levels.loads)
	assert.Less(t, c.Elapsed(), 20000.0)

	for i := 0; i < 200; i++ {
		require.NoError(t, c.Update(testDelta))
	}
	assert.Zero(t, c.Alpha(), "the final fade-in finishes after the run ends")
	assert.Equal(t, state.StateEnded, c.State())
}

func TestController_LoadErrorPropagates(t *testing.T) {
	levels := newFakeLevels(3)
	levels.spawns[1] = doorSpawn
	levels.fail[2] = fmt.Errorf("level 2: %w", config.ErrMalformedLevelData)
	c := createTestController(t, levels)

	var err error
	for i := 0; i < 300 && err == nil; i++ {
		err = c.Update(testDelta)
	}

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMalformedLevelData)
}

func TestController_StartGameError(t *testing.T) {
	levels := newFakeLevels(3)
	levels.fail[1] = config.ErrLevelNotFound
	c := New(config.DefaultGameConfig(), levels, nil)

	err := c.StartGame()

	assert.ErrorIs(t, err, config.ErrLevelNotFound)
}

func TestController_HandleEvent(t *testing.T) {
	c := createTestController(t, newFakeLevels(3))

	c.HandleEvent(system.DirectionEvent(system.DirLeft, true))
	assert.True(t, c.Input().HasLeft())

	require.NoError(t, c.Update(testDelta))
	assert.Equal(t, entity.RunLeft, c.Player().State)

	c.HandleEvent(system.PointerEvent(system.PointerUp, 0, 0))
	assert.Equal(t, system.InputSnapshot{}, c.Input())
}

func TestController_LogsLevelLoads(t *testing.T) {
	var buf bytes.Buffer
	diag := system.NewLogDiagnostics(log.New(&buf, "", 0), []string{string(system.ChannelLevel)})
	c := New(config.DefaultGameConfig(), newFakeLevels(3), diag)

	require.NoError(t, c.StartGame())

	assert.Contains(t, buf.String(), "[level] level=1 blocks=20")
}
