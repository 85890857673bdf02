package run

import (
	"fmt"

	"github.com/younwookim/kingsdoor/internal/application/state"
	"github.com/younwookim/kingsdoor/internal/domain/entity"
)

// PlayerView is the render transform of the player for one frame
type PlayerView struct {
	Bounds    entity.Rect
	Hitbox    entity.Rect
	State     entity.PlayerState
	Animation entity.AnimationID
	Frame     int
}

// View is a read-only snapshot of a run, taken once per tick for drawing
type View struct {
	Level         int
	ElapsedMillis float64
	Alpha         float64
	State         state.RunState
	Outcome       state.Outcome

	StageWidth  float64
	StageHeight float64
	Blocks      []entity.Rect
	Door        entity.Rect
	HasDoor     bool

	Player PlayerView
}

// View takes a snapshot of the run. Blocks are shared with the stage, which
// is never mutated.
func (c *Controller) View() View {
	stage := c.Stage()
	return View{
		Level:         c.level,
		ElapsedMillis: c.elapsed,
		Alpha:         c.Alpha(),
		State:         c.State(),
		Outcome:       c.outcome,
		StageWidth:    stage.Width,
		StageHeight:   stage.Height,
		Blocks:        stage.Blocks,
		Door:          stage.Door,
		HasDoor:       stage.HasDoor,
		Player: PlayerView{
			Bounds:    c.player.Bounds(),
			Hitbox:    c.player.HitboxBounds(),
			State:     c.player.State,
			Animation: c.player.Animation.ID,
			Frame:     c.player.Animation.Frame,
		},
	}
}

// LevelText is the status line for the level
func (v View) LevelText() string {
	return fmt.Sprintf("Level: %d", v.Level)
}

// TimeText is the status line for the clock, in seconds
func (v View) TimeText() string {
	return fmt.Sprintf("Time: %.1f", v.ElapsedMillis/1000)
}
