// Package run owns one play-through: the player, the current stage, the
// input snapshot, the clock and the crossfade between levels.
package run

import (
	"fmt"

	"github.com/younwookim/kingsdoor/internal/application/state"
	"github.com/younwookim/kingsdoor/internal/application/system"
	"github.com/younwookim/kingsdoor/internal/domain/entity"
	"github.com/younwookim/kingsdoor/internal/infrastructure/config"
)

// fullOpacity is alpha 1.0 in hundredths
const fullOpacity = 100

// LevelSource supplies parsed levels by 1-based index
type LevelSource interface {
	Level(index int) (*config.LevelData, error)
	Count() int
}

// Controller is the level/run state machine. It is driven by a single tick
// callback and is not safe for concurrent use.
type Controller struct {
	cfg     *config.GameConfig
	levels  LevelSource
	diag    system.Diagnostics
	physics *system.PhysicsSystem
	players *system.PlayerSystem

	player *entity.Player
	input  system.InputSnapshot

	level   int
	elapsed float64
	ended   bool
	outcome state.Outcome

	toOverlay bool
	toLevel   bool
	alpha     int
}

// New creates a controller. Call StartGame before the first Update.
func New(cfg *config.GameConfig, levels LevelSource, diag system.Diagnostics) *Controller {
	if diag == nil {
		diag = system.NopDiagnostics
	}
	physics := system.NewPhysicsSystem(&cfg.Physics, nil)
	players := system.NewPlayerSystem(&cfg.Player, physics)
	return &Controller{
		cfg:     cfg,
		levels:  levels,
		diag:    diag,
		physics: physics,
		players: players,
		player:  players.NewPlayer(),
		level:   cfg.Run.StartLevel,
	}
}

// StartGame resets time, level, player, input and fade, then loads the
// start level
func (c *Controller) StartGame() error {
	c.ended = false
	c.outcome = state.OutcomeNone
	c.elapsed = 0
	c.players.Restart(c.player, c.diag)
	c.input.Reset()
	c.level = c.cfg.Run.StartLevel
	c.physics.SetStage(entity.EmptyStage())

	err := c.RunLevel(false)

	c.toOverlay = false
	c.toLevel = false
	c.alpha = 0

	c.diag.Logf(system.ChannelApp, "game started at level %d", c.level)
	return err
}

// RunLevel optionally moves to the next level and loads it. Moving past the
// last level wins the run instead; nothing is loaded then.
func (c *Controller) RunLevel(increment bool) error {
	if increment {
		c.level++
	}
	if c.level > c.levels.Count() {
		c.endGame()
		c.completeTransition()
		return nil
	}

	c.physics.SetStage(entity.EmptyStage())

	data, err := c.levels.Level(c.level)
	if err != nil {
		return fmt.Errorf("failed to load level %d: %w", c.level, err)
	}
	stage, err := system.LoadStage(data, c.cfg.Door)
	if err != nil {
		return fmt.Errorf("failed to build level %d: %w", c.level, err)
	}

	c.physics.SetStage(stage)
	c.players.Place(c.player, stage.PlayerSpawn, c.diag)
	c.diag.Logf(system.ChannelLevel, "level=%d blocks=%d spawn=(%.0f,%.0f) door=(%.0f,%.0f)",
		c.level, len(stage.Blocks), stage.PlayerSpawn.X, stage.PlayerSpawn.Y, stage.DoorSpawn.X, stage.DoorSpawn.Y)

	c.completeTransition()
	return nil
}

// Update advances the run by deltaMillis. Once the run has ended only the
// fade keeps moving.
func (c *Controller) Update(deltaMillis float64) error {
	if c.ended {
		return c.advanceFade(false)
	}

	c.elapsed += deltaMillis
	if c.elapsed >= c.cfg.Run.MaxTimeMillis {
		// The player does not move on the tick the clock runs out
		c.endGame()
		return nil
	}

	result := c.players.Update(c.player, &c.input, deltaMillis, c.diag)
	if result.DoorFadeRequested && !c.toOverlay {
		c.toOverlay = true
		c.toLevel = false
		c.diag.Logf(system.ChannelLevel, "door reached on level %d", c.level)
	}

	return c.advanceFade(true)
}

// HandleEvent feeds one raw input event into the snapshot
func (c *Controller) HandleEvent(ev system.InputEvent) {
	c.input.Apply(ev, c.player.Bounds(), c.diag)
}

// advanceFade steps the crossfade one tick. Reaching opacity loads the next
// level when allowed; reaching the clear threshold ends the transition.
func (c *Controller) advanceFade(allowLoad bool) error {
	if c.toOverlay {
		if c.alpha < c.cfg.Run.FadeOpaque {
			c.alpha += c.cfg.Run.FadeStep
		} else {
			c.alpha = fullOpacity
			if allowLoad {
				if err := c.RunLevel(true); err != nil {
					return err
				}
			}
		}
	}
	if c.toLevel {
		if c.alpha > c.cfg.Run.FadeClear {
			c.alpha -= c.cfg.Run.FadeStep
		} else {
			c.alpha = 0
			c.toOverlay = false
			c.toLevel = false
		}
	}
	return nil
}

// completeTransition turns a finished fade-out into a fade-in
func (c *Controller) completeTransition() {
	if c.toOverlay {
		c.toOverlay = false
		c.toLevel = true
	}
}

func (c *Controller) endGame() {
	c.ended = true
	c.player.Stop()
	if c.level > c.levels.Count() {
		c.outcome = state.OutcomeWin
	} else {
		c.outcome = state.OutcomeTimeOut
	}
	c.diag.Logf(system.ChannelApp, "run ended: %s after %.0fms", c.outcome, c.elapsed)
}

// State returns the current phase of the run
func (c *Controller) State() state.RunState {
	switch {
	case c.ended:
		return state.StateEnded
	case c.toOverlay:
		return state.StateFadingToOverlay
	case c.toLevel:
		return state.StateFadingToLevel
	default:
		return state.StatePlaying
	}
}

// Ended reports whether the run is over
func (c *Controller) Ended() bool { return c.ended }

// Outcome returns how the run finished, or OutcomeNone while it is running
func (c *Controller) Outcome() state.Outcome { return c.outcome }

// Level returns the current 1-based level index
func (c *Controller) Level() int { return c.level }

// Elapsed returns the run time in milliseconds
func (c *Controller) Elapsed() float64 { return c.elapsed }

// Alpha returns the overlay opacity in [0, 1]
func (c *Controller) Alpha() float64 { return float64(c.alpha) / fullOpacity }

// Player returns the player entity. Callers must treat it as read-only.
func (c *Controller) Player() *entity.Player { return c.player }

// Input returns the current input snapshot
func (c *Controller) Input() system.InputSnapshot { return c.input }

// Stage returns the current stage
func (c *Controller) Stage() *entity.Stage { return c.physics.Stage() }
