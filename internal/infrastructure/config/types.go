package config

import (
	"fmt"
	"path"
)

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Door    DoorConfig    `yaml:"door"`
	Run     RunConfig     `yaml:"run"`
	Levels  LevelsConfig  `yaml:"levels"`
	Debug   DebugConfig   `yaml:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int     `yaml:"screenWidth"`
	ScreenHeight int     `yaml:"screenHeight"`
	WindowScale  float64 `yaml:"windowScale"`
	TPS          int     `yaml:"tps"`
}

// DeltaMillis is the fixed tick length handed to the run controller
func (d DisplayConfig) DeltaMillis() float64 {
	return 1000 / float64(d.TPS)
}

// PhysicsConfig holds the arcade constants, all in pixels per tick
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`
	MoveSpeed float64 `yaml:"moveSpeed"`
	JumpSpeed float64 `yaml:"jumpSpeed"`
}

// RunConfig configures timing and the level crossfade.
// Fade values are hundredths of full opacity.
type RunConfig struct {
	StartLevel    int     `yaml:"startLevel"`
	MaxTimeMillis float64 `yaml:"maxTimeMillis"`
	FadeStep      int     `yaml:"fadeStep"`
	FadeOpaque    int     `yaml:"fadeOpaque"`
	FadeClear     int     `yaml:"fadeClear"`
}

// LevelsConfig describes where level maps live and how they are laid out
type LevelsConfig struct {
	Count          int    `yaml:"count"`
	PathPattern    string `yaml:"pathPattern"`
	CollisionLayer string `yaml:"collisionLayer"`
	SpawnGroup     string `yaml:"spawnGroup"`
	PlayerObject   string `yaml:"playerObject"`
	DoorObject     string `yaml:"doorObject"`
}

// Path returns the fs.FS path of a level map
func (l LevelsConfig) Path(index int) string {
	return path.Clean(fmt.Sprintf(l.PathPattern, index))
}

type DebugConfig struct {
	Channels []string `yaml:"channels"`
}

// DefaultGameConfig returns the built-in tuning. game.yaml is decoded on top
// of it, so any key the file leaves out keeps its default.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  1280,
			ScreenHeight: 768,
			WindowScale:  0.75,
			TPS:          60,
		},
		Physics: PhysicsConfig{
			Gravity:   1,
			MoveSpeed: 5,
			JumpSpeed: 25,
		},
		Player: PlayerConfig{
			SpriteWidth:  78,
			SpriteHeight: 58,
			Hitbox:       HitboxConfig{OffsetX: 4, OffsetY: 4, Width: 50, Height: 53},
			FPS:          20,
			Animations: map[string]AnimationConfig{
				"idleLeft":       {Frames: 11, Loop: true},
				"idleRight":      {Frames: 11, Loop: true},
				"runLeft":        {Frames: 8, Loop: true},
				"runRight":       {Frames: 8, Loop: true},
				"enterDoorLeft":  {Frames: 8, Loop: false},
				"enterDoorRight": {Frames: 8, Loop: false},
			},
		},
		Door: DoorConfig{Width: 46, Height: 56},
		Run: RunConfig{
			StartLevel:    1,
			MaxTimeMillis: 20000,
			FadeStep:      1,
			FadeOpaque:    90,
			FadeClear:     10,
		},
		Levels: LevelsConfig{
			Count:          3,
			PathPattern:    "levels/level%d.tmx",
			CollisionLayer: "Collisions",
			SpawnGroup:     "Spawns",
			PlayerObject:   "player",
			DoorObject:     "door",
		},
	}
}

// Validate rejects tunings the simulation cannot run with
func (c *GameConfig) Validate() error {
	switch {
	case c.Display.TPS <= 0:
		return fmt.Errorf("%w: display.tps must be positive, got %d", ErrInvalidConfig, c.Display.TPS)
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: display size must be positive", ErrInvalidConfig)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: physics.gravity must be positive", ErrInvalidConfig)
	case c.Physics.MoveSpeed <= 0 || c.Physics.JumpSpeed <= 0:
		return fmt.Errorf("%w: physics speeds must be positive", ErrInvalidConfig)
	case c.Player.SpriteWidth <= 0 || c.Player.SpriteHeight <= 0:
		return fmt.Errorf("%w: player sprite size must be positive", ErrInvalidConfig)
	case c.Player.Hitbox.Width <= 0 || c.Player.Hitbox.Height <= 0:
		return fmt.Errorf("%w: player hitbox size must be positive", ErrInvalidConfig)
	case c.Player.FPS <= 0:
		return fmt.Errorf("%w: player.fps must be positive", ErrInvalidConfig)
	case c.Door.Width <= 0 || c.Door.Height <= 0:
		return fmt.Errorf("%w: door size must be positive", ErrInvalidConfig)
	case c.Levels.Count <= 0:
		return fmt.Errorf("%w: levels.count must be positive", ErrInvalidConfig)
	case c.Run.StartLevel < 1 || c.Run.StartLevel > c.Levels.Count:
		return fmt.Errorf("%w: run.startLevel %d outside [1, %d]", ErrInvalidConfig, c.Run.StartLevel, c.Levels.Count)
	case c.Run.MaxTimeMillis <= 0:
		return fmt.Errorf("%w: run.maxTimeMillis must be positive", ErrInvalidConfig)
	case c.Run.FadeStep <= 0 || c.Run.FadeClear < 0 || c.Run.FadeOpaque <= c.Run.FadeClear || c.Run.FadeOpaque > 100:
		return fmt.Errorf("%w: fade thresholds must satisfy 0 <= clear < opaque <= 100 with a positive step", ErrInvalidConfig)
	}

	for _, name := range AnimationNames {
		anim, ok := c.Player.Animations[name]
		if !ok {
			return fmt.Errorf("%w: missing animation %q", ErrInvalidConfig, name)
		}
		if anim.Frames <= 0 {
			return fmt.Errorf("%w: animation %q needs at least one frame", ErrInvalidConfig, name)
		}
	}
	return nil
}
