package config

// AnimationNames lists the player animations every config must define
var AnimationNames = []string{
	"idleLeft",
	"idleRight",
	"runLeft",
	"runRight",
	"enterDoorLeft",
	"enterDoorRight",
}

type PlayerConfig struct {
	SpriteWidth  float64                    `yaml:"spriteWidth"`
	SpriteHeight float64                    `yaml:"spriteHeight"`
	Hitbox       HitboxConfig               `yaml:"hitbox"`
	FPS          int                        `yaml:"fps"`
	Animations   map[string]AnimationConfig `yaml:"animations"`
}

// FrameIntervalMillis is the time one animation frame stays on screen
func (p PlayerConfig) FrameIntervalMillis() float64 {
	return 1000 / float64(p.FPS)
}

// HitboxConfig is the collision box inside the sprite, relative to its centre
type HitboxConfig struct {
	OffsetX float64 `yaml:"offsetX"`
	OffsetY float64 `yaml:"offsetY"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

type AnimationConfig struct {
	Frames int  `yaml:"frames"`
	Loop   bool `yaml:"loop"`
}

type DoorConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}
