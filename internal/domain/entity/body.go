package entity

// HitboxRect is the collision box inside the sprite, centred in the sprite
// and then shifted by the offset.
type HitboxRect struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// Body represents the physical body of the player.
// Position is the top-left anchor of the sprite; the hitbox is never stored,
// it is derived from Position every time it is needed.
type Body struct {
	X, Y   float64
	VX, VY float64

	SpriteWidth  float64
	SpriteHeight float64
	Hitbox       HitboxRect

	// GroundBlock is the block currently supporting the body, or NoBlock
	GroundBlock BlockID
}

// hitboxOrigin returns the top-left corner of the hitbox in level coordinates
func (b *Body) hitboxOrigin() (x, y float64) {
	x = b.X + (b.SpriteWidth-b.Hitbox.Width)/2 + b.Hitbox.OffsetX
	y = b.Y + (b.SpriteHeight-b.Hitbox.Height)/2 + b.Hitbox.OffsetY
	return x, y
}

// HitboxBounds returns the hitbox rectangle for the current position
func (b *Body) HitboxBounds() Rect {
	x, y := b.hitboxOrigin()
	return NewRect(x, y, b.Hitbox.Width, b.Hitbox.Height)
}

// Bounds returns the sprite bounding box
func (b *Body) Bounds() Rect {
	return NewRect(b.X, b.Y, b.SpriteWidth, b.SpriteHeight)
}

// SetHitboxX moves the body so the hitbox left edge lands on x
func (b *Body) SetHitboxX(x float64) {
	hx, _ := b.hitboxOrigin()
	b.X = x + (b.X - hx)
}

// SetHitboxY moves the body so the hitbox top edge lands on y
func (b *Body) SetHitboxY(y float64) {
	_, hy := b.hitboxOrigin()
	b.Y = y + (b.Y - hy)
}

// SetHitboxPosition moves the body so the hitbox top-left lands on p
func (b *Body) SetHitboxPosition(p Point) {
	b.SetHitboxX(p.X)
	b.SetHitboxY(p.Y)
}

// IsOnGround returns true if a block supports the body
func (b *Body) IsOnGround() bool {
	return b.GroundBlock != NoBlock
}

// Stop zeroes the velocity
func (b *Body) Stop() {
	b.VX = 0
	b.VY = 0
}

// Animation is the frame cursor of one sprite animation
type Animation struct {
	ID     AnimationID
	Frame  int
	Frames int
	Loop   bool
}

// Advance moves to the next frame, wrapping only for looping animations.
// Returns false if the animation is parked on its last frame.
func (a *Animation) Advance() bool {
	if a.Frame < a.Frames-1 {
		a.Frame++
		return true
	}
	if a.Loop {
		a.Frame = 0
		return true
	}
	return false
}

// Player represents the player entity
type Player struct {
	Body

	State     PlayerState
	Animation Animation

	// FrameTimer accumulates milliseconds until the next animation frame
	FrameTimer float64

	// DoorSignalled is set once the enter-door animation has asked for the fade
	DoorSignalled bool
}

// NewPlayer creates a player with the given sprite size and hitbox, standing
// in the initial IdleRight state at the origin.
func NewPlayer(spriteWidth, spriteHeight float64, hitbox HitboxRect) *Player {
	return &Player{
		Body: Body{
			SpriteWidth:  spriteWidth,
			SpriteHeight: spriteHeight,
			Hitbox:       hitbox,
			GroundBlock:  NoBlock,
		},
		State:     IdleRight,
		Animation: Animation{ID: AnimIdleRight, Frames: 1, Loop: true},
	}
}
