package system

import (
	"github.com/younwookim/kingsdoor/internal/domain/entity"
)

// Collision resolution is axis separated and first-match: blocks are scanned
// in stage order and the first overlapping one wins, even if another block is
// nearer. Overlapping blocks listed out of order can therefore snap the body
// to the wrong surface. Levels built from a tile grid never hit this.

// ResolveHorizontal pushes the body out of the first block its hitbox
// overlaps, against the direction of VX. It does nothing when VX is zero.
// Returns the block that was hit, or NoBlock.
func ResolveHorizontal(body *entity.Body, blocks []entity.Rect) entity.BlockID {
	if body.VX == 0 {
		return entity.NoBlock
	}

	hb := body.HitboxBounds()
	for i, block := range blocks {
		if !hb.Overlaps(block) {
			continue
		}
		if body.VX < 0 {
			body.SetHitboxX(block.Right + 1)
		} else {
			body.SetHitboxX(block.Left - body.Hitbox.Width - 1)
		}
		return entity.BlockID(i)
	}
	return entity.NoBlock
}

// ResolveVertical pushes the body out of the first block its hitbox overlaps
// along VY and zeroes VY. A downward hit records the block as the ground;
// anything else leaves the body airborne.
// Returns the block that was hit, or NoBlock.
func ResolveVertical(body *entity.Body, blocks []entity.Rect) entity.BlockID {
	body.GroundBlock = entity.NoBlock
	if body.VY == 0 {
		return entity.NoBlock
	}

	hb := body.HitboxBounds()
	for i, block := range blocks {
		if !hb.Overlaps(block) {
			continue
		}
		if body.VY < 0 {
			body.VY = 0
			body.SetHitboxY(block.Bottom + 1)
		} else {
			body.VY = 0
			body.GroundBlock = entity.BlockID(i)
			body.SetHitboxY(block.Top - body.Hitbox.Height - 1)
		}
		return entity.BlockID(i)
	}
	return entity.NoBlock
}

// OverlapsDoor reports whether the hitbox touches the stage door
func OverlapsDoor(body *entity.Body, stage *entity.Stage) bool {
	if stage == nil || !stage.HasDoor {
		return false
	}
	return body.HitboxBounds().Overlaps(stage.Door)
}
