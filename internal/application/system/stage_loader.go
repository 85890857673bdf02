package system

import (
	"fmt"

	"github.com/younwookim/kingsdoor/internal/domain/entity"
	"github.com/younwookim/kingsdoor/internal/infrastructure/config"
)

// LoadStage converts parsed level data into a Stage entity.
// Each collision tile becomes one block; the door rectangle is anchored at
// its spawn point.
func LoadStage(data *config.LevelData, door config.DoorConfig) (*entity.Stage, error) {
	if data == nil {
		return nil, fmt.Errorf("no level data: %w", config.ErrMalformedLevelData)
	}
	if data.TileWidth <= 0 || data.TileHeight <= 0 {
		return nil, fmt.Errorf("level %d has tile size %gx%g: %w",
			data.Index, data.TileWidth, data.TileHeight, config.ErrMalformedLevelData)
	}

	blocks := make([]entity.Rect, 0, len(data.Collisions))
	for _, c := range data.Collisions {
		blocks = append(blocks, entity.NewRect(c.X, c.Y, data.TileWidth, data.TileHeight))
	}

	return &entity.Stage{
		Index:       data.Index,
		Width:       data.Width,
		Height:      data.Height,
		Blocks:      blocks,
		Door:        entity.NewRect(data.DoorSpawn.X, data.DoorSpawn.Y, door.Width, door.Height),
		HasDoor:     true,
		PlayerSpawn: entity.Point{X: data.PlayerSpawn.X, Y: data.PlayerSpawn.Y},
		DoorSpawn:   entity.Point{X: data.DoorSpawn.X, Y: data.DoorSpawn.Y},
	}, nil
}
