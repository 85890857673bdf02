package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/lafriks/go-tiled"
	"gopkg.in/yaml.v3"
)

// GameConfigFile is the name of the tuning file inside the config FS
const GameConfigFile = "game.yaml"

// Loader loads game configuration and level maps using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadGame loads game.yaml on top of DefaultGameConfig and validates it
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, GameConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", GameConfigFile, err)
	}

	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", GameConfigFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", GameConfigFile, err)
	}

	return cfg, nil
}

// LoadLevel parses one TMX level map.
// Every non-empty tile of the collision layer becomes one collision tile,
// emitted row by row, left to right.
func (l *Loader) LoadLevel(levels LevelsConfig, index int) (*LevelData, error) {
	if index < 1 || index > levels.Count {
		return nil, fmt.Errorf("level %d outside [1, %d]: %w", index, levels.Count, ErrLevelNotFound)
	}

	p := levels.Path(index)
	if _, err := fs.Stat(l.fsys, p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("level %d (%s): %w", index, p, ErrLevelNotFound)
		}
		return nil, fmt.Errorf("failed to stat level %s: %w", p, err)
	}

	levelMap, err := tiled.LoadFile(p, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w: %w", p, ErrMalformedLevelData, err)
	}

	data := &LevelData{
		Index:      index,
		Width:      float64(levelMap.Width * levelMap.TileWidth),
		Height:     float64(levelMap.Height * levelMap.TileHeight),
		TileWidth:  float64(levelMap.TileWidth),
		TileHeight: float64(levelMap.TileHeight),
	}

	var layer *tiled.Layer
	for _, candidate := range levelMap.Layers {
		if candidate.Name == levels.CollisionLayer {
			layer = candidate
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("level %s has no %q tile layer: %w", p, levels.CollisionLayer, ErrMalformedLevelData)
	}
	if len(layer.Tiles) < levelMap.Width*levelMap.Height {
		return nil, fmt.Errorf("level %s layer %q holds %d tiles, want %d: %w",
			p, layer.Name, len(layer.Tiles), levelMap.Width*levelMap.Height, ErrMalformedLevelData)
	}

	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile == nil || tile.IsNil() {
				continue
			}
			data.Collisions = append(data.Collisions, Point{
				X: float64(x) * data.TileWidth,
				Y: float64(y) * data.TileHeight,
			})
		}
	}

	var group *tiled.ObjectGroup
	for _, og := range levelMap.ObjectGroups {
		if og.Name == levels.SpawnGroup {
			group = og
			break
		}
	}
	if group == nil {
		return nil, fmt.Errorf("level %s has no %q object group: %w", p, levels.SpawnGroup, ErrMalformedLevelData)
	}

	var havePlayer, haveDoor bool
	for _, o := range group.Objects {
		switch o.Name {
		case levels.PlayerObject:
			data.PlayerSpawn = Point{X: o.X, Y: o.Y}
			havePlayer = true
		case levels.DoorObject:
			data.DoorSpawn = Point{X: o.X, Y: o.Y}
			haveDoor = true
		}
	}
	if !havePlayer {
		return nil, fmt.Errorf("level %s has no %q spawn: %w", p, levels.PlayerObject, ErrMalformedLevelData)
	}
	if !haveDoor {
		return nil, fmt.Errorf("level %s has no %q spawn: %w", p, levels.DoorObject, ErrMalformedLevelData)
	}

	return data, nil
}
