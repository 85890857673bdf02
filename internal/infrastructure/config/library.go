package config

import (
	"context"
	"path"
	"sync"

	"golang.org/x/sync/errgroup"
)

// LevelLibrary caches parsed level maps.
// It is safe for concurrent use: Preload and the watcher write from their own
// goroutines while the game loop reads.
type LevelLibrary struct {
	loader *Loader
	levels LevelsConfig

	mu    sync.RWMutex
	cache map[int]*LevelData
}

// NewLevelLibrary creates an empty library reading maps through loader
func NewLevelLibrary(loader *Loader, levels LevelsConfig) *LevelLibrary {
	return &LevelLibrary{
		loader: loader,
		levels: levels,
		cache:  make(map[int]*LevelData),
	}
}

// Count returns the number of levels in a run
func (lib *LevelLibrary) Count() int {
	return lib.levels.Count
}

// Level returns a level, parsing it synchronously on a cache miss
func (lib *LevelLibrary) Level(index int) (*LevelData, error) {
	lib.mu.RLock()
	data, ok := lib.cache[index]
	lib.mu.RUnlock()
	if ok {
		return data, nil
	}

	data, err := lib.loader.LoadLevel(lib.levels, index)
	if err != nil {
		return nil, err
	}

	lib.mu.Lock()
	lib.cache[index] = data
	lib.mu.Unlock()
	return data, nil
}

// Cached reports whether a level is already parsed
func (lib *LevelLibrary) Cached(index int) bool {
	lib.mu.RLock()
	defer lib.mu.RUnlock()
	_, ok := lib.cache[index]
	return ok
}

// Preload parses every level not yet cached. Levels are parsed in parallel;
// the first failure cancels the rest and is returned.
func (lib *LevelLibrary) Preload(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 1; i <= lib.levels.Count; i++ {
		if lib.Cached(i) {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := lib.Level(i)
			return err
		})
	}
	return g.Wait()
}

// Invalidate drops a cached level so the next Level call re-reads it
func (lib *LevelLibrary) Invalidate(index int) {
	lib.mu.Lock()
	delete(lib.cache, index)
	lib.mu.Unlock()
}

// InvalidateFile drops whichever level maps to the given file name.
// Returns the level index, or 0 if the file is not a level of this library.
func (lib *LevelLibrary) InvalidateFile(name string) int {
	base := path.Base(name)
	for i := 1; i <= lib.levels.Count; i++ {
		if path.Base(lib.levels.Path(i)) == base {
			lib.Invalidate(i)
			return i
		}
	}
	return 0
}
