package config

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// LevelWatcher drops cached levels from a LevelLibrary when their map files
// change on disk. The new map is picked up at the next level transition.
type LevelWatcher struct {
	watcher *fsnotify.Watcher
	library *LevelLibrary

	// Events receives the index of every invalidated level
	Events chan int
	Errors chan error

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewLevelWatcher watches dir for level map changes
func NewLevelWatcher(dir string, library *LevelLibrary) (*LevelWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	lw := &LevelWatcher{
		watcher: w,
		library: library,
		Events:  make(chan int, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go lw.run()
	return lw, nil
}

// Close stops the watcher and closes Events and Errors
func (lw *LevelWatcher) Close() error {
	var err error
	lw.once.Do(func() {
		close(lw.closeCh)
		err = lw.watcher.Close()
		<-lw.done
	})
	return err
}

func (lw *LevelWatcher) run() {
	defer func() {
		close(lw.Events)
		close(lw.Errors)
		close(lw.done)
	}()

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-lw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isLevelFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < watchDebounce {
				continue
			}
			last[event.Name] = now

			index := lw.library.InvalidateFile(filepath.ToSlash(event.Name))
			if index == 0 {
				continue
			}
			select {
			case lw.Events <- index:
			default:
			}
		case err, ok := <-lw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case lw.Errors <- err:
			default:
			}
		case <-lw.closeCh:
			return
		}
	}
}

func isLevelFile(name string) bool {
	return strings.ToLower(filepath.Ext(name)) == ".tmx"
}
