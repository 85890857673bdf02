package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/kingsdoor/internal/application/game"
	"github.com/younwookim/kingsdoor/internal/application/scene/playing"
	"github.com/younwookim/kingsdoor/internal/application/system"
	"github.com/younwookim/kingsdoor/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

// loadEmbedded returns a loader over the embedded configs and the game config
func loadEmbedded() (*config.Loader, *config.GameConfig, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadGame()
	if err != nil {
		return nil, nil, err
	}
	return loader, cfg, nil
}

// debugChannels picks the diagnostics channels: the flag wins over the config
func debugChannels(flagValue string, cfg *config.GameConfig) []string {
	if flagValue == "" {
		return cfg.Debug.Channels
	}
	var channels []string
	for _, ch := range strings.Split(flagValue, ",") {
		if ch = strings.TrimSpace(ch); ch != "" {
			channels = append(channels, ch)
		}
	}
	return channels
}

// watchLevels logs reloads until the watcher is closed
func watchLevels(w *config.LevelWatcher) {
	for {
		select {
		case index, ok := <-w.Events:
			if !ok {
				return
			}
			log.Printf("Level %d changed on disk, reloading at next transition", index)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("Level watcher error: %v", err)
		}
	}
}

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headless and log the result")
	levelsFlag := flag.String("levels", "", "Read levels from this config directory and reload them when they change")
	debugFlag := flag.String("debug", "", "Comma-separated diagnostics channels, * for all")
	flag.Parse()

	// Load configurations using embedded filesystem
	loader, cfg, err := loadEmbedded()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Config loaded: %d levels, %dx%d @ %d TPS",
		cfg.Levels.Count, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Display.TPS)

	diag := system.NewLogDiagnostics(log.Default(), debugChannels(*debugFlag, cfg))

	levelLoader := loader
	if *levelsFlag != "" {
		levelLoader = config.NewLoader(*levelsFlag)
	}
	library := config.NewLevelLibrary(levelLoader, cfg.Levels)

	if *replayFlag != "" {
		if err := runReplay(*replayFlag, cfg, library, diag); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	// Parse the remaining levels while the first one is played
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := library.Preload(ctx); err != nil {
			log.Printf("Level preload failed: %v", err)
		}
	}()

	if *levelsFlag != "" {
		dir := filepath.Join(*levelsFlag, filepath.Dir(cfg.Levels.PathPattern))
		watcher, err := config.NewLevelWatcher(dir, library)
		if err != nil {
			log.Fatalf("Failed to watch levels: %v", err)
		}
		defer func() { _ = watcher.Close() }()
		go watchLevels(watcher)
		log.Printf("Watching %s for level changes", dir)
	}

	// Create game
	scn, err := playing.New(cfg, library, diag, *recordFlag)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	g := game.New(scn, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetDeltaMillis(cfg.Display.DeltaMillis())

	// Set up ebiten
	ebiten.SetWindowSize(int(float64(cfg.Display.ScreenWidth)*cfg.Display.WindowScale),
		int(float64(cfg.Display.ScreenHeight)*cfg.Display.WindowScale))
	ebiten.SetWindowTitle("King's Door")
	ebiten.SetTPS(cfg.Display.TPS)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Printf("Game stopped: %v", err)
	}
}
