package main

import (
	"fmt"
	"log"

	"github.com/younwookim/kingsdoor/internal/application/replay"
	"github.com/younwookim/kingsdoor/internal/application/run"
	"github.com/younwookim/kingsdoor/internal/application/state"
	"github.com/younwookim/kingsdoor/internal/application/system"
	"github.com/younwookim/kingsdoor/internal/infrastructure/config"
)

// ReplayResult summarises a headless replay
type ReplayResult struct {
	Frames  int
	Level   int
	Elapsed float64
	Ended   bool
	Outcome state.Outcome
}

// simulateReplay plays recorded input through a fresh controller, without a
// window
func simulateReplay(replayer *replay.Replayer, cfg *config.GameConfig, levels run.LevelSource, diag system.Diagnostics) (ReplayResult, error) {
	runCfg := *cfg
	if start := replayer.StartLevel(); start != 0 {
		runCfg.Run.StartLevel = start
		if err := runCfg.Validate(); err != nil {
			return ReplayResult{}, fmt.Errorf("replay start level: %w", err)
		}
	}

	ctrl := run.New(&runCfg, levels, diag)
	if err := ctrl.StartGame(); err != nil {
		return ReplayResult{}, err
	}

	frames, err := replayer.Play(ctrl)
	if err != nil {
		return ReplayResult{}, err
	}

	return ReplayResult{
		Frames:  frames,
		Level:   ctrl.Level(),
		Elapsed: ctrl.Elapsed(),
		Ended:   ctrl.Ended(),
		Outcome: ctrl.Outcome(),
	}, nil
}

// runReplay loads a recording, plays it and logs the result
func runReplay(path string, cfg *config.GameConfig, levels run.LevelSource, diag system.Diagnostics) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}
	replayer := replay.NewReplayer(*data)
	log.Printf("Replaying %s: %d frames from level %d (recorded %s)",
		path, replayer.TotalFrames(), replayer.StartLevel(), data.StartTime)

	result, err := simulateReplay(replayer, cfg, levels, diag)
	if err != nil {
		return err
	}

	outcome := "still running"
	if result.Ended {
		outcome = result.Outcome.String()
	}
	log.Printf("Replay finished after %d frames: level=%d time=%.1fs outcome=%s",
		result.Frames, result.Level, result.Elapsed/1000, outcome)
	return nil
}
