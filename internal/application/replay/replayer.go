package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/kingsdoor/internal/application/system"
)

// ErrUnsupportedVersion is returned for replay files of another format
var ErrUnsupportedVersion = errors.New("unsupported replay version")

// Target is what a replay drives; run.Controller satisfies it
type Target interface {
	HandleEvent(ev system.InputEvent)
	Update(deltaMillis float64) error
	Ended() bool
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, data.Version)
	}

	return &data, nil
}

// Next returns the current frame and advances
func (r *Replayer) Next() (FrameInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return FrameInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi, true
}

// Play feeds the remaining frames into t until they run out or the run ends.
// Returns the number of frames played.
func (r *Replayer) Play(t Target) (int, error) {
	played := 0
	for !t.Ended() {
		fi, ok := r.Next()
		if !ok {
			break
		}
		for _, ev := range fi.Events {
			t.HandleEvent(ev)
		}
		if err := t.Update(fi.DT); err != nil {
			return played, fmt.Errorf("frame %d: %w", fi.F, err)
		}
		played++
	}
	return played, nil
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// StartLevel returns the level the recording started on
func (r *Replayer) StartLevel() int {
	return r.data.StartLevel
}

// CreateTestReplayData creates replay data for testing: idle frames of a
// fixed delta, with events attached to chosen frames
func CreateTestReplayData(frames int, deltaMillis float64, events map[int][]system.InputEvent) ReplayData {
	data := ReplayData{
		Version:    FormatVersion,
		StartLevel: 1,
		StartTime:  time.Now().Format(time.RFC3339),
		Frames:     make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:      i,
			DT:     deltaMillis,
			Events: events[i],
		}
	}

	return data
}
