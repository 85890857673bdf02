package playing

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/kingsdoor/internal/application/replay"
	"github.com/younwookim/kingsdoor/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for a run starting on startLevel
func NewRecorder(startLevel int) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:    replay.FormatVersion,
			StartLevel: startLevel,
			StartTime:  time.Now().Format(time.RFC3339),
			Frames:     make([]replay.FrameInput, 0, 1200), // a full 20s run at 60 TPS
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single tick and the events fed before it
func (r *Recorder) RecordFrame(deltaMillis float64, events []system.InputEvent) {
	if !r.recording {
		return
	}

	var recorded []system.InputEvent
	if len(events) > 0 {
		recorded = append(recorded, events...)
	}

	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F:      r.frame,
		DT:     deltaMillis,
		Events: recorded,
	})
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
