package replay

import "github.com/younwookim/kingsdoor/internal/application/system"

// FormatVersion is written into every replay file
const FormatVersion = "2.0"

// FrameInput records one tick: its duration and the input events fed before it
type FrameInput struct {
	F      int                `json:"f"`           // Frame number
	DT     float64            `json:"dt"`          // Delta in milliseconds
	Events []system.InputEvent `json:"e,omitempty"` // Events in arrival order
}

// ReplayData contains all data needed to replay a run
type ReplayData struct {
	Version    string       `json:"version"`
	StartLevel int          `json:"startLevel"`
	StartTime  string       `json:"startTime"`
	Frames     []FrameInput `json:"frames"`
}
