package state

// RunState is the phase of a run as the presentation layer sees it
type RunState int

const (
	StatePlaying RunState = iota
	StateEnded
	StateFadingToOverlay
	StateFadingToLevel
)

// String returns the string representation of the run state
func (s RunState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateEnded:
		return "Ended"
	case StateFadingToOverlay:
		return "FadingToOverlay"
	case StateFadingToLevel:
		return "FadingToLevel"
	default:
		return "Unknown"
	}
}

// Outcome is how a run finished
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeTimeOut
)

// String returns the text shown when the run ends
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "Win!!"
	case OutcomeTimeOut:
		return "Time out!"
	default:
		return ""
	}
}
