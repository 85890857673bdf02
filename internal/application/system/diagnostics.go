package system

import (
	"fmt"
	"log"
)

// Channel names a diagnostics stream that can be switched on independently
type Channel string

const (
	ChannelApp            Channel = "app"
	ChannelLevel          Channel = "level"
	ChannelPlayerState    Channel = "player-state"
	ChannelInputDirection Channel = "input-direction"
	ChannelKeys           Channel = "keys"
	ChannelPointerEvent   Channel = "pointer-event"
)

// AllChannels enables every channel when passed to NewLogDiagnostics
const AllChannels = "*"

// Diagnostics receives debug output from the simulation.
// It is handed explicitly to whoever needs it; nothing logs through globals.
type Diagnostics interface {
	Enabled(ch Channel) bool
	Logf(ch Channel, format string, args ...any)
}

type nopDiagnostics struct{}

func (nopDiagnostics) Enabled(Channel) bool { return false }
func (nopDiagnostics) Logf(Channel, string, ...any) {}

// NopDiagnostics discards everything
var NopDiagnostics Diagnostics = nopDiagnostics{}

// LogDiagnostics writes enabled channels to a standard logger
type LogDiagnostics struct {
	logger  *log.Logger
	all     bool
	enabled map[Channel]bool
}

// NewLogDiagnostics enables the named channels on logger
func NewLogDiagnostics(logger *log.Logger, channels []string) *LogDiagnostics {
	d := &LogDiagnostics{
		logger:  logger,
		enabled: make(map[Channel]bool, len(channels)),
	}
	for _, ch := range channels {
		if ch == AllChannels {
			d.all = true
			continue
		}
		d.enabled[Channel(ch)] = true
	}
	return d
}

func (d *LogDiagnostics) Enabled(ch Channel) bool {
	return d.all || d.enabled[ch]
}

func (d *LogDiagnostics) Logf(ch Channel, format string, args ...any) {
	if !d.Enabled(ch) {
		return
	}
	d.logger.Printf("[%s] %s", ch, fmt.Sprintf(format, args...))
}

// diagOrNop keeps a nil sink from panicking
func diagOrNop(d Diagnostics) Diagnostics {
	if d == nil {
		return NopDiagnostics
	}
	return d
}
