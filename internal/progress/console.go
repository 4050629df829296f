package progress

import (
	"fmt"
	"io"
	"time"

	"ytgrab/internal/util/format"
)

// Console renders progress events as plain single-line updates, for runs
// without a TTY or with the TUI disabled.
type Console struct {
	W     io.Writer
	Quiet bool

	lastWasCarriage bool
}

// Event writes a carriage-return progress line for downloading phases and a
// short status line for phase transitions.
func (c *Console) Event(e Event) {
	if c.Quiet {
		return
	}
	switch e.Phase {
	case PhaseDownloading:
		line := fmt.Sprintf("Downloading %5.1f%%", e.Percent)
		if e.BytesTotal > 0 {
			line += " of " + format.HumanizeBytes(e.BytesTotal)
		}
		if e.Rate != "" {
			line += " at " + e.Rate
		}
		if e.ETA != nil {
			line += fmt.Sprintf(" ETA %s", e.ETA.Round(time.Second))
		}
		fmt.Fprintf(c.W, "\r%-70s", line)
		c.lastWasCarriage = true
	case PhaseCompleted, PhaseError:
		c.breakLine()
	default:
		c.breakLine()
		if e.Message != "" {
			fmt.Fprintln(c.W, e.Message)
		}
	}
}

// Result finishes any pending progress line.
func (c *Console) Result(r Result) {
	c.breakLine()
}

func (c *Console) breakLine() {
	if c.lastWasCarriage {
		fmt.Fprintln(c.W)
		c.lastWasCarriage = false
	}
}
