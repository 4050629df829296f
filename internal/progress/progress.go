// Package progress defines the typed progress events emitted while a URL is
// being processed, decoupled from any rendering.
package progress

import "time"

// Phase identifies a high-level step in the per-URL pipeline.
type Phase string

const (
	PhaseResolving   Phase = "resolving"
	PhaseDownloading Phase = "downloading"
	PhaseMerging     Phase = "merging"
	PhaseExtracting  Phase = "extracting audio"
	PhaseEmbedding   Phase = "embedding subs"
	PhaseCompleted   Phase = "completed"
	PhaseError       Phase = "error"
)

// Event conveys a progress observation for one job. BytesTotal may be zero
// when the engine did not report a size; Percent is negative when unknown.
type Event struct {
	JobID      string
	URL        string
	Phase      Phase
	Percent    float64 // 0..100, or <0 if unknown
	BytesDone  int64
	BytesTotal int64
	Rate       string         // as reported, e.g. "1.50MiB/s"
	ETA        *time.Duration // nil if unknown
	Message    string
}

// Result is emitted once per job when it completes or fails.
type Result struct {
	JobID      string
	URL        string
	OutputPath string
	Err        error // nil on success
}

// Reporter is implemented by any observer of progress events. Callbacks are
// invoked synchronously from the control thread and carry no control
// authority.
type Reporter interface {
	Event(e Event)
	Result(r Result)
}

// Nop is a Reporter that discards everything.
type Nop struct{}

func (Nop) Event(Event)   {}
func (Nop) Result(Result) {}
