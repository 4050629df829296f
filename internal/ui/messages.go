package ui

import (
	"ytgrab/internal/model"
	"ytgrab/internal/progress"
)

// eventMsg and resultMsg carry the index of the job they belong to; URLs are
// not unique within a batch, so routing goes by index.
type eventMsg struct {
	Job int
	E   progress.Event
}

type resultMsg struct {
	Job int
	R   progress.Result
}

// jobDoneMsg fires when one URL's processing has fully returned; the next
// URL may start.
type jobDoneMsg struct {
	Outcome model.DownloadOutcome
}

type allDoneMsg struct{}
