package model

// DownloadOutcome records the result of processing one URL.
type DownloadOutcome struct {
	URL        string
	OK         bool
	OutputPath string // empty for simulate runs and failures
}

// CaptionFile is a discovered subtitle sidecar for one language. It is
// consumed (muxed and then deleted) by the subtitle embedder.
type CaptionFile struct {
	Language string
	Path     string
}

// BatchReport accumulates per-URL outcomes for a batch run. FailedURLs keeps
// the original input order.
type BatchReport struct {
	Total      int
	Succeeded  int
	FailedURLs []string
}

// Add folds one outcome into the report.
func (r *BatchReport) Add(o DownloadOutcome) {
	if o.OK {
		r.Succeeded++
		return
	}
	r.FailedURLs = append(r.FailedURLs, o.URL)
}

// AllSucceeded reports whether every attempted URL completed.
func (r *BatchReport) AllSucceeded() bool {
	return len(r.FailedURLs) == 0
}

// ExitCode maps the report to a process exit status: 0 when everything
// succeeded, 1 when any URL failed.
func (r *BatchReport) ExitCode() int {
	if r.AllSucceeded() {
		return 0
	}
	return 1
}
