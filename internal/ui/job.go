package ui

import (
	bubblesprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"

	"ytgrab/internal/progress"
)

type jobState struct {
	url    string
	phase  progress.Phase
	status string
	err    error
	done   bool

	outputPath string
	percent    float64 // -1 means unknown
	rate       string

	spinner spinner.Model
	bar     bubblesprogress.Model
}

func newJobState(url string, styles Styles) *jobState {
	sp := spinner.New()
	sp.Style = styles.Spinner
	bar := bubblesprogress.New(
		bubblesprogress.WithDefaultGradient(),
		bubblesprogress.WithWidth(40),
	)
	return &jobState{
		url:     url,
		phase:   progress.PhaseResolving,
		status:  "Queued",
		percent: -1,
		spinner: sp,
		bar:     bar,
	}
}
