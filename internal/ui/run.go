package ui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"ytgrab/internal/batch"
	"ytgrab/internal/model"
)

// Run drives the batch through the interactive display and returns the
// accumulated report. The orchestrator's writers are silenced for the
// duration; all feedback flows through progress events.
func Run(ctx context.Context, req model.DownloadRequest, orch *batch.Orchestrator) (model.BatchReport, error) {
	m := NewModel(ctx, req, orch)

	// The model rebinds the reporter per job so events carry their job
	// index; only the writers are silenced here.
	savedReporter := orch.Reporter
	savedOut, savedErrout := orch.Out, orch.Errout
	orch.Out, orch.Errout = io.Discard, io.Discard
	defer func() {
		orch.Reporter = savedReporter
		orch.Out, orch.Errout = savedOut, savedErrout
	}()

	prog := tea.NewProgram(m, tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		return model.BatchReport{Total: len(req.URLs)}, err
	}

	fm, ok := final.(Model)
	if !ok {
		return model.BatchReport{Total: len(req.URLs)}, nil
	}
	report := fm.report
	// URLs never attempted (quit mid-batch) still count against the total.
	for i := len(report.FailedURLs) + report.Succeeded; i < len(req.URLs); i++ {
		report.Add(model.DownloadOutcome{URL: req.URLs[i], OK: false})
	}
	return report, nil
}
