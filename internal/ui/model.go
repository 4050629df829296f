package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"ytgrab/internal/batch"
	"ytgrab/internal/model"
	"ytgrab/internal/progress"
)

type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	orch *batch.Orchestrator
	req  model.DownloadRequest

	// Jobs, one per URL, processed strictly in order.
	jobs    []*jobState
	current int
	report  model.BatchReport

	width, height int
	styles        Styles

	// Internal event channel used by the reporter to feed tea messages.
	eventCh chan tea.Msg
	quit    bool
}

func NewModel(ctx context.Context, req model.DownloadRequest, orch *batch.Orchestrator) Model {
	c, cancel := context.WithCancel(ctx)
	sty := defaultStyles()

	jobs := make([]*jobState, 0, len(req.URLs))
	for _, u := range req.URLs {
		jobs = append(jobs, newJobState(u, sty))
	}

	return Model{
		ctx:     c,
		cancel:  cancel,
		orch:    orch,
		req:     req,
		jobs:    jobs,
		report:  model.BatchReport{Total: len(req.URLs)},
		styles:  sty,
		eventCh: make(chan tea.Msg, 256),
	}
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, js := range m.jobs {
		cmds = append(cmds, js.spinner.Tick)
	}
	cmds = append(cmds, m.listenEventsCmd())
	cmds = append(cmds, m.startJobCmd(0))
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quit = true
			m.cancel()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case eventMsg:
		if js := m.jobAt(msg.Job); js != nil {
			js.phase = msg.E.Phase
			js.percent = msg.E.Percent
			js.rate = msg.E.Rate
			if msg.E.Message != "" {
				js.status = msg.E.Message
			}
		}
	case resultMsg:
		if js := m.jobAt(msg.Job); js != nil {
			js.done = true
			js.err = msg.R.Err
			if msg.R.Err == nil {
				js.phase = progress.PhaseCompleted
				js.percent = 100
				js.outputPath = msg.R.OutputPath
				if msg.R.OutputPath != "" {
					js.status = "Saved: " + filepath.Base(msg.R.OutputPath)
				} else {
					js.status = "Completed"
				}
			} else {
				js.phase = progress.PhaseError
				js.status = msg.R.Err.Error()
				js.percent = -1
			}
		}
	case jobDoneMsg:
		m.report.Add(msg.Outcome)
		// The outcome may beat its result event out of the channel; settle
		// the row from the outcome so the final frame is accurate.
		if js := m.jobAt(m.current); js != nil && !js.done {
			js.done = true
			if msg.Outcome.OK {
				js.phase = progress.PhaseCompleted
				js.percent = 100
				js.outputPath = msg.Outcome.OutputPath
				if msg.Outcome.OutputPath != "" {
					js.status = "Saved: " + filepath.Base(msg.Outcome.OutputPath)
				} else {
					js.status = "Completed"
				}
			} else {
				js.phase = progress.PhaseError
				js.percent = -1
				if js.err == nil {
					js.err = errors.New("download failed")
				}
				if js.status == "" {
					js.status = "Failed"
				}
			}
		}
		m.current++
		if m.current >= len(m.jobs) {
			return m, func() tea.Msg { return allDoneMsg{} }
		}
		return m, m.startJobCmd(m.current)
	case allDoneMsg:
		return m, tea.Quit
	}

	var cmds []tea.Cmd
	for _, js := range m.jobs {
		var c tea.Cmd
		js.spinner, c = js.spinner.Update(msg)
		if c != nil {
			cmds = append(cmds, c)
		}
	}
	cmds = append(cmds, m.listenEventsCmd())
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	summary := m.viewSummary()
	if summary != "" {
		return m.viewHeader() + "\n\n" + m.viewJobs() + "\n" + summary
	}
	return m.viewHeader() + "\n\n" + m.viewJobs()
}

func (m Model) listenEventsCmd() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return allDoneMsg{}
		case msg := <-m.eventCh:
			return msg
		}
	}
}

// startJobCmd launches processing for the job at index i. The orchestrator
// call blocks inside the command goroutine; its outcome is delivered as a
// jobDoneMsg when the URL is finished. The reporter is rebound here so every
// message it emits carries the index, even when consumed after the job
// advanced.
func (m Model) startJobCmd(i int) tea.Cmd {
	if i >= len(m.jobs) {
		return func() tea.Msg { return allDoneMsg{} }
	}
	js := m.jobs[i]
	js.status = fmt.Sprintf("Resolving %s", js.url)
	m.orch.Reporter = teaReporter{ch: m.eventCh, job: i}
	ctx := m.ctx
	orch := m.orch
	req := m.req
	url := js.url
	return func() tea.Msg {
		out := orch.Process(ctx, url, req)
		return jobDoneMsg{Outcome: out}
	}
}

func (m Model) jobAt(i int) *jobState {
	if i < 0 || i >= len(m.jobs) {
		return nil
	}
	return m.jobs[i]
}

// teaReporter forwards progress to the display loop, stamped with the index
// of the job it was bound to at start time.
type teaReporter struct {
	ch  chan tea.Msg
	job int
}

func (r teaReporter) Event(e progress.Event) {
	// Terminal phases must land; intermediate progress may be dropped when
	// the UI is busy.
	if e.Phase == progress.PhaseCompleted || e.Phase == progress.PhaseError {
		r.ch <- eventMsg{Job: r.job, E: e}
		return
	}
	select {
	case r.ch <- eventMsg{Job: r.job, E: e}:
	default:
	}
}

func (r teaReporter) Result(res progress.Result) {
	r.ch <- resultMsg{Job: r.job, R: res}
}
