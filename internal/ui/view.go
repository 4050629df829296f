package ui

import (
	"fmt"
	"strings"

	"ytgrab/internal/progress"
)

func (m Model) viewHeader() string {
	done := 0
	for _, js := range m.jobs {
		if js.done {
			done++
		}
	}
	title := m.styles.Title.Render("ytgrab")
	sub := m.styles.Subtitle.Render(fmt.Sprintf("Downloads: %d/%d done • q: quit", done, len(m.jobs)))
	return title + "\n" + sub
}

func (m Model) viewJobs() string {
	var b strings.Builder
	for _, js := range m.jobs {
		b.WriteString(m.viewJob(js))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewJob(js *jobState) string {
	phaseStyle := m.styles.JobInfo
	switch js.phase {
	case progress.PhaseResolving:
		phaseStyle = m.styles.PhaseResolve
	case progress.PhaseDownloading, progress.PhaseMerging:
		phaseStyle = m.styles.PhaseDownload
	case progress.PhaseExtracting, progress.PhaseEmbedding:
		phaseStyle = m.styles.PhaseProcess
	case progress.PhaseCompleted:
		phaseStyle = m.styles.Success
	case progress.PhaseError:
		phaseStyle = m.styles.Error
	}

	left := m.styles.JobTitle.Render(truncate(js.url, 48))
	phase := phaseStyle.Render(string(js.phase))

	var right string
	switch {
	case js.percent >= 0 && js.percent <= 100:
		right = fmt.Sprintf("%s %5.1f%%", js.bar.ViewAs(js.percent/100.0), js.percent)
		if js.rate != "" && !js.done {
			right += "  " + m.styles.Faint.Render(js.rate)
		}
	case js.done && js.err == nil:
		right = m.styles.Success.Render("✓ done")
	case js.err != nil:
		right = m.styles.Error.Render("✗ error")
	default:
		right = m.styles.Spinner.Render(js.spinner.View()) + " " + m.styles.Faint.Render("waiting")
	}

	line1 := fmt.Sprintf("%s  %s", left, phase)
	line2 := m.styles.JobInfo.Render(js.status)
	return m.styles.Box.Render(line1 + "\n" + right + "\n" + line2)
}

func (m Model) viewSummary() string {
	var saved []string
	for _, js := range m.jobs {
		if js.done && js.err == nil && js.outputPath != "" {
			saved = append(saved, js.outputPath)
		}
	}
	if len(saved) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("✓ Saved:"))
	b.WriteString("\n")
	for _, path := range saved {
		b.WriteString(m.styles.Success.Render("  • " + path))
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if n <= 0 || len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "…"
}
