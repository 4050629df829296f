// Package formats renders the read-only stream catalog for a URL.
package formats

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ytgrab/internal/engine"
	"ytgrab/internal/util/format"
)

// Styles controls the rendering of the format catalog.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Header lipgloss.Style
	Faint  lipgloss.Style
}

// DefaultStyles returns the standard catalog styling.
func DefaultStyles() Styles {
	base := lipgloss.NewStyle()
	return Styles{
		Title:  base.Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Label:  base.Bold(true),
		Header: base.Bold(true).Underline(true),
		Faint:  base.Faint(true),
	}
}

// Lister resolves metadata for a URL without downloading and renders the
// available streams and caption tracks. Any extraction failure here is fatal
// for the whole process: the caller maps it to the network-error exit
// status.
type Lister struct {
	Engine engine.Engine
	Out    io.Writer
	Styles Styles
}

// List queries and renders the catalog for one URL.
func (l *Lister) List(ctx context.Context, url string, opts engine.ExtractionOptions) error {
	fmt.Fprintf(l.Out, "\nFetching available formats for: %s\n", url)

	meta, err := l.Engine.Resolve(ctx, url, opts)
	if err != nil {
		return fmt.Errorf("fetching video info for %s: %w", url, err)
	}

	l.render(meta)
	return nil
}

func (l *Lister) render(meta *engine.Metadata) {
	w := l.Out
	fmt.Fprintf(w, "\n%s %s\n", l.Styles.Label.Render("Title:"), meta.Title)
	fmt.Fprintf(w, "%s %.0f seconds\n", l.Styles.Label.Render("Duration:"), meta.Duration)
	fmt.Fprintf(w, "%s %s\n", l.Styles.Label.Render("Uploader:"), valueOr(meta.Uploader, "Unknown"))

	fmt.Fprintf(w, "\n%s\n", l.Styles.Title.Render("Available formats:"))
	rule := strings.Repeat("-", 80)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, l.Styles.Header.Render(fmt.Sprintf("%-10s %-5s %-12s %-5s %-10s %-30s", "ID", "EXT", "RESOLUTION", "FPS", "FILESIZE", "NOTE")))
	fmt.Fprintln(w, rule)

	// Stream order is preserved as reported by the engine; it encodes the
	// engine's own priority.
	for _, f := range meta.Formats {
		fmt.Fprintf(w, "%-10s %-5s %-12s %-5s %-10s %-30s\n",
			valueOr(f.FormatID, "N/A"),
			valueOr(f.Ext, "N/A"),
			resolution(f),
			fps(f),
			filesize(f),
			strings.TrimSpace(f.FormatNote+" "+f.CapabilityTag()),
		)
	}

	manual := meta.ManualCaptionLanguages()
	auto := meta.AutoCaptionLanguages()
	if len(manual) > 0 || len(auto) > 0 {
		fmt.Fprintf(w, "\n%s\n", l.Styles.Title.Render("Available subtitles:"))
		if len(manual) > 0 {
			fmt.Fprintf(w, "  Manual: %s\n", strings.Join(manual, ", "))
		}
		if len(auto) > 0 {
			fmt.Fprintf(w, "  Auto-generated: %s\n", strings.Join(auto, ", "))
		}
	}
}

func resolution(f engine.Format) string {
	if f.Width == 0 && f.Height == 0 {
		return "?x?"
	}
	return fmt.Sprintf("%dx%d", f.Width, f.Height)
}

func fps(f engine.Format) string {
	if f.FPS <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%g", f.FPS)
}

func filesize(f engine.Format) string {
	if f.Filesize <= 0 {
		return "N/A"
	}
	return format.HumanizeBytes(f.Filesize)
}

func valueOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
