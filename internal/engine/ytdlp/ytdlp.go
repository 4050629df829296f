// Package ytdlp adapts the yt-dlp (or youtube-dl) subprocess to the engine
// contract. All protocol negotiation and stream selection happens inside the
// tool; this package only builds invocations and parses their output.
package ytdlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ytgrab/internal/engine"
	"ytgrab/internal/progress"
	"ytgrab/internal/util"
)

// Client runs the extraction tool as a subprocess.
type Client struct {
	// Path to the yt-dlp/youtube-dl binary.
	Path string
	// Runner executes subprocesses; tests inject fakes.
	Runner util.CmdRunner
	// Reporter receives typed progress events parsed from tool output.
	// May be nil.
	Reporter progress.Reporter
	// JobID is attached to every emitted event.
	JobID string
}

var _ engine.Engine = (*Client)(nil)

// New returns a Client using the default subprocess runner.
func New(path string) *Client {
	return &Client{Path: path, Runner: util.NewRunner()}
}

// WithJob returns a copy of the client bound to a job ID and reporter, so
// events emitted during one URL's processing are attributable.
func (c *Client) WithJob(jobID string, r progress.Reporter) engine.Engine {
	cp := *c
	cp.JobID = jobID
	cp.Reporter = r
	return &cp
}

// Resolve performs a metadata-only query for one URL.
func (c *Client) Resolve(ctx context.Context, url string, opts engine.ExtractionOptions) (*engine.Metadata, error) {
	c.emit(progress.Event{Phase: progress.PhaseResolving, Percent: -1, URL: url, Message: "Fetching metadata"})

	res, runErr := c.Runner.Run(ctx, util.CmdSpec{
		Path:    c.Path,
		Args:    resolveArgs(url, opts),
		Verbose: opts.Verbose,
	})
	if runErr != nil && len(res.Stdout) == 0 {
		return nil, fmt.Errorf("metadata fetch failed: %w", runErr)
	}
	meta, err := parseMetadata(res.Stdout)
	if err != nil {
		return nil, err
	}
	return meta, nil
}

// Fetch downloads the selected stream(s) for one URL and returns the final
// local path the tool reports after all moves and post-processing.
func (c *Client) Fetch(ctx context.Context, url string, opts engine.ExtractionOptions) (*engine.Metadata, string, error) {
	meta, err := c.Resolve(ctx, url, opts)
	if err != nil {
		return nil, "", err
	}

	var finalPath string
	onLine := func(line string) {
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}
		if ev, ok := ParseProgress(line); ok {
			ev.JobID = c.JobID
			ev.URL = url
			c.emitRaw(ev)
			return
		}
		if strings.HasPrefix(line, "[") {
			return
		}
		// The only unbracketed stdout line is the printed filepath.
		finalPath = line
	}

	_, runErr := c.Runner.Run(ctx, util.CmdSpec{
		Path:       c.Path,
		Args:       fetchArgs(url, opts),
		Verbose:    opts.Verbose,
		StdoutLine: onLine,
		StderrLine: func(line string) {
			if ev, ok := ParseProgress(strings.TrimSpace(line)); ok {
				ev.JobID = c.JobID
				ev.URL = url
				c.emitRaw(ev)
			}
		},
	})
	if runErr != nil {
		return meta, "", fmt.Errorf("download failed: %w", runErr)
	}
	if finalPath == "" {
		return meta, "", fmt.Errorf("download finished but no output path was reported")
	}
	return meta, finalPath, nil
}

// parseMetadata decodes the tool's JSON dump. Some versions interleave
// warnings on stdout, so decoding falls back to scanning lines from the end
// for the first valid object.
func parseMetadata(out []byte) (*engine.Metadata, error) {
	data := strings.TrimSpace(string(out))
	var meta engine.Metadata
	if err := json.Unmarshal([]byte(data), &meta); err == nil && meta.ID != "" {
		return &meta, nil
	}
	lines := strings.Split(data, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		var m engine.Metadata
		if json.Unmarshal([]byte(line), &m) == nil && m.ID != "" {
			return &m, nil
		}
	}
	return nil, fmt.Errorf("parse metadata JSON: no valid object in tool output")
}

func (c *Client) emit(e progress.Event) {
	e.JobID = c.JobID
	c.emitRaw(e)
}

func (c *Client) emitRaw(e progress.Event) {
	if c.Reporter != nil {
		c.Reporter.Event(e)
	}
}
