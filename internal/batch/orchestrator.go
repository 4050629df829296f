// Package batch runs the download pipeline over a list of URLs, one at a
// time, isolating per-URL failures and accounting them in a batch report.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"ytgrab/internal/engine"
	"ytgrab/internal/model"
	"ytgrab/internal/progress"
	"ytgrab/internal/subtitle"
	"ytgrab/internal/util"
	"ytgrab/internal/util/deps"
	"ytgrab/internal/util/media"
)

// audioExt is the extension the audio-extraction post-processing step
// produces. When that step ran, the final path carries this extension
// regardless of what the engine's naming produced (a deterministic renaming
// contract, not a filesystem probe).
const audioExt = ".mp3"

// Orchestrator drives the per-URL state machine: resolve, fetch, post-process,
// verify. URLs are processed strictly sequentially.
type Orchestrator struct {
	Engine   engine.Engine
	Caps     deps.Capabilities
	Embedder *subtitle.Embedder
	Reporter progress.Reporter

	Out    io.Writer
	Errout io.Writer
}

// Run processes every URL in the request and returns the accumulated report.
// A cancelled context stops the batch; URLs not yet attempted are simply
// never started.
func (o *Orchestrator) Run(ctx context.Context, req model.DownloadRequest) model.BatchReport {
	rep := model.BatchReport{Total: len(req.URLs)}
	for _, url := range req.URLs {
		if ctx.Err() != nil {
			rep.Add(model.DownloadOutcome{URL: url, OK: false})
			continue
		}
		rep.Add(o.Process(ctx, url, req))
	}
	return rep
}

// Process handles a single URL. Every error is caught and reported as a
// failed outcome; one bad URL never aborts the batch.
func (o *Orchestrator) Process(ctx context.Context, url string, req model.DownloadRequest) model.DownloadOutcome {
	jobID := uuid.NewString()

	tempDir, err := util.MakeTempWorkdir("dl")
	if err != nil {
		o.warnf("error: create temp dir for %s: %v\n", url, err)
		return model.DownloadOutcome{URL: url, OK: false}
	}
	// The temp dir is scoped to this URL and released on every exit path.
	defer os.RemoveAll(tempDir)

	opts := engine.BuildOptions(req, tempDir, o.Caps.FFmpeg)

	if req.Simulate {
		return o.simulate(ctx, jobID, url, req, opts)
	}

	if !req.Quiet {
		fmt.Fprintf(o.Out, "\nDownloading: %s\n", url)
	}

	meta, outPath, err := o.fetch(ctx, jobID, url, opts)
	if err != nil {
		o.warnf("Download error: %v\n", err)
		o.result(progress.Result{JobID: jobID, URL: url, Err: err})
		return model.DownloadOutcome{URL: url, OK: false}
	}

	// Audio extraction rewrites the container; the expected extension is the
	// target codec's, independent of the engine's reported naming.
	if req.Mode == model.ModeAudioOnly && o.Caps.FFmpeg {
		outPath = media.ForceExt(outPath, audioExt)
	}

	if req.EmbedSubs && req.Subtitles != nil && o.Caps.FFmpeg {
		o.event(progress.Event{JobID: jobID, URL: url, Phase: progress.PhaseEmbedding, Percent: -1, Message: "Embedding subtitles"})
		embedded, eerr := o.Embedder.Embed(ctx, outPath, meta, req.Overwrite)
		if eerr != nil {
			// Degraded success: the URL still counts, the original file is
			// kept.
			o.warnf("warning: failed to embed subtitles: %v\n", eerr)
		}
		outPath = embedded
	}

	// Defensive verification: the engine may report success without the file
	// landing where expected.
	if !util.FileExists(outPath) {
		err := fmt.Errorf("expected file not found: %s", outPath)
		o.warnf("warning: %v\n", err)
		o.result(progress.Result{JobID: jobID, URL: url, Err: err})
		return model.DownloadOutcome{URL: url, OK: false}
	}

	if !req.Quiet {
		fmt.Fprintf(o.Out, "Downloaded: %s\n", outPath)
	}
	o.event(progress.Event{JobID: jobID, URL: url, Phase: progress.PhaseCompleted, Percent: 100})
	o.result(progress.Result{JobID: jobID, URL: url, OutputPath: outPath})
	return model.DownloadOutcome{URL: url, OK: true, OutputPath: outPath}
}

// simulate resolves metadata only and reports what would be downloaded. It
// never produces a file and never contributes to the failure list.
func (o *Orchestrator) simulate(ctx context.Context, jobID, url string, req model.DownloadRequest, opts engine.ExtractionOptions) model.DownloadOutcome {
	meta, err := o.resolve(ctx, jobID, url, opts)
	if err != nil {
		o.warnf("Download error: %v\n", err)
		o.result(progress.Result{JobID: jobID, URL: url, Err: err})
		return model.DownloadOutcome{URL: url, OK: true}
	}
	fmt.Fprintf(o.Out, "\n[DRY RUN] Would download:\n")
	fmt.Fprintf(o.Out, "  Title: %s\n", meta.Title)
	fmt.Fprintf(o.Out, "  Format: %s\n", opts.Format)
	fmt.Fprintf(o.Out, "  Output directory: %s\n", req.OutputDir)
	o.result(progress.Result{JobID: jobID, URL: url})
	return model.DownloadOutcome{URL: url, OK: true}
}

func (o *Orchestrator) fetch(ctx context.Context, jobID, url string, opts engine.ExtractionOptions) (*engine.Metadata, string, error) {
	eng := o.jobEngine(jobID)
	return eng.Fetch(ctx, url, opts)
}

func (o *Orchestrator) resolve(ctx context.Context, jobID, url string, opts engine.ExtractionOptions) (*engine.Metadata, error) {
	eng := o.jobEngine(jobID)
	return eng.Resolve(ctx, url, opts)
}

// jobEngine returns the engine bound to this job's ID so emitted progress
// events are attributable. Engines that do not support rebinding are used
// as-is.
func (o *Orchestrator) jobEngine(jobID string) engine.Engine {
	type rebinder interface {
		WithJob(jobID string, r progress.Reporter) engine.Engine
	}
	if rb, ok := o.Engine.(rebinder); ok {
		return rb.WithJob(jobID, o.Reporter)
	}
	return o.Engine
}

func (o *Orchestrator) event(e progress.Event) {
	if o.Reporter != nil {
		o.Reporter.Event(e)
	}
}

func (o *Orchestrator) result(r progress.Result) {
	if o.Reporter != nil {
		o.Reporter.Result(r)
	}
}

func (o *Orchestrator) warnf(format string, args ...any) {
	fmt.Fprintf(o.Errout, format, args...)
}
