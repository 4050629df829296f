package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"ytgrab/internal/batch"
	"ytgrab/internal/engine"
	"ytgrab/internal/engine/ytdlp"
	"ytgrab/internal/ffmpeg"
	"ytgrab/internal/formats"
	"ytgrab/internal/model"
	"ytgrab/internal/progress"
	"ytgrab/internal/subtitle"
	"ytgrab/internal/ui"
	"ytgrab/internal/util"
	"ytgrab/internal/util/deps"
)

// assembleRequest validates CLI input and builds the immutable request for
// this run. Any validation failure maps to the invalid-input exit status.
func assembleRequest(cmd *cobra.Command, args []string) (model.DownloadRequest, error) {
	var urls []string
	for _, raw := range args {
		if _, err := util.ValidateVideoURL(raw); err != nil {
			return model.DownloadRequest{}, err
		}
		urls = append(urls, raw)
	}

	audioOnly, _ := cmd.Flags().GetBool("audio-only")
	videoOnly, _ := cmd.Flags().GetBool("video-only")
	mode, err := model.AssembleMode(audioOnly, videoOnly)
	if err != nil {
		return model.DownloadRequest{}, err
	}

	format, _ := cmd.Flags().GetString("format")
	subs, _ := cmd.Flags().GetBool("subtitles")
	subLang, _ := cmd.Flags().GetString("sub-lang")
	embedSubs, _ := cmd.Flags().GetBool("embed-subs")
	merge, _ := cmd.Flags().GetBool("merge")
	overwrite, _ := cmd.Flags().GetBool("overwrite")
	quiet, _ := cmd.Flags().GetBool("quiet")
	showProgress, _ := cmd.Flags().GetBool("progress")
	maxFilesize, _ := cmd.Flags().GetFloat64("max-filesize")
	simulate, _ := cmd.Flags().GetBool("simulate")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if maxFilesize < 0 {
		return model.DownloadRequest{}, fmt.Errorf("invalid --max-filesize: %v", maxFilesize)
	}

	outputDir := getPersistentString(cmd, "output-dir", ".")
	if !cmd.Flags().Changed("output-dir") {
		if v := viper.GetString("output_dir"); v != "" {
			outputDir = v
		}
	}
	outputDir = filepath.Clean(outputDir)

	var selection *model.SubtitleSelection
	if subs || embedSubs {
		selection = &model.SubtitleSelection{Lang: subLang}
	}

	req := model.DownloadRequest{
		URLs:          urls,
		OutputDir:     outputDir,
		Format:        format,
		Mode:          mode,
		Subtitles:     selection,
		EmbedSubs:     embedSubs,
		Merge:         merge,
		Overwrite:     overwrite,
		Quiet:         quiet,
		Progress:      showProgress,
		Verbose:       getPersistentBool(cmd, "verbose", false),
		MaxFilesizeMB: maxFilesize,
		Simulate:      simulate || dryRun,
	}
	if err := req.Validate(); err != nil {
		return model.DownloadRequest{}, err
	}
	return req, nil
}

func extractorPath(cmd *cobra.Command) string {
	p := getPersistentString(cmd, "extractor", "")
	if p == "" {
		p = viper.GetString("extractor")
	}
	return p
}

func runExecute(cmd *cobra.Command, args []string) error {
	req, err := assembleRequest(cmd, args)
	if err != nil {
		return &ExitError{Code: ExitInvalidInput, Err: err}
	}

	caps, err := deps.Probe(extractorPath(cmd))
	if err != nil {
		return &ExitError{Code: ExitMissingDep, Err: err}
	}
	warnMissingFFmpeg(caps, req)

	eng := ytdlp.New(caps.ExtractorPath)

	// Simulate short-circuits the whole batch to the format lister. Listing
	// failure is fatal, unlike the download path's per-URL isolation.
	if req.Simulate {
		return listFormats(cmd.Context(), os.Stdout, eng, req)
	}

	if err := ensureDir(req.OutputDir); err != nil {
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("failed to create output dir: %v", err)}
	}

	orch := &batch.Orchestrator{
		Engine: eng,
		Caps:   caps,
		Embedder: &subtitle.Embedder{
			Processor: ffmpeg.New(caps.FFmpegPath),
			Out:       os.Stdout,
			Errout:    os.Stderr,
			Quiet:     req.Quiet,
		},
		Reporter: &progress.Console{W: os.Stderr, Quiet: req.Quiet || !req.Progress},
		Out:      os.Stdout,
		Errout:   os.Stderr,
	}

	var report model.BatchReport
	noUI, _ := cmd.Flags().GetBool("no-ui")
	if useTUI(req, noUI) {
		report, err = ui.Run(cmd.Context(), req, orch)
		if err != nil {
			return &ExitError{Code: ExitFailure, Err: err}
		}
	} else {
		report = orch.Run(cmd.Context(), req)
	}

	printSummary(os.Stdout, req, report)
	if code := report.ExitCode(); code != ExitOK {
		return &ExitError{Code: code}
	}
	return nil
}

// listFormats renders the stream catalog for every URL in input order. The
// first extraction failure aborts the whole run with the network-error
// status.
func listFormats(ctx context.Context, w io.Writer, eng engine.Engine, req model.DownloadRequest) error {
	lister := &formats.Lister{Engine: eng, Out: w, Styles: formats.DefaultStyles()}
	// No mode-default selector here: the catalog must render even for videos
	// that lack the default format, so -f is sent only when the user asked
	// for one.
	opts := engine.ExtractionOptions{Format: req.Format, Verbose: req.Verbose}
	for i, url := range req.URLs {
		if i > 0 {
			fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 80))
		}
		if err := lister.List(ctx, url, opts); err != nil {
			return &ExitError{Code: ExitNetworkError, Err: err}
		}
	}
	return nil
}

func useTUI(req model.DownloadRequest, noUI bool) bool {
	if noUI || req.Quiet || !req.Progress || req.Verbose {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// warnMissingFFmpeg emits the one-time startup warning when a requested
// feature needs ffmpeg but the binary is absent. The features degrade rather
// than fail.
func warnMissingFFmpeg(caps deps.Capabilities, req model.DownloadRequest) {
	if caps.FFmpeg {
		return
	}
	needed := req.Merge || req.EmbedSubs || req.Mode == model.ModeAudioOnly
	if !needed {
		return
	}
	fmt.Fprintln(os.Stderr, "warning: ffmpeg not found; merging, audio extraction and subtitle embedding are disabled")
}

func printSummary(w io.Writer, req model.DownloadRequest, report model.BatchReport) {
	if req.Quiet && report.AllSucceeded() {
		return
	}
	fmt.Fprintf(w, "\nDownload complete: %d/%d successful\n", report.Succeeded, report.Total)
	if len(report.FailedURLs) > 0 {
		fmt.Fprintln(w, "Failed URLs:")
		for _, u := range report.FailedURLs {
			fmt.Fprintf(w, "  - %s\n", u)
		}
	}
}
