package cmd

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ytgrab/internal/config"
	"ytgrab/internal/util"
)

const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitNetworkError = 2
	ExitInvalidInput = 3
	ExitMissingDep   = 4
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ytgrab [urls...]",
		Short:         "Download YouTube videos via yt-dlp and ffmpeg",
		Long:          "ytgrab drives yt-dlp and ffmpeg to download, convert, and caption YouTube videos. Give it one or more links and it fetches the streams you asked for, merges or extracts as requested, and can embed subtitles into the result.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExecute(cmd, args)
		},
	}

	// Persistent flags available to all subcommands
	root.PersistentFlags().StringP("output-dir", "o", ".", "Output directory")
	root.PersistentFlags().BoolP("verbose", "v", false, "Show full subprocess commands/output")
	root.PersistentFlags().String("extractor", "", "Path to yt-dlp or youtube-dl")

	bindDownloadFlags(root.Flags())

	root.AddCommand(newFormatsCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

func bindDownloadFlags(fs *pflag.FlagSet) {
	fs.StringP("format", "f", "", "Explicit format selector passed to the extractor")
	fs.Bool("audio-only", false, "Download audio only (MP3 when ffmpeg is available)")
	fs.Bool("video-only", false, "Download video stream only, no audio")
	fs.BoolP("subtitles", "s", false, "Download subtitles (manual and auto-generated)")
	fs.String("sub-lang", "en", "Subtitle language code, or 'all'")
	fs.Bool("embed-subs", false, "Embed downloaded subtitles into the video (implies --subtitles)")
	fs.BoolP("merge", "m", false, "Merge video and audio into MP4")
	fs.Bool("overwrite", false, "Overwrite existing files")
	fs.BoolP("quiet", "q", false, "Suppress non-error output")
	fs.Bool("progress", true, "Show download progress")
	fs.Float64("max-filesize", 0, "Skip streams larger than this many MB (0 = unlimited)")
	fs.Bool("simulate", false, "List available formats without downloading")
	fs.Bool("dry-run", false, "Alias for --simulate")
	fs.Bool("no-ui", false, "Disable the interactive display; use plain textual output")
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	_ = config.Init(root)
	return root.ExecuteContext(ctx)
}

// Persistent flags are merged into Flags() for the executing command, so
// these helpers work from root and subcommands alike.
func getPersistentString(cmd *cobra.Command, name, def string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil || v == "" {
		return def
	}
	return v
}

func getPersistentBool(cmd *cobra.Command, name string, def bool) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return def
	}
	return v
}

func ensureDir(path string) error {
	if path == "" {
		path = "."
	}
	return util.EnsureDir(filepath.Clean(path))
}
