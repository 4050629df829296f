package ytdlp

import (
	"path/filepath"
	"strconv"
	"strings"

	"ytgrab/internal/engine"
)

// outputTemplate is the fixed naming template: the engine writes the final
// file as <output_dir>/<title>.<ext>, with filename restriction applied.
const outputTemplate = "%(title)s.%(ext)s"

// resolveArgs builds the metadata-only invocation.
func resolveArgs(url string, o engine.ExtractionOptions) []string {
	args := []string{
		"--dump-json",
		"--skip-download",
		"--no-playlist",
		"--no-warnings",
	}
	if o.Format != "" {
		args = append(args, "-f", o.Format)
	}
	return append(args, url)
}

// fetchArgs builds the download invocation. The final file path is printed
// on stdout via --print after_move:filepath; progress lines arrive in
// [download] form thanks to --newline.
func fetchArgs(url string, o engine.ExtractionOptions) []string {
	args := []string{
		"--no-playlist",
		"--newline",
		// Restricted, Windows-safe filenames are a portability invariant,
		// not a user option.
		"--restrict-filenames",
		"--windows-filenames",
		"-o", filepath.Join(o.OutputDir, outputTemplate),
		"--print", "after_move:filepath",
		"--no-simulate",
	}
	if o.TempDir != "" {
		args = append(args, "--paths", "temp:"+o.TempDir)
	}
	if o.Format != "" {
		args = append(args, "-f", o.Format)
	}
	if o.Overwrite {
		args = append(args, "--force-overwrites")
	} else {
		args = append(args, "--no-overwrites")
	}
	if o.Quiet {
		args = append(args, "--quiet", "--no-warnings")
	}
	if o.Progress {
		args = append(args, "--progress")
	}
	if o.MergeContainer != "" {
		args = append(args, "--merge-output-format", o.MergeContainer)
	}
	if pp := o.ExtractAudio; pp != nil {
		args = append(args,
			"--extract-audio",
			"--audio-format", pp.Codec,
			"--audio-quality", pp.Quality,
		)
	}
	if sub := o.Subtitles; sub != nil {
		if sub.Manual {
			args = append(args, "--write-subs")
		}
		if sub.Auto {
			args = append(args, "--write-auto-subs")
		}
		args = append(args,
			"--sub-format", sub.Format,
			"--sub-langs", strings.Join(sub.Languages, ","),
		)
	}
	if o.MaxFilesizeBytes > 0 {
		args = append(args, "--max-filesize", strconv.FormatInt(o.MaxFilesizeBytes, 10))
	}
	return append(args, url)
}
