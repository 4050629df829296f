// Package subtitle discovers caption sidecar files for a downloaded video
// and muxes them into the container via the media-processing binary.
package subtitle

import (
	"context"
	"fmt"
	"io"
	"os"

	"ytgrab/internal/engine"
	"ytgrab/internal/ffmpeg"
	"ytgrab/internal/model"
	"ytgrab/internal/util"
	"ytgrab/internal/util/media"
)

// sidecarExts is the probe order for caption files; first match per
// language wins.
var sidecarExts = []string{".vtt", ".srt", ".ass"}

// Embedder muxes discovered caption sidecars into a finished video file.
// It borrows the video path for the duration of one call and never retains
// it.
type Embedder struct {
	Processor *ffmpeg.Processor
	// Out receives informational messages; warnings go to Errout.
	Out    io.Writer
	Errout io.Writer
	Quiet  bool
}

// DiscoverCaptions probes for sidecar files named <stem>.<lang><ext> for the
// union of manual and auto-generated caption languages. Languages with no
// file on disk are skipped silently.
func DiscoverCaptions(videoPath string, meta *engine.Metadata) []model.CaptionFile {
	var found []model.CaptionFile
	for _, lang := range meta.CaptionLanguages() {
		for _, ext := range sidecarExts {
			candidate := media.SidecarPath(videoPath, lang, ext)
			if util.FileExists(candidate) {
				found = append(found, model.CaptionFile{Language: lang, Path: candidate})
				break
			}
		}
	}
	return found
}

// Embed muxes caption tracks into videoPath. On success the original file is
// atomically replaced and the consumed sidecars are deleted. When no caption
// files are found, or when the remux fails, the original path is returned
// unchanged; a remux failure is reported through the error but leaves the
// filesystem as it was (minus any half-written temp output).
func (e *Embedder) Embed(ctx context.Context, videoPath string, meta *engine.Metadata, overwrite bool) (string, error) {
	if !util.FileExists(videoPath) {
		return videoPath, fmt.Errorf("video file not found for subtitle embedding: %s", videoPath)
	}

	captions := DiscoverCaptions(videoPath, meta)
	if len(captions) == 0 {
		e.infof("No subtitle files found to embed\n")
		return videoPath, nil
	}
	e.infof("Embedding %d subtitle track(s)...\n", len(captions))

	tempOut := media.TempOutputPath(videoPath)
	if err := e.Processor.RemuxWithSubtitles(ctx, videoPath, captions, tempOut, overwrite); err != nil {
		_ = util.RemoveIfExists(tempOut)
		return videoPath, err
	}
	if !util.FileExists(tempOut) {
		return videoPath, fmt.Errorf("remux reported success but produced no output")
	}

	// Replace the original, then drop the consumed sidecars.
	if err := os.Remove(videoPath); err != nil {
		_ = util.RemoveIfExists(tempOut)
		return videoPath, fmt.Errorf("replace original: %w", err)
	}
	if err := os.Rename(tempOut, videoPath); err != nil {
		return videoPath, fmt.Errorf("rename embedded output: %w", err)
	}
	for _, c := range captions {
		_ = util.RemoveIfExists(c.Path)
	}
	e.infof("Subtitles embedded successfully\n")
	return videoPath, nil
}

func (e *Embedder) infof(format string, args ...any) {
	if e.Quiet || e.Out == nil {
		return
	}
	fmt.Fprintf(e.Out, format, args...)
}
