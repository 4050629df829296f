// Package ffmpeg adapts the external media-processing binary. Only container
// remuxing is driven from here; codec work stays inside the tool.
package ffmpeg

import (
	"context"
	"fmt"

	"ytgrab/internal/model"
	"ytgrab/internal/util"
)

// Processor invokes the ffmpeg binary.
type Processor struct {
	Path   string
	Runner util.CmdRunner
	Quiet  bool
}

// New returns a Processor using the default subprocess runner.
func New(path string) *Processor {
	return &Processor{Path: path, Runner: util.NewRunner()}
}

// RemuxArgs builds the subtitle-embedding invocation: copy the first video
// and first audio stream untouched, add every caption file as a subtitle
// stream with a language tag, and write to a separate output path.
func RemuxArgs(videoPath string, captions []model.CaptionFile, outPath string, overwrite bool) []string {
	args := []string{"-hide_banner", "-nostdin", "-i", videoPath}
	for _, c := range captions {
		args = append(args, "-i", c.Path)
	}
	args = append(args, "-map", "0:v:0", "-map", "0:a:0")
	for i := range captions {
		args = append(args, "-map", fmt.Sprintf("%d:s", i+1))
	}
	for i, c := range captions {
		args = append(args, fmt.Sprintf("-metadata:s:s:%d", i), "language="+c.Language)
	}
	args = append(args, "-c", "copy")
	if overwrite {
		args = append(args, "-y")
	} else {
		args = append(args, "-n")
	}
	return append(args, outPath)
}

// RemuxWithSubtitles runs the embedding invocation. The source file is never
// written in place; outPath must be a distinct temporary target.
func (p *Processor) RemuxWithSubtitles(ctx context.Context, videoPath string, captions []model.CaptionFile, outPath string, overwrite bool) error {
	if p.Path == "" {
		return fmt.Errorf("ffmpeg path is required")
	}
	_, err := p.Runner.Run(ctx, util.CmdSpec{
		Path: p.Path,
		Args: RemuxArgs(videoPath, captions, outPath, overwrite),
	})
	if err != nil {
		return fmt.Errorf("ffmpeg remux: %w", err)
	}
	return nil
}
