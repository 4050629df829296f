// Package deps probes the external tools this program delegates to.
package deps

import (
	"fmt"
	"os"
	"os/exec"
)

// Capabilities describes which external tools were found at startup. It is
// computed once and treated as immutable for the life of the process.
type Capabilities struct {
	ExtractorPath string // yt-dlp or youtube-dl
	FFmpegPath    string // empty when ffmpeg is missing
	FFmpeg        bool
}

// FindExtractor returns the path to yt-dlp or youtube-dl.
// If customPath is non-empty, it tries that path or looks it up in PATH.
func FindExtractor(customPath string) (string, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err == nil {
			return customPath, nil
		}
		if p, err := exec.LookPath(customPath); err == nil {
			return p, nil
		}
		return "", fmt.Errorf("could not find extractor at %q", customPath)
	}
	if p, err := exec.LookPath("yt-dlp"); err == nil {
		return p, nil
	}
	if p, err := exec.LookPath("youtube-dl"); err == nil {
		return p, nil
	}
	return "", fmt.Errorf("could not find yt-dlp or youtube-dl in PATH. Please install yt-dlp")
}

// FindFFmpeg returns the path to the ffmpeg binary in PATH.
func FindFFmpeg() (string, error) {
	if p, err := exec.LookPath("ffmpeg"); err == nil {
		return p, nil
	}
	return "", fmt.Errorf("could not find ffmpeg in PATH. Please install ffmpeg")
}

// Probe locates the required extractor and the optional ffmpeg binary.
// A missing extractor is an error; a missing ffmpeg only clears the
// capability flag so dependent features degrade.
func Probe(customExtractor string) (Capabilities, error) {
	ex, err := FindExtractor(customExtractor)
	if err != nil {
		return Capabilities{}, err
	}
	caps := Capabilities{ExtractorPath: ex}
	if ff, err := FindFFmpeg(); err == nil {
		caps.FFmpegPath = ff
		caps.FFmpeg = true
	}
	return caps, nil
}
