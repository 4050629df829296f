// Package media holds small helpers for naming downloaded media files and
// their caption sidecars.
package media

import (
	"path/filepath"
	"strings"
)

// Stem returns path without its extension.
func Stem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// ForceExt returns path with its extension replaced by ext (which must
// include the leading dot). Used for the deterministic rename applied after
// audio extraction post-processing.
func ForceExt(path, ext string) string {
	return Stem(path) + ext
}

// SidecarPath returns the expected caption sidecar path for a video file,
// language code, and subtitle extension (including the leading dot),
// e.g. /out/Title.mp4 + "en" + ".vtt" -> /out/Title.en.vtt
func SidecarPath(videoPath, lang, ext string) string {
	return Stem(videoPath) + "." + lang + ext
}

// TempOutputPath returns the temporary remux target used while embedding
// subtitles, e.g. /out/Title.mp4 -> /out/Title.temp.mp4. The original file
// is never written in place.
func TempOutputPath(videoPath string) string {
	ext := filepath.Ext(videoPath)
	return Stem(videoPath) + ".temp" + ext
}
