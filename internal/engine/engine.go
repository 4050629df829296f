// Package engine defines the contract with the external video-extraction
// engine and the options derived from a download request.
package engine

import (
	"context"
	"sort"
)

// Engine is the boundary to the external extraction tool. Resolve performs a
// metadata-only query; Fetch downloads the selected stream(s) and returns the
// final local path reported by the tool.
type Engine interface {
	Resolve(ctx context.Context, url string, opts ExtractionOptions) (*Metadata, error)
	Fetch(ctx context.Context, url string, opts ExtractionOptions) (*Metadata, string, error)
}

// CaptionTrack is one downloadable caption variant for a language.
type CaptionTrack struct {
	Ext  string `json:"ext"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

// Format describes one stream offered by the host.
type Format struct {
	FormatID   string  `json:"format_id"`
	Ext        string  `json:"ext"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	FPS        float64 `json:"fps"`
	Filesize   int64   `json:"filesize"`
	VCodec     string  `json:"vcodec"`
	ACodec     string  `json:"acodec"`
	FormatNote string  `json:"format_note"`
}

// HasVideo reports whether the stream carries a video track.
func (f Format) HasVideo() bool { return f.VCodec != "" && f.VCodec != "none" }

// HasAudio reports whether the stream carries an audio track.
func (f Format) HasAudio() bool { return f.ACodec != "" && f.ACodec != "none" }

// CapabilityTag derives the human-readable stream capability annotation.
// Streams with neither track (e.g. storyboards) get no tag.
func (f Format) CapabilityTag() string {
	switch {
	case f.HasVideo() && f.HasAudio():
		return "(video+audio)"
	case f.HasVideo():
		return "(video only)"
	case f.HasAudio():
		return "(audio only)"
	default:
		return ""
	}
}

// Metadata is the read-only result of resolving one URL. Field names mirror
// the engine's JSON output.
type Metadata struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Uploader string  `json:"uploader"`
	Duration float64 `json:"duration"`
	Ext      string  `json:"ext"`

	Formats []Format `json:"formats"`

	Subtitles         map[string][]CaptionTrack `json:"subtitles"`
	AutomaticCaptions map[string][]CaptionTrack `json:"automatic_captions"`
}

// CaptionLanguages returns the sorted union of manual and auto-generated
// caption languages.
func (m *Metadata) CaptionLanguages() []string {
	seen := make(map[string]struct{}, len(m.Subtitles)+len(m.AutomaticCaptions))
	for lang := range m.Subtitles {
		seen[lang] = struct{}{}
	}
	for lang := range m.AutomaticCaptions {
		seen[lang] = struct{}{}
	}
	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// ManualCaptionLanguages returns the sorted manual caption languages.
func (m *Metadata) ManualCaptionLanguages() []string {
	return sortedKeys(m.Subtitles)
}

// AutoCaptionLanguages returns the sorted auto-generated caption languages.
func (m *Metadata) AutoCaptionLanguages() []string {
	return sortedKeys(m.AutomaticCaptions)
}

func sortedKeys(m map[string][]CaptionTrack) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
