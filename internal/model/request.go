package model

import "errors"

// Mode is the audio/video inclusion policy for a download.
type Mode string

const (
	ModeCombined  Mode = "combined"
	ModeAudioOnly Mode = "audio-only"
	ModeVideoOnly Mode = "video-only"
)

// SubtitleSelection names the caption languages to fetch. Lang is a single
// language code or the wildcard "all".
type SubtitleSelection struct {
	Lang string
}

// DownloadRequest holds the validated inputs for one batch run. It is
// assembled once at the CLI boundary and immutable afterwards.
type DownloadRequest struct {
	URLs      []string // validated, in input order
	OutputDir string
	Format    string // explicit yt-dlp format selector; "" = mode default
	Mode      Mode
	Subtitles *SubtitleSelection // nil = no captions requested
	EmbedSubs bool
	Merge     bool
	Overwrite bool
	Quiet     bool
	Progress  bool
	Verbose   bool

	// MaxFilesizeMB caps stream size; 0 = unlimited. Converted to bytes
	// when extraction options are built.
	MaxFilesizeMB float64

	Simulate bool
}

// Validate checks the cross-field invariants that argument parsing cannot
// express. Mode already encodes the audio-only/video-only exclusivity, so a
// request constructed through AssembleMode can never violate it.
func (r DownloadRequest) Validate() error {
	if len(r.URLs) == 0 {
		return errors.New("at least one URL is required")
	}
	switch r.Mode {
	case ModeCombined, ModeAudioOnly, ModeVideoOnly:
	default:
		return errors.New("unknown download mode")
	}
	return nil
}

// AssembleMode maps the --audio-only/--video-only flag pair to a Mode,
// rejecting the mutually exclusive combination.
func AssembleMode(audioOnly, videoOnly bool) (Mode, error) {
	switch {
	case audioOnly && videoOnly:
		return "", errors.New("--audio-only and --video-only are mutually exclusive")
	case audioOnly:
		return ModeAudioOnly, nil
	case videoOnly:
		return ModeVideoOnly, nil
	default:
		return ModeCombined, nil
	}
}
