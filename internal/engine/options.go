package engine

import "ytgrab/internal/model"

// Subtitle format preference handed to the engine: srt if the host offers
// it, else vtt, else whatever is best.
const subtitleFormatPreference = "srt/vtt/best"

// mergeContainer is the fixed unification target for separately fetched
// audio and video streams.
const mergeContainer = "mp4"

// AudioExtraction is the post-processing step attached for audio-only
// downloads when the media-processing binary is available.
type AudioExtraction struct {
	Codec   string // target codec/container, e.g. "mp3"
	Quality string // codec quality target, e.g. "192K"
}

// SubtitleRequest asks the engine to fetch caption sidecars.
type SubtitleRequest struct {
	Languages []string // single code or ["all"]
	Format    string   // container preference chain
	Manual    bool
	Auto      bool
}

// ExtractionOptions is the per-attempt configuration handed to the
// extraction engine. It is derived from one DownloadRequest, owned by the
// orchestrator for the duration of one URL, and discarded after.
type ExtractionOptions struct {
	OutputDir string
	TempDir   string

	Format         string
	MergeContainer string           // "" = no merge requested
	ExtractAudio   *AudioExtraction // nil = no post-processing step
	Subtitles      *SubtitleRequest // nil = no captions

	MaxFilesizeBytes int64 // 0 = no ceiling

	Overwrite bool
	Quiet     bool
	Progress  bool
	Verbose   bool
}

// BuildOptions deterministically translates a validated request and a scoped
// temp directory into engine options. Filename restriction is unconditional
// (a portability invariant, not a user option) and is applied by the engine
// adapter.
//
// ffmpegAvailable is the immutable capability flag probed once at startup:
// without it no audio-extraction step is attached and the caller has already
// warned about the degradation.
func BuildOptions(req model.DownloadRequest, tempDir string, ffmpegAvailable bool) ExtractionOptions {
	opts := ExtractionOptions{
		OutputDir: req.OutputDir,
		TempDir:   tempDir,
		Format:    req.Format,
		Overwrite: req.Overwrite,
		Quiet:     req.Quiet,
		Progress:  req.Progress,
		Verbose:   req.Verbose,
	}

	// Explicit user format wins; otherwise the mode default applies.
	if opts.Format == "" {
		switch req.Mode {
		case model.ModeAudioOnly:
			opts.Format = "bestaudio/best"
		case model.ModeVideoOnly:
			opts.Format = "bestvideo"
		default:
			opts.Format = "bestvideo+bestaudio/best"
		}
	}

	if req.Mode == model.ModeAudioOnly && ffmpegAvailable {
		opts.ExtractAudio = &AudioExtraction{Codec: "mp3", Quality: "192K"}
	}

	if req.Subtitles != nil {
		lang := req.Subtitles.Lang
		if lang == "" {
			lang = "en"
		}
		opts.Subtitles = &SubtitleRequest{
			Languages: []string{lang},
			Format:    subtitleFormatPreference,
			Manual:    true,
			Auto:      true,
		}
	}

	if req.MaxFilesizeMB > 0 {
		opts.MaxFilesizeBytes = int64(req.MaxFilesizeMB * 1024 * 1024)
	}

	if req.Merge {
		opts.MergeContainer = mergeContainer
	}

	return opts
}
