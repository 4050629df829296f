package engine

import (
	"testing"

	"ytgrab/internal/model"
)

func TestBuildOptionsFormatPolicy(t *testing.T) {
	tests := []struct {
		name       string
		req        model.DownloadRequest
		wantFormat string
	}{
		{
			name:       "explicit selector wins",
			req:        model.DownloadRequest{Mode: model.ModeAudioOnly, Format: "137+140"},
			wantFormat: "137+140",
		},
		{
			name:       "audio-only default",
			req:        model.DownloadRequest{Mode: model.ModeAudioOnly},
			wantFormat: "bestaudio/best",
		},
		{
			name:       "video-only default",
			req:        model.DownloadRequest{Mode: model.ModeVideoOnly},
			wantFormat: "bestvideo",
		},
		{
			name:       "combined default",
			req:        model.DownloadRequest{Mode: model.ModeCombined},
			wantFormat: "bestvideo+bestaudio/best",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := BuildOptions(tt.req, t.TempDir(), true)
			if opts.Format != tt.wantFormat {
				t.Errorf("Format = %q, want %q", opts.Format, tt.wantFormat)
			}
		})
	}
}

func TestBuildOptionsAudioExtraction(t *testing.T) {
	req := model.DownloadRequest{Mode: model.ModeAudioOnly}

	opts := BuildOptions(req, t.TempDir(), true)
	if opts.ExtractAudio == nil {
		t.Fatal("expected audio extraction step when ffmpeg is available")
	}
	if opts.ExtractAudio.Codec != "mp3" || opts.ExtractAudio.Quality != "192K" {
		t.Errorf("ExtractAudio = %+v, want mp3/192K", *opts.ExtractAudio)
	}

	// Without ffmpeg the step is silently not attached.
	opts = BuildOptions(req, t.TempDir(), false)
	if opts.ExtractAudio != nil {
		t.Error("audio extraction step attached without ffmpeg")
	}
}

func TestBuildOptionsSubtitles(t *testing.T) {
	req := model.DownloadRequest{
		Mode:      model.ModeCombined,
		Subtitles: &model.SubtitleSelection{Lang: "fr"},
	}
	opts := BuildOptions(req, t.TempDir(), true)
	sub := opts.Subtitles
	if sub == nil {
		t.Fatal("expected subtitle request")
	}
	if !sub.Manual || !sub.Auto {
		t.Error("both manual and auto captions must be requested")
	}
	if sub.Format != "srt/vtt/best" {
		t.Errorf("Format = %q, want srt/vtt/best", sub.Format)
	}
	if len(sub.Languages) != 1 || sub.Languages[0] != "fr" {
		t.Errorf("Languages = %v, want [fr]", sub.Languages)
	}

	req.Subtitles = &model.SubtitleSelection{Lang: "all"}
	opts = BuildOptions(req, t.TempDir(), true)
	if got := opts.Subtitles.Languages; len(got) != 1 || got[0] != "all" {
		t.Errorf("Languages = %v, want [all]", got)
	}
}

func TestBuildOptionsSizeCap(t *testing.T) {
	req := model.DownloadRequest{Mode: model.ModeCombined, MaxFilesizeMB: 10}
	opts := BuildOptions(req, t.TempDir(), true)
	if opts.MaxFilesizeBytes != 10485760 {
		t.Errorf("MaxFilesizeBytes = %d, want 10485760", opts.MaxFilesizeBytes)
	}

	req.MaxFilesizeMB = 0
	opts = BuildOptions(req, t.TempDir(), true)
	if opts.MaxFilesizeBytes != 0 {
		t.Errorf("MaxFilesizeBytes = %d, want 0 when unset", opts.MaxFilesizeBytes)
	}
}

func TestBuildOptionsMerge(t *testing.T) {
	req := model.DownloadRequest{Mode: model.ModeCombined, Merge: true}
	opts := BuildOptions(req, t.TempDir(), true)
	if opts.Format != "bestvideo+bestaudio/best" {
		t.Errorf("Format = %q, want bestvideo+bestaudio/best", opts.Format)
	}
	if opts.MergeContainer != "mp4" {
		t.Errorf("MergeContainer = %q, want mp4", opts.MergeContainer)
	}

	req.Merge = false
	opts = BuildOptions(req, t.TempDir(), true)
	if opts.MergeContainer != "" {
		t.Errorf("MergeContainer = %q, want empty when merge not requested", opts.MergeContainer)
	}
}

func TestCapabilityTag(t *testing.T) {
	tests := []struct {
		name string
		f    Format
		want string
	}{
		{name: "both", f: Format{VCodec: "avc1", ACodec: "mp4a"}, want: "(video+audio)"},
		{name: "video only", f: Format{VCodec: "vp9", ACodec: "none"}, want: "(video only)"},
		{name: "audio only", f: Format{VCodec: "none", ACodec: "opus"}, want: "(audio only)"},
		{name: "storyboard", f: Format{VCodec: "none", ACodec: "none"}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.CapabilityTag(); got != tt.want {
				t.Errorf("CapabilityTag() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCaptionLanguages(t *testing.T) {
	m := &Metadata{
		Subtitles:         map[string][]CaptionTrack{"en": nil, "fr": nil},
		AutomaticCaptions: map[string][]CaptionTrack{"en": nil, "de": nil},
	}
	got := m.CaptionLanguages()
	want := []string{"de", "en", "fr"}
	if len(got) != len(want) {
		t.Fatalf("CaptionLanguages() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CaptionLanguages()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
