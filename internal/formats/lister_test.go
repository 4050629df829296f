package formats

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"ytgrab/internal/engine"
)

type fakeEngine struct {
	meta *engine.Metadata
	err  error
}

func (f *fakeEngine) Resolve(context.Context, string, engine.ExtractionOptions) (*engine.Metadata, error) {
	return f.meta, f.err
}

func (f *fakeEngine) Fetch(context.Context, string, engine.ExtractionOptions) (*engine.Metadata, string, error) {
	return f.meta, "", f.err
}

func TestListRendersCatalog(t *testing.T) {
	meta := &engine.Metadata{
		ID:       "abc",
		Title:    "A Video",
		Uploader: "tester",
		Duration: 90,
		Formats: []engine.Format{
			{FormatID: "sb0", Ext: "mhtml", VCodec: "none", ACodec: "none", FormatNote: "storyboard"},
			{FormatID: "140", Ext: "m4a", VCodec: "none", ACodec: "mp4a", FormatNote: "medium", Filesize: 1536},
			{FormatID: "137", Ext: "mp4", Width: 1920, Height: 1080, FPS: 30, VCodec: "avc1", ACodec: "none"},
			{FormatID: "22", Ext: "mp4", Width: 1280, Height: 720, VCodec: "avc1", ACodec: "mp4a"},
		},
		Subtitles:         map[string][]engine.CaptionTrack{"en": nil},
		AutomaticCaptions: map[string][]engine.CaptionTrack{"fr": nil, "de": nil},
	}

	var buf bytes.Buffer
	l := &Lister{Engine: &fakeEngine{meta: meta}, Out: &buf, Styles: DefaultStyles()}
	if err := l.List(context.Background(), "https://youtu.be/abc", engine.ExtractionOptions{}); err != nil {
		t.Fatalf("List: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"A Video",
		"90 seconds",
		"tester",
		"(audio only)",
		"(video only)",
		"(video+audio)",
		"1.5 KB",
		"Manual: en",
		"Auto-generated: de, fr",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Engine order must be preserved: the storyboard row comes first.
	if strings.Index(out, "sb0") > strings.Index(out, "140") {
		t.Error("stream rows were re-sorted")
	}
}

func TestListFailureIsFatal(t *testing.T) {
	var buf bytes.Buffer
	l := &Lister{Engine: &fakeEngine{err: errors.New("403")}, Out: &buf, Styles: DefaultStyles()}
	err := l.List(context.Background(), "https://youtu.be/abc", engine.ExtractionOptions{})
	if err == nil {
		t.Fatal("expected error to propagate")
	}
	if !strings.Contains(err.Error(), "fetching video info") {
		t.Errorf("err = %v", err)
	}
}
