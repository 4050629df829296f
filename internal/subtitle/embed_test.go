package subtitle

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ytgrab/internal/engine"
	"ytgrab/internal/ffmpeg"
	"ytgrab/internal/util"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func metaWithLangs(manual, auto []string) *engine.Metadata {
	m := &engine.Metadata{
		Subtitles:         map[string][]engine.CaptionTrack{},
		AutomaticCaptions: map[string][]engine.CaptionTrack{},
	}
	for _, l := range manual {
		m.Subtitles[l] = nil
	}
	for _, l := range auto {
		m.AutomaticCaptions[l] = nil
	}
	return m
}

// remuxRunner simulates an ffmpeg run: on success it creates the output file
// named by the final argument; with fail set it errors, leaving a
// half-written output behind when partial is also set.
type remuxRunner struct {
	fail    bool
	partial bool
	calls   int
}

func (r *remuxRunner) Run(_ context.Context, spec util.CmdSpec) (util.CmdResult, error) {
	r.calls++
	out := spec.Args[len(spec.Args)-1]
	if r.fail {
		if r.partial {
			_ = os.WriteFile(out, []byte("half"), 0o644)
		}
		return util.CmdResult{Code: 1}, errors.New("command failed (exit 1)")
	}
	if err := os.WriteFile(out, []byte("muxed"), 0o644); err != nil {
		return util.CmdResult{Code: -1}, err
	}
	return util.CmdResult{}, nil
}

func newEmbedder(runner util.CmdRunner) *Embedder {
	return &Embedder{
		Processor: &ffmpeg.Processor{Path: "/usr/bin/ffmpeg", Runner: runner},
		Out:       &bytes.Buffer{},
		Errout:    &bytes.Buffer{},
	}
}

func TestDiscoverCaptionsPriority(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "Video.mp4")
	writeFile(t, video, "v")
	// en has both vtt and srt; vtt must win. fr has only srt. de has none.
	writeFile(t, filepath.Join(dir, "Video.en.vtt"), "s")
	writeFile(t, filepath.Join(dir, "Video.en.srt"), "s")
	writeFile(t, filepath.Join(dir, "Video.fr.srt"), "s")

	got := DiscoverCaptions(video, metaWithLangs([]string{"en"}, []string{"fr", "de"}))
	if len(got) != 2 {
		t.Fatalf("found %d captions, want 2: %v", len(got), got)
	}
	if got[0].Language != "en" || filepath.Ext(got[0].Path) != ".vtt" {
		t.Errorf("en caption = %+v, want .vtt", got[0])
	}
	if got[1].Language != "fr" || filepath.Ext(got[1].Path) != ".srt" {
		t.Errorf("fr caption = %+v, want .srt", got[1])
	}
}

func TestEmbedNoCaptionsIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "Video.mp4")
	writeFile(t, video, "original")

	runner := &remuxRunner{}
	e := newEmbedder(runner)

	got, err := e.Embed(context.Background(), video, metaWithLangs([]string{"en"}, nil), false)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if got != video {
		t.Errorf("path = %q, want unchanged %q", got, video)
	}
	if runner.calls != 0 {
		t.Errorf("ffmpeg was invoked %d times, want 0", runner.calls)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("filesystem touched: %v", entries)
	}
	data, _ := os.ReadFile(video)
	if string(data) != "original" {
		t.Error("video content changed")
	}
}

func TestEmbedSuccessReplacesAndCleansUp(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "Video.mp4")
	sub := filepath.Join(dir, "Video.en.vtt")
	writeFile(t, video, "original")
	writeFile(t, sub, "captions")

	e := newEmbedder(&remuxRunner{})
	got, err := e.Embed(context.Background(), video, metaWithLangs([]string{"en"}, nil), false)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if got != video {
		t.Errorf("path = %q, want %q", got, video)
	}
	data, err := os.ReadFile(video)
	if err != nil {
		t.Fatalf("read video: %v", err)
	}
	if string(data) != "muxed" {
		t.Errorf("video content = %q, want remuxed output", data)
	}
	if util.FileExists(sub) {
		t.Error("consumed sidecar was not deleted")
	}
	if util.FileExists(filepath.Join(dir, "Video.temp.mp4")) {
		t.Error("temp output left behind")
	}
}

func TestEmbedFailureLeavesOriginalUntouched(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "Video.mp4")
	sub := filepath.Join(dir, "Video.en.vtt")
	writeFile(t, video, "original")
	writeFile(t, sub, "captions")

	e := newEmbedder(&remuxRunner{fail: true, partial: true})
	got, err := e.Embed(context.Background(), video, metaWithLangs([]string{"en"}, nil), false)
	if err == nil {
		t.Fatal("expected remux error")
	}
	if got != video {
		t.Errorf("path = %q, want original %q", got, video)
	}
	data, _ := os.ReadFile(video)
	if string(data) != "original" {
		t.Error("original video modified on failure")
	}
	if !util.FileExists(sub) {
		t.Error("sidecar deleted on failure")
	}
	if util.FileExists(filepath.Join(dir, "Video.temp.mp4")) {
		t.Error("half-written temp output not cleaned up")
	}
}

func TestEmbedMissingVideo(t *testing.T) {
	e := newEmbedder(&remuxRunner{})
	path := filepath.Join(t.TempDir(), "gone.mp4")
	got, err := e.Embed(context.Background(), path, metaWithLangs([]string{"en"}, nil), false)
	if err == nil {
		t.Fatal("expected error for missing video")
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
}
