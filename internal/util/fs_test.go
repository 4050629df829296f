package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	base := t.TempDir()
	nested := filepath.Join(base, "out", "videos")
	if err := EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	fi, err := os.Stat(nested)
	if err != nil || !fi.IsDir() {
		t.Fatalf("EnsureDir did not create %s: %v", nested, err)
	}
	// Idempotent on an existing directory.
	if err := EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir on existing dir: %v", err)
	}
	if err := EnsureDir(""); err == nil {
		t.Fatal("EnsureDir(\"\") = nil, want error")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.mp4")
	if FileExists(p) {
		t.Fatal("FileExists on missing file = true")
	}
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(p) {
		t.Fatal("FileExists on regular file = false")
	}
	if FileExists(dir) {
		t.Fatal("FileExists on directory = true")
	}
}

func TestRemoveIfExists(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "gone.srt")
	if err := RemoveIfExists(p); err != nil {
		t.Fatalf("RemoveIfExists on missing file: %v", err)
	}
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := RemoveIfExists(p); err != nil {
		t.Fatalf("RemoveIfExists: %v", err)
	}
	if FileExists(p) {
		t.Fatal("file still present after RemoveIfExists")
	}
}

func TestMakeTempWorkdir(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	dir, err := MakeTempWorkdir("dl")
	if err != nil {
		t.Fatalf("MakeTempWorkdir: %v", err)
	}
	defer os.RemoveAll(dir)
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		t.Fatalf("workdir %s not a directory: %v", dir, err)
	}
	if filepath.Base(filepath.Dir(dir)) != "ytgrab" {
		t.Errorf("workdir %s not under the app temp base", dir)
	}
}
