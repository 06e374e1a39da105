package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	want := Default()
	want.Video.Scale = 2
	want.Audio.Volume = 0.25
	want.Input.Player1.A = "q"
	if err := save(path, want); err != nil {
		t.Fatal(err)
	}

	got, err := load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadClampsScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[video]\nscale = 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Video.Scale != 1 {
		t.Errorf("got scale %d, want 1", cfg.Video.Scale)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "config.toml"))
	if !os.IsNotExist(err) {
		t.Errorf("got %v, want a does-not-exist error", err)
	}
}
