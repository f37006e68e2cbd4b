package config

import (
	"os"
	"path/filepath"
	"testing"

	"go-pathtracer/pt"
)

func TestLoadOverridesBaseFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	contents := "width = 640\nheight = 360\nbucket = 16\nsamples = 8\ndistribution = \"jittered\"\nseed = 99\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	base := File{Width: 720, Height: 405, Bucket: 32, Samples: 10, Distribution: "random"}
	got, err := Load(path, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Width != 640 || got.Samples != 8 || got.Seed != 99 {
		t.Errorf("expected file values to override base, got %+v", got)
	}
}

func TestLoadMissingFileReturnsConfigError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), File{})
	if err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
	perr, ok := err.(*pt.Error)
	if !ok {
		t.Fatalf("expected a *pt.Error, got %T", err)
	}
	if perr.Kind != pt.ErrConfig {
		t.Errorf("expected ErrConfig, got %v", perr.Kind)
	}
}

func TestSettingsMapsDistribution(t *testing.T) {
	f := File{Width: 100, Height: 100, Bucket: 10, Samples: 4, Distribution: "jittered"}
	s := f.Settings()
	if s.Distribution != pt.Jittered {
		t.Errorf("expected jittered distribution to map through, got %v", s.Distribution)
	}

	f.Distribution = "random"
	if f.Settings().Distribution != pt.Random {
		t.Errorf("expected random distribution to map through")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.toml")
	if Exists(path) {
		t.Fatalf("expected Exists to report false before the file is created")
	}
	if err := os.WriteFile(path, []byte("width = 1\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if !Exists(path) {
		t.Errorf("expected Exists to report true after the file is created")
	}
}
