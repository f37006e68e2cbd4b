// Package config loads optional TOML overrides for pt.RenderSettings.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"go-pathtracer/pt"
)

// File mirrors pt.RenderSettings as TOML-decodable fields. Distribution
// is a string ("random" or "jittered") rather than pt.Distribution's
// int so the file stays human-editable.
type File struct {
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	Bucket       int    `toml:"bucket"`
	Samples      int    `toml:"samples"`
	Distribution string `toml:"distribution"`
	Seed         int64  `toml:"seed"`
	Threads      int    `toml:"threads"`
}

// Load decodes a TOML settings file at path over base: a field the file
// does not set keeps the value it had in base, so callers pass their
// defaults in via base.
func Load(path string, base File) (File, error) {
	if _, err := toml.DecodeFile(path, &base); err != nil {
		return File{}, pt.NewConfigError("could not read config file "+path, err)
	}
	return base, nil
}

// Settings converts a File into pt.RenderSettings, defaulting an
// unrecognized or empty Distribution to pt.Random.
func (f File) Settings() pt.RenderSettings {
	dist := pt.Random
	if f.Distribution == "jittered" {
		dist = pt.Jittered
	}
	return pt.RenderSettings{
		Width:        f.Width,
		Height:       f.Height,
		Bucket:       f.Bucket,
		Samples:      f.Samples,
		Distribution: dist,
		Seed:         f.Seed,
	}
}

// Exists reports whether a config file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
