package driver

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest is the optional project-level configuration file
// (jsasta.toml, checked from the current working directory) that
// supplies defaults for flags the CLI doesn't pass explicitly. Nothing
// in spec.md §6 requires a manifest — every field here is a fallback a
// bare `jsastac input.jsa` run can use instead of repeating flags.
type Manifest struct {
	Output    string `toml:"output"`
	Debug     bool   `toml:"debug"`
	DebugMode bool   `toml:"debug_mode"`
}

// LoadManifest reads jsasta.toml from dir if present. A missing file is
// not an error — it just means no defaults override the CLI's own.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "jsasta.toml")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ApplyManifest fills in Options fields the caller left at their flag
// default with the manifest's value. explicit names the flags the
// caller actually passed on the command line (by cobra flag name) —
// anything in that set is left untouched, since an explicit flag always
// wins over a manifest default.
func ApplyManifest(opts Options, m *Manifest, explicit map[string]bool) Options {
	if m == nil {
		return opts
	}
	if !explicit["output"] && m.Output != "" {
		opts.OutputPath = m.Output
	}
	if !explicit["debug"] && m.Debug {
		opts.Debug = true
	}
	if !explicit["debug-mode"] && m.DebugMode {
		opts.DebugMode = true
	}
	return opts
}
