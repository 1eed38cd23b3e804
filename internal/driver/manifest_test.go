package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadManifestMissingFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	m, err := LoadManifest(dir)
	require.NoError(t, err)
	require.Nil(t, m)
}

func TestLoadManifestParsesTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jsasta.toml"), []byte(`
output = "build/out.ll"
debug = true
debug_mode = false
`), 0o644))

	m, err := LoadManifest(dir)
	require.NoError(t, err)
	require.NotNil(t, m)
	require.Equal(t, "build/out.ll", m.Output)
	require.True(t, m.Debug)
	require.False(t, m.DebugMode)
}

func TestApplyManifestLeavesExplicitFlagsUntouched(t *testing.T) {
	m := &Manifest{Output: "manifest.ll", Debug: true}
	opts := Options{OutputPath: "cli.ll"}
	out := ApplyManifest(opts, m, map[string]bool{"output": true})
	require.Equal(t, "cli.ll", out.OutputPath)
	require.True(t, out.Debug)
}

func TestApplyManifestFillsUnsetFlags(t *testing.T) {
	m := &Manifest{Output: "manifest.ll", Debug: true, DebugMode: true}
	opts := Options{OutputPath: "output.ll"}
	out := ApplyManifest(opts, m, map[string]bool{})
	require.Equal(t, "manifest.ll", out.OutputPath)
	require.True(t, out.Debug)
	require.True(t, out.DebugMode)
}
