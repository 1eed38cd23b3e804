package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// S1: arithmetic specialization succeeds and emits IR for both
// specializations. Mangled names carry the entry module's canonical
// path, so the test runs from the fixture directory with a relative
// entry path to get the module name "main".
func TestRunArithmeticSpecializationEmitsIR(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "main.jsa", `
function add(a, b) {
	return a + b;
}
console.log(add(1, 2));
console.log(add(1.5, 2.5));
`)
	outPath := filepath.Join(dir, "out.ll")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(cwd) }()

	var progress, diags bytes.Buffer
	res := Run(Options{InputPath: "main.jsa", OutputPath: outPath}, &progress, &diags)
	require.Equal(t, ExitSuccess, res.ExitCode)
	require.Contains(t, res.IR, "define i64 @main_add_int_int(")
	require.Contains(t, res.IR, "define double @main_add_double_double(")

	require.NoError(t, WriteOutput(Options{OutputPath: outPath}, res))
	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, res.IR, string(written))
}

// S4: a cyclic import is a completed module-phase diagnosis and exits
// 500, not 404 — spec.md §8 scenario S4. Imports resolve relative to
// the importing file's directory, which the module loader re-derives
// from the canonical module path rather than the disk path it was
// given; this test, like internal/project's own tests, chdirs into the
// fixture directory and passes a relative entry path.
func TestRunCyclicImportExits500(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.jsa", `import "./b.jsa";`)
	writeSource(t, dir, "b.jsa", `import "./a.jsa";`)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(cwd) }()

	var progress, diags bytes.Buffer
	res := Run(Options{InputPath: "a.jsa", OutputPath: "out.ll"}, &progress, &diags)
	require.Equal(t, ExitDiagnostics, res.ExitCode)
	require.Empty(t, res.IR)
	require.Contains(t, diags.String(), "M4002")
}

// S5: an undefined variable reports T301 and exits 500.
func TestRunUndefinedVariableExits500(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "main.jsa", `console.log(xyz);`)

	var progress, diags bytes.Buffer
	res := Run(Options{InputPath: src, OutputPath: filepath.Join(dir, "out.ll")}, &progress, &diags)
	require.Equal(t, ExitDiagnostics, res.ExitCode)
	require.Contains(t, diags.String(), "T301")
}

// An unreadable input path is a failure that blocks all further
// progress, so it maps to 404 rather than the generic 500.
func TestRunMissingInputExits404(t *testing.T) {
	dir := t.TempDir()
	var progress, diags bytes.Buffer
	res := Run(Options{InputPath: filepath.Join(dir, "missing.jsa"), OutputPath: filepath.Join(dir, "out.ll")}, &progress, &diags)
	require.Equal(t, ExitUnresolved, res.ExitCode)
}

// On any ERROR, no IR file is written (spec.md §7).
func TestRunErrorWritesNoIRFile(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "main.jsa", `console.log(xyz);`)
	outPath := filepath.Join(dir, "out.ll")

	var progress, diags bytes.Buffer
	res := Run(Options{InputPath: src, OutputPath: outPath}, &progress, &diags)
	require.NotEqual(t, ExitSuccess, res.ExitCode)
	require.NoError(t, WriteOutput(Options{OutputPath: outPath}, res))
	_, err := os.Stat(outPath)
	require.True(t, os.IsNotExist(err))
}
