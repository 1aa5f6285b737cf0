package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

// runWithSource writes src to a temp file, invokes runScript against it, and
// returns the captured stdout/stderr plus the error runScript returned.
func runWithSource(t *testing.T, src string, args ...string) (string, string, error) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "program.amb")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	var outBuf, errBuf bytes.Buffer
	prevOut, prevErr, prevDump := stdout, stderr, dumpAST
	stdout, stderr = &outBuf, &errBuf
	dumpAST = false
	for _, a := range args {
		if a == "--dump-ast" {
			dumpAST = true
		}
	}
	defer func() { stdout, stderr, dumpAST = prevOut, prevErr, prevDump }()

	err := runScript(runCmd, []string{path})
	return outBuf.String(), errBuf.String(), err
}

func TestRunScriptTrace(t *testing.T) {
	out, errOut, err := runWithSource(t, `
func add(a, b) { return a + b; }
func Main() {
	mut var x = add(1, 2);
	return x;
}`)
	require.NoError(t, err)
	require.Empty(t, errOut)
	snaps.MatchSnapshot(t, "TestRunScriptTrace", out)
}

func TestRunScriptBindAndCompose(t *testing.T) {
	out, errOut, err := runWithSource(t, `
func add(a, b) { return a + b; }
func double(x) { return x * 2; }
func Main() {
	mut var f = [ add << (1) >> double ];
	return f(4);
}`)
	require.NoError(t, err)
	require.Empty(t, errOut)
	snaps.MatchSnapshot(t, "TestRunScriptBindAndCompose", out)
}

func TestRunScriptDiagnosticExitsWithError(t *testing.T) {
	_, errOut, err := runWithSource(t, `func Main() {
		return undefinedVar;
	}`)
	require.Error(t, err)
	require.Contains(t, errOut, "Semantic Error")
	require.Contains(t, errOut, "undefinedVar")
}

func TestRunScriptDumpAST(t *testing.T) {
	out, errOut, err := runWithSource(t, `func Main() {
		return 1;
	}`, "--dump-ast")
	require.NoError(t, err)
	require.Empty(t, errOut)
	snaps.MatchSnapshot(t, "TestRunScriptDumpAST", out)
}
