package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// TestRun_InlineValues runs the documented scenario end to end.
func TestRun_InlineValues(t *testing.T) {
	out, err := execute(t, "--values", "1,2,3,4,5,6", "--totals", "12,9")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 5 unique solution(s)")
	assert.Contains(t, out, "[Unique solution 5]")
}

// TestRun_FileInput loads both sources from one-value-per-line files.
func TestRun_FileInput(t *testing.T) {
	dir := t.TempDir()
	valuesPath := filepath.Join(dir, "values.txt")
	totalsPath := filepath.Join(dir, "totals.txt")
	require.NoError(t, os.WriteFile(valuesPath, []byte("1\n2\n3\n4\n5\n6\n"), 0o600))
	require.NoError(t, os.WriteFile(totalsPath, []byte("12\n\n9\n"), 0o600))

	out, err := execute(t, "--values-path", valuesPath, "--totals-path", totalsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Found 5 unique solution(s)")
}

// TestRun_MissingSource rejects a run with neither inline values nor a file.
func TestRun_MissingSource(t *testing.T) {
	_, err := execute(t, "--totals", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--values")

	_, err = execute(t, "--values", "1,2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--totals")
}

// TestRun_ConflictingSources rejects inline values combined with a file.
func TestRun_ConflictingSources(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "values.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n"), 0o600))

	_, err := execute(t, "--values", "1", "--values-path", path, "--totals", "1")
	require.Error(t, err)
}

// TestRun_SelfTest exercises the built-in fixture path.
func TestRun_SelfTest(t *testing.T) {
	out, err := execute(t, "--test")
	require.NoError(t, err)
	assert.Contains(t, out, "Planted answer")
	assert.Contains(t, out, "unique solution(s)")
}

// TestReadFloats_BadLine reports the offending line number.
func TestReadFloats_BadLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "values.txt")
	require.NoError(t, os.WriteFile(path, []byte("1.5\nnope\n"), 0o600))

	_, err := readFloats(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":2:")
	assert.Contains(t, err.Error(), "nope")
}

// TestReadFloats_SkipsBlankLines keeps only numeric lines.
func TestReadFloats_SkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "values.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n\n  \n-2.5\n"), 0o600))

	got, err := readFloats(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -2.5}, got)
}
