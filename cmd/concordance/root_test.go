package main

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRootCmd_Stdout(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.txt", "The cat and the dog.\nA dog!\n")
	stop := writeFile(t, dir, "stop.txt", "the and\na\n")

	stdout, _, err := execute(t, "--stop", stop, input)
	require.NoError(t, err)
	assert.Equal(t, "cat: 1\ndog: 1 2\n", stdout)
}

func TestRootCmd_OutputFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.txt", "Cat dog. Cat bird.\nDog cat\n")
	out := filepath.Join(dir, "out.txt")

	stdout, stderr, err := execute(t, "-o", out, "--hash", "xxhash", "--capacity", "3", "--stats", input)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "entries: size=3")

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "bird: 1\ncat: 1 2\ndog: 1 2", string(got))
}

func TestRootCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.txt", "word\n")

	t.Run("missing input", func(t *testing.T) {
		_, _, err := execute(t, filepath.Join(dir, "nope.txt"))
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("missing stop words", func(t *testing.T) {
		_, _, err := execute(t, "-s", filepath.Join(dir, "nope.txt"), input)
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("bad hash", func(t *testing.T) {
		_, _, err := execute(t, "--hash", "md5", input)
		require.ErrorContains(t, err, `unknown hash "md5"`)
	})

	t.Run("bad capacity", func(t *testing.T) {
		_, _, err := execute(t, "--capacity", "0", input)
		require.ErrorContains(t, err, "--capacity must be positive")
	})

	t.Run("no args", func(t *testing.T) {
		_, _, err := execute(t)
		require.Error(t, err)
	})
}
