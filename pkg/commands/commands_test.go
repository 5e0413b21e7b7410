package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	cmd := New()
	want := []string{"add", "completion", "config", "delete", "format", "get", "key",
		"search", "set", "template", "ui", "validate", "version"}
	var got []string
	for _, c := range cmd.Commands() {
		got = append(got, c.Name())
	}
	assert.ElementsMatch(t, want, got)

	tpl, _, err := cmd.Find([]string{"template", "insert"})
	require.NoError(t, err)
	assert.Equal(t, "insert", tpl.Name())

	require.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	got, err := resolveFile([]string{"explicit.json"})
	require.NoError(t, err)
	assert.Equal(t, "explicit.json", got)

	_, err = resolveFile(nil)
	assert.ErrorIs(t, err, errNoJSONFiles)

	for _, name := range []string{"b.json", "a.json", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644))
	}
	got, err = resolveFile(nil)
	require.NoError(t, err)
	assert.Equal(t, "a.json", got)
}

func TestParseErrorShowsSourceLine(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("JED_CONFIG_PATH", dir)
	t.Setenv("HOME", dir)
	file := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(file, []byte("{\n  \"a\": 1,\n  \"b\": x\n}"), 0o644))

	for _, args := range [][]string{{"--print", file}, {"get", file}} {
		t.Run(args[0], func(t *testing.T) {
			cmd := New()
			cmd.SetArgs(args)
			var stderr bytes.Buffer
			cmd.SetErr(&stderr)

			require.Error(t, Execute(cmd))
			out := stderr.String()
			assert.Contains(t, out, "line 3, column 8")
			assert.Contains(t, out, "  \"b\": x\n       ^")
		})
	}
}
