package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, dir string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--db", filepath.Join(dir, "js.db"),
	}, args...))
	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func TestImportShowAndToggle(t *testing.T) {
	dir := t.TempDir()
	payload := `[{"ID":"nightly","Name":"nightly","Type":"batch","Periodic":true,
		"JobSummary":{"Children":{"Pending":1,"Running":2,"Dead":3}}}]`
	path := filepath.Join(dir, "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	assert.Contains(t, execute(t, dir, "job", "import", path), "Imported 1 job(s)")
	assert.Contains(t, execute(t, dir, "job", "list"), "children")

	out := execute(t, dir, "pref", "get")
	assert.Contains(t, out, "<unset>")
	assert.Contains(t, out, "expanded")

	out = execute(t, dir, "show", "nightly")
	assert.Contains(t, out, "Children Status")
	assert.Contains(t, out, "dead")

	out = execute(t, dir, "show", "nightly", "--toggle")
	assert.NotContains(t, out, "Children Status")
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(out), "\n")+1)
	showToggle = false

	assert.Contains(t, execute(t, dir, "pref", "get"), `"false"`)
	assert.Contains(t, execute(t, dir, "pref", "toggle"), "Summary expanded")
	execute(t, dir, "pref", "clear")
	assert.Contains(t, execute(t, dir, "pref", "get"), "<unset>")
}

func TestSeedAndRemove(t *testing.T) {
	dir := t.TempDir()
	assert.Contains(t, execute(t, dir, "job", "seed", "3", "--seed", "42"), "Added 3 sample job(s)")
	seedSeed = 0

	out := execute(t, dir, "job", "list")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)

	id := strings.Fields(lines[1])[0]
	assert.Contains(t, execute(t, dir, "job", "rm", id), "Removed")
}
