package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microsh.dev/microsh/core/vfs"
)

func TestLs(t *testing.T) {
	h := newHarness(t)
	h.writeFile("/banana.txt", "b")
	h.writeFile("/apple.txt", "a")
	require.NoError(t, h.fs.Mkdir("/docs"))

	assert.Equal(t, "apple.txt\nbanana.txt\ndocs/\n", h.mustRun("ls"))
}

func TestLs_hiddenEntries(t *testing.T) {
	h := newHarness(t)
	h.writeFile("/.config", "c")
	h.writeFile("/visible.txt", "v")

	assert.Equal(t, "visible.txt\n", h.mustRun("ls"))
	assert.Equal(t, ".config\nvisible.txt\n", h.mustRun("ls", "-a"))
}

func TestLs_longListing(t *testing.T) {
	h := newHarness(t)
	h.writeFile("/file.txt", "12345")
	require.NoError(t, h.fs.Mkdir("/dir"))

	out := h.mustRun("ls", "-l")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "d", string(lines[0][0]))
	assert.Contains(t, lines[0], "dir")
	assert.Equal(t, "-", string(lines[1][0]))
	assert.Contains(t, lines[1], "5")
	assert.Contains(t, lines[1], "file.txt")
}

func TestLs_explicitPath(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.fs.MkdirAll("/data/logs"))
	h.writeFile("/data/boot.log", "x")

	assert.Equal(t, "boot.log\nlogs/\n", h.mustRun("ls", "/data"))
}

func TestLs_notADirectory(t *testing.T) {
	h := newHarness(t)
	h.writeFile("/file.txt", "x")

	_, err := h.run("ls", "file.txt")
	assert.True(t, vfs.IsKind(err, vfs.NotADirectory), "got %v", err)
}

func TestLs_missingPath(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("ls", "nope")
	assert.True(t, vfs.IsKind(err, vfs.NotFound), "got %v", err)
}
