package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microsh.dev/microsh/core/vfs"
)

func TestRm(t *testing.T) {
	h := newHarness(t)
	h.writeFile("/a.txt", "a")
	h.writeFile("/b.txt", "b")

	h.mustRun("rm", "a.txt")
	assert.False(t, h.fs.Exists("/a.txt"))
	assert.True(t, h.fs.Exists("/b.txt"))
}

func TestRm_missing(t *testing.T) {
	h := newHarness(t)
	h.writeFile("/keep.txt", "k")

	_, err := h.run("rm", "missing.txt")
	assert.True(t, vfs.IsKind(err, vfs.NotFound), "got %v", err)

	// Nothing else was removed.
	assert.True(t, h.fs.Exists("/keep.txt"))
}

func TestRm_directoryNeedsRecursive(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.fs.Mkdir("/dir"))
	h.writeFile("/dir/child.txt", "c")

	_, err := h.run("rm", "dir")
	assert.True(t, vfs.IsKind(err, vfs.IsADirectory), "got %v", err)
	assert.True(t, h.fs.Exists("/dir/child.txt"))

	h.mustRun("rm", "-r", "dir")
	assert.False(t, h.fs.Exists("/dir"))
}
