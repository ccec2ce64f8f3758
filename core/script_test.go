package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microsh.dev/microsh/core/vfs"
)

func (f *shellFixture) writeScript(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, f.fs.Write(path, strings.NewReader(contents), vfs.WriteOverwrite))
}

func TestRunScript(t *testing.T) {
	f := newTestShell(t)
	f.writeScript(t, "/setup.sh", strings.Join([]string{
		"# provision the data directory",
		"",
		"mkdir -p /data/logs",
		"echo ready > /data/status.txt",
		"   cat /data/status.txt",
	}, "\n"))

	require.NoError(t, f.RunScript("/setup.sh"))
	assert.Equal(t, "ready\n", f.output())
	assert.True(t, f.fs.Exists("/data/logs"))
}

func TestRunScript_missing(t *testing.T) {
	f := newTestShell(t)

	err := f.RunScript("/nope.sh")
	assert.True(t, vfs.IsKind(err, vfs.NotFound), "got %v", err)
}

// exit inside a script is ignored so a script can't end the session.
func TestRunScript_ignoresExit(t *testing.T) {
	f := newTestShell(t)
	f.writeScript(t, "/quit.sh", "echo first\nexit\necho second\n")

	require.NoError(t, f.RunScript("/quit.sh"))
	assert.Equal(t, "first\nexit: ignored inside script\nsecond\n", f.output())
	assert.False(t, f.Session().ExitRequested())
}

// A command failure inside a script is reported and the script keeps
// going.
func TestRunScript_commandErrorsContinue(t *testing.T) {
	f := newTestShell(t)
	f.writeScript(t, "/flaky.sh", "cat missing.txt\necho survived\n")

	require.NoError(t, f.RunScript("/flaky.sh"))
	assert.Equal(t,
		"cat: /missing.txt: No such file or directory\nsurvived\n",
		f.output())
}

func TestRunScript_nested(t *testing.T) {
	f := newTestShell(t)
	f.writeScript(t, "/outer.sh", "echo outer\nexec /inner.sh\n")
	f.writeScript(t, "/inner.sh", "echo inner\n")

	require.NoError(t, f.RunScript("/outer.sh"))
	assert.Equal(t, "outer\ninner\n", f.output())
}

// A self-executing script hits the depth limit instead of recursing
// forever.
func TestRunScript_depthLimit(t *testing.T) {
	f := newTestShell(t)
	f.writeScript(t, "/loop.sh", "exec /loop.sh\n")

	require.NoError(t, f.RunScript("/loop.sh"))
	assert.Contains(t, f.output(), "too many levels of nested scripts")
}
