package vfs

import (
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFS(t *testing.T, opts ...Option) Filesystem {
	t.Helper()
	return New(afero.NewMemMapFs(), opts...)
}

func writeString(t *testing.T, fs Filesystem, path, contents string) {
	t.Helper()
	require.NoError(t, fs.Write(path, strings.NewReader(contents), WriteOverwrite))
}

func readString(t *testing.T, fs Filesystem, path string) string {
	t.Helper()
	fd, err := fs.Open(path)
	require.NoError(t, err)
	defer fd.Close()

	contents, err := io.ReadAll(fd)
	require.NoError(t, err)
	return string(contents)
}

func TestAferoFS_writeAndRead(t *testing.T) {
	fs := newTestFS(t)

	writeString(t, fs, "/hello.txt", "hello world\n")
	assert.Equal(t, "hello world\n", readString(t, fs, "/hello.txt"))

	entry, err := fs.Stat("/hello.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello.txt", entry.Name)
	assert.Equal(t, KindFile, entry.Kind)
	assert.Equal(t, int64(12), entry.Size)
}

func TestAferoFS_writeModes(t *testing.T) {
	fs := newTestFS(t)

	writeString(t, fs, "/log.txt", "one\n")
	require.NoError(t, fs.Write("/log.txt", strings.NewReader("two\n"), WriteAppend))
	assert.Equal(t, "one\ntwo\n", readString(t, fs, "/log.txt"))

	require.NoError(t, fs.Write("/log.txt", strings.NewReader("three\n"), WriteOverwrite))
	assert.Equal(t, "three\n", readString(t, fs, "/log.txt"))
}

func TestAferoFS_errorKinds(t *testing.T) {
	fs := newTestFS(t)
	require.NoError(t, fs.Mkdir("/dir"))
	writeString(t, fs, "/file.txt", "data")
	writeString(t, fs, "/dir/child.txt", "data")

	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{
			name: "open missing file",
			err: func() error {
				_, err := fs.Open("/missing.txt")
				return err
			}(),
			kind: NotFound,
		},
		{
			name: "open directory",
			err: func() error {
				_, err := fs.Open("/dir")
				return err
			}(),
			kind: IsADirectory,
		},
		{
			name: "list a file",
			err: func() error {
				_, err := fs.List("/file.txt")
				return err
			}(),
			kind: NotADirectory,
		},
		{
			name: "mkdir over existing",
			err:  fs.Mkdir("/dir"),
			kind: AlreadyExists,
		},
		{
			name: "mkdir under missing parent",
			err:  fs.Mkdir("/missing/dir"),
			kind: NotFound,
		},
		{
			name: "delete missing file",
			err:  fs.Delete("/missing.txt"),
			kind: NotFound,
		},
		{
			name: "delete non-empty directory",
			err:  fs.Delete("/dir"),
			kind: DirNotEmpty,
		},
		{
			name: "write under missing parent",
			err:  fs.Write("/nope/file.txt", strings.NewReader("x"), WriteOverwrite),
			kind: NotFound,
		},
		{
			name: "write over a directory",
			err:  fs.Write("/dir", strings.NewReader("x"), WriteOverwrite),
			kind: IsADirectory,
		},
		{
			name: "rename missing source",
			err:  fs.Rename("/missing.txt", "/dst.txt"),
			kind: NotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.err)
			assert.True(t, IsKind(tc.err, tc.kind), "got %q, want kind %v", tc.err, tc.kind)
		})
	}
}

func TestAferoFS_errorMessageIncludesPath(t *testing.T) {
	fs := newTestFS(t)

	_, err := fs.Open("/missing.txt")
	require.Error(t, err)
	assert.EqualError(t, err, "/missing.txt: No such file or directory")
}

func TestAferoFS_deleteLeavesOtherEntries(t *testing.T) {
	fs := newTestFS(t)
	writeString(t, fs, "/a.txt", "a")
	writeString(t, fs, "/b.txt", "b")

	err := fs.Delete("/missing.txt")
	assert.True(t, IsKind(err, NotFound))

	entries, err := fs.List("/")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestAferoFS_deleteAll(t *testing.T) {
	fs := newTestFS(t)
	require.NoError(t, fs.MkdirAll("/a/b"))
	writeString(t, fs, "/a/b/c.txt", "data")

	assert.True(t, IsKind(fs.DeleteAll("/missing"), NotFound))

	require.NoError(t, fs.DeleteAll("/a"))
	assert.False(t, fs.Exists("/a"))
}

func TestAferoFS_quota(t *testing.T) {
	fs := newTestFS(t, WithQuota(10))

	writeString(t, fs, "/small.txt", "12345")

	err := fs.Write("/big.txt", strings.NewReader("1234567890"), WriteOverwrite)
	require.Error(t, err)
	assert.True(t, IsKind(err, StorageFull), "got %q", err)

	// The bytes that fit were kept, storage is best effort.
	assert.Equal(t, "12345", readString(t, fs, "/big.txt"))
	require.NoError(t, fs.Delete("/big.txt"))

	// Overwriting reclaims the old file's bytes first.
	require.NoError(t, fs.Write("/small.txt", strings.NewReader("abcdefghij"), WriteOverwrite))
	assert.Equal(t, "abcdefghij", readString(t, fs, "/small.txt"))

	err = fs.Write("/small.txt", strings.NewReader("x"), WriteAppend)
	assert.True(t, IsKind(err, StorageFull), "got %q", err)
}

func TestAferoFS_usage(t *testing.T) {
	fs := newTestFS(t, WithQuota(1024))
	writeString(t, fs, "/a.txt", "12345")
	writeString(t, fs, "/b.txt", "1234567890")

	used, quota, err := fs.Usage()
	require.NoError(t, err)
	assert.Equal(t, int64(15), used)
	assert.Equal(t, int64(1024), quota)
}

func TestAferoFS_listSorted(t *testing.T) {
	fs := newTestFS(t)
	writeString(t, fs, "/zebra.txt", "z")
	writeString(t, fs, "/apple.txt", "a")
	require.NoError(t, fs.Mkdir("/middle"))

	entries, err := fs.List("/")
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	assert.Equal(t, []string{"apple.txt", "middle", "zebra.txt"}, names)
}
