package vfs

import (
	"errors"
	"io"
	"os"
	"path"

	"github.com/spf13/afero"
)

// ioChunkSize is the buffer size for streaming copies. Contents are
// never buffered wholesale so large files stay within a small, fixed
// memory footprint.
const ioChunkSize = 512

const (
	fileMode = os.FileMode(0644)
	dirMode  = os.FileMode(0755)
)

// aferoFS adapts an afero.Fs to the Filesystem capability interface.
type aferoFS struct {
	backend afero.Fs
	quota   int64
}

var _ Filesystem = (*aferoFS)(nil)

// Option configures the adapter returned by New.
type Option func(*aferoFS)

// WithQuota caps the total bytes of file content the adapter will
// store. Writes that would exceed it fail with StorageFull.
func WithQuota(bytes int64) Option {
	return func(a *aferoFS) {
		a.quota = bytes
	}
}

// New wraps an afero backend. Use afero.NewMemMapFs for tests or
// afero.NewBasePathFs to anchor the shell in a host directory.
func New(backend afero.Fs, opts ...Option) Filesystem {
	out := &aferoFS{backend: backend}
	for _, opt := range opts {
		opt(out)
	}
	return out
}

func entryFromInfo(fi os.FileInfo) Entry {
	kind := KindFile
	if fi.IsDir() {
		kind = KindDirectory
	}
	return Entry{
		Name:    fi.Name(),
		Kind:    kind,
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
	}
}

func (a *aferoFS) List(name string) ([]Entry, error) {
	const op = "list"

	fi, err := a.backend.Stat(name)
	if err != nil {
		return nil, wrapError(op, name, err)
	}
	if !fi.IsDir() {
		return nil, newError(op, name, NotADirectory, nil)
	}

	infos, err := afero.ReadDir(a.backend, name)
	if err != nil {
		return nil, wrapError(op, name, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, entryFromInfo(info))
	}
	return entries, nil
}

func (a *aferoFS) Open(name string) (io.ReadCloser, error) {
	const op = "open"

	fi, err := a.backend.Stat(name)
	if err != nil {
		return nil, wrapError(op, name, err)
	}
	if fi.IsDir() {
		return nil, newError(op, name, IsADirectory, nil)
	}

	fd, err := a.backend.Open(name)
	if err != nil {
		return nil, wrapError(op, name, err)
	}
	return fd, nil
}

func (a *aferoFS) Write(name string, r io.Reader, mode WriteMode) error {
	const op = "write"

	var existingSize int64
	if fi, err := a.backend.Stat(name); err == nil {
		if fi.IsDir() {
			return newError(op, name, IsADirectory, nil)
		}
		existingSize = fi.Size()
	}
	if err := a.checkParent(op, name); err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE
	if mode == WriteAppend {
		flags |= os.O_APPEND
		// Appends only grow the file, existing bytes stay counted.
		existingSize = 0
	} else {
		flags |= os.O_TRUNC
	}

	// Measure before opening, O_TRUNC would drop the reclaimed bytes
	// from the walk and they'd be credited twice.
	var remaining int64
	if a.quota > 0 {
		used, _, err := a.Usage()
		if err != nil {
			return err
		}
		remaining = a.quota - (used - existingSize)
	}

	var dst io.Writer
	fd, err := a.backend.OpenFile(name, flags, fileMode)
	if err != nil {
		return wrapError(op, name, err)
	}
	defer fd.Close()
	dst = fd

	if a.quota > 0 {
		dst = &quotaWriter{w: fd, remaining: remaining}
	}

	if _, err := io.CopyBuffer(dst, r, make([]byte, ioChunkSize)); err != nil {
		// The partial write stays, storage is best effort not
		// transactional.
		if errors.Is(err, errQuotaExceeded) {
			return newError(op, name, StorageFull, err)
		}
		return wrapError(op, name, err)
	}
	return nil
}

func (a *aferoFS) Delete(name string) error {
	const op = "delete"

	fi, err := a.backend.Stat(name)
	if err != nil {
		return wrapError(op, name, err)
	}
	if fi.IsDir() {
		children, err := afero.ReadDir(a.backend, name)
		if err != nil {
			return wrapError(op, name, err)
		}
		if len(children) > 0 {
			return newError(op, name, DirNotEmpty, nil)
		}
	}

	return wrapError(op, name, a.backend.Remove(name))
}

func (a *aferoFS) DeleteAll(name string) error {
	const op = "delete"

	if _, err := a.backend.Stat(name); err != nil {
		return wrapError(op, name, err)
	}
	return wrapError(op, name, a.backend.RemoveAll(name))
}

func (a *aferoFS) Mkdir(name string) error {
	const op = "mkdir"

	if ok, _ := afero.Exists(a.backend, name); ok {
		return newError(op, name, AlreadyExists, nil)
	}
	if err := a.checkParent(op, name); err != nil {
		return err
	}
	return wrapError(op, name, a.backend.Mkdir(name, dirMode))
}

func (a *aferoFS) MkdirAll(name string) error {
	const op = "mkdir"

	if fi, err := a.backend.Stat(name); err == nil && !fi.IsDir() {
		return newError(op, name, AlreadyExists, nil)
	}
	return wrapError(op, name, a.backend.MkdirAll(name, dirMode))
}

func (a *aferoFS) Rename(src, dst string) error {
	const op = "rename"

	if _, err := a.backend.Stat(src); err != nil {
		return wrapError(op, src, err)
	}
	if err := a.checkParent(op, dst); err != nil {
		return err
	}
	return wrapError(op, dst, a.backend.Rename(src, dst))
}

func (a *aferoFS) Exists(name string) bool {
	ok, err := afero.Exists(a.backend, name)
	return err == nil && ok
}

func (a *aferoFS) Stat(name string) (Entry, error) {
	fi, err := a.backend.Stat(name)
	if err != nil {
		return Entry{}, wrapError("stat", name, err)
	}
	entry := entryFromInfo(fi)
	if name == "/" {
		entry.Name = "/"
	}
	return entry, nil
}

func (a *aferoFS) Usage() (used, quota int64, err error) {
	walkErr := afero.Walk(a.backend, "/", func(_ string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() {
			used += fi.Size()
		}
		return nil
	})
	if walkErr != nil {
		return 0, a.quota, newError("usage", "/", IoFailure, walkErr)
	}
	return used, a.quota, nil
}

// checkParent verifies the containing directory of name exists and is
// a directory. Some afero backends silently create missing parents,
// which would hide typos from the user.
func (a *aferoFS) checkParent(op, name string) error {
	parent := path.Dir(name)
	fi, err := a.backend.Stat(parent)
	if err != nil {
		return wrapError(op, name, err)
	}
	if !fi.IsDir() {
		return newError(op, name, NotADirectory, nil)
	}
	return nil
}

var errQuotaExceeded = errors.New("storage quota exceeded")

// quotaWriter fails once more than the remaining byte budget has been
// written through it. The bytes that fit are still written.
type quotaWriter struct {
	w         io.Writer
	remaining int64
}

func (q *quotaWriter) Write(p []byte) (int, error) {
	if int64(len(p)) > q.remaining {
		fit := q.remaining
		if fit < 0 {
			fit = 0
		}
		n, err := q.w.Write(p[:fit])
		q.remaining -= int64(n)
		if err != nil {
			return n, err
		}
		return n, errQuotaExceeded
	}

	n, err := q.w.Write(p)
	q.remaining -= int64(n)
	return n, err
}
