// Package vfs exposes the device's storage as a narrow capability
// interface. Shell built-ins only ever touch the filesystem through it,
// which keeps them testable over an in-memory backend and keeps the
// error surface down to the Error kinds defined here.
package vfs

import (
	"io"
	"time"
)

// EntryKind distinguishes files from directories in listings.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
)

func (k EntryKind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Entry describes a single filesystem object. Entries are produced live
// on each call, there is no caching layer.
type Entry struct {
	Name    string
	Kind    EntryKind
	Size    int64
	ModTime time.Time
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// WriteMode selects the behavior of Write on an existing file.
type WriteMode int

const (
	// WriteOverwrite truncates the file before writing.
	WriteOverwrite WriteMode = iota
	// WriteAppend appends to the file's existing contents.
	WriteAppend
)

// Filesystem is the capability set the shell consumes. All paths are
// absolute; relative path resolution happens in the session, before the
// adapter is reached.
type Filesystem interface {
	// List returns the entries of the directory at path, sorted by name.
	List(path string) ([]Entry, error)
	// Open returns a stream over the file's contents.
	Open(path string) (io.ReadCloser, error)
	// Write copies r into the file at path, creating it if needed.
	Write(path string, r io.Reader, mode WriteMode) error
	// Delete removes a file or an empty directory.
	Delete(path string) error
	// DeleteAll removes path and any children it contains.
	DeleteAll(path string) error
	// Mkdir creates a single directory; the parent must exist.
	Mkdir(path string) error
	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string) error
	// Rename moves src to dst.
	Rename(src, dst string) error
	// Exists reports whether path names any filesystem object.
	Exists(path string) bool
	// Stat returns the entry for path.
	Stat(path string) (Entry, error)
	// Usage returns the bytes stored and the configured quota.
	// A zero quota means the backend imposes no limit.
	Usage() (used, quota int64, err error)
}
