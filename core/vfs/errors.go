package vfs

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorKind classifies adapter failures. Anything the backend reports
// that doesn't map cleanly is surfaced as IoFailure rather than being
// swallowed.
type ErrorKind int

const (
	NotFound ErrorKind = iota
	NotADirectory
	IsADirectory
	AlreadyExists
	DirNotEmpty
	StorageFull
	IoFailure
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "No such file or directory"
	case NotADirectory:
		return "Not a directory"
	case IsADirectory:
		return "Is a directory"
	case AlreadyExists:
		return "File exists"
	case DirNotEmpty:
		return "Directory not empty"
	case StorageFull:
		return "No space left on device"
	default:
		return "Input/output error"
	}
}

// Error is the adapter's error type. Path is always the absolute path
// the operation failed on so reports can include it verbatim.
type Error struct {
	Op   string
	Path string
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind for err, or IoFailure if err isn't an
// adapter error.
func KindOf(err error) ErrorKind {
	var fsErr *Error
	if errors.As(err, &fsErr) {
		return fsErr.Kind
	}
	return IoFailure
}

// IsKind reports whether err is an adapter error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var fsErr *Error
	return errors.As(err, &fsErr) && fsErr.Kind == kind
}

func newError(op, path string, kind ErrorKind, cause error) *Error {
	return &Error{Op: op, Path: path, Kind: kind, Err: cause}
}

// wrapError converts a backend error into an adapter Error, classifying
// the well-known causes and defaulting the rest to IoFailure.
func wrapError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var fsErr *Error
	if errors.As(err, &fsErr) {
		return err
	}

	kind := IoFailure
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = NotFound
	case errors.Is(err, fs.ErrExist):
		kind = AlreadyExists
	}
	return newError(op, path, kind, err)
}
