// Package session holds the state that persists across command
// invocations within one shell run: the working directory and any
// user-defined aliases. There is exactly one session per shell and it
// is never shared between goroutines.
package session

import (
	"path"
	"sort"

	"microsh.dev/microsh/core/vfs"
)

// Root is the working directory every session starts in. It is not
// persisted across restarts.
const Root = "/"

// Session is the mutable per-run shell state. The zero value is not
// usable, construct with New.
type Session struct {
	fs      vfs.Filesystem
	dir     string
	aliases map[string]string

	exitRequested bool
}

func New(fs vfs.Filesystem) *Session {
	return &Session{
		fs:      fs,
		dir:     Root,
		aliases: make(map[string]string),
	}
}

// FS returns the filesystem adapter backing the session.
func (s *Session) FS() vfs.Filesystem {
	return s.fs
}

// Getwd returns the current working directory. It always names an
// existing directory.
func (s *Session) Getwd() string {
	return s.dir
}

// Resolve turns name into an absolute, cleaned path relative to the
// working directory. "." and ".." components collapse; they can never
// escape above the root.
func (s *Session) Resolve(name string) string {
	if name == "" {
		return s.dir
	}
	if !path.IsAbs(name) {
		name = path.Join(s.dir, name)
	}
	return path.Clean(name)
}

// Chdir changes the working directory. On any failure the working
// directory is left exactly as it was.
func (s *Session) Chdir(name string) error {
	resolved := s.Resolve(name)

	entry, err := s.fs.Stat(resolved)
	switch {
	case err != nil:
		return err
	case !entry.IsDir():
		return &vfs.Error{Op: "chdir", Path: resolved, Kind: vfs.NotADirectory}
	default:
		s.dir = resolved
		return nil
	}
}

// Alias returns the body bound to name.
func (s *Session) Alias(name string) (string, bool) {
	body, ok := s.aliases[name]
	return body, ok
}

// SetAlias binds name to body, replacing any previous binding.
func (s *Session) SetAlias(name, body string) {
	s.aliases[name] = body
}

// RemoveAlias deletes the binding for name and reports whether one
// existed.
func (s *Session) RemoveAlias(name string) bool {
	_, ok := s.aliases[name]
	delete(s.aliases, name)
	return ok
}

// AliasNames returns the defined alias names in sorted order.
func (s *Session) AliasNames() []string {
	names := make([]string, 0, len(s.aliases))
	for name := range s.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RequestExit marks the session as finished. The REPL loop checks this
// after every line.
func (s *Session) RequestExit() {
	s.exitRequested = true
}

// ExitRequested reports whether a built-in asked the shell to stop.
func (s *Session) ExitRequested() bool {
	return s.exitRequested
}
