// Package logger records shell session events as newline delimited
// JSON, one object per line, so logs can be tailed and filtered with
// standard tooling.
package logger

import (
	"encoding/json"
	"io"
	"time"
)

// EventType names a session event.
type EventType string

const (
	EventSessionStart   EventType = "session_start"
	EventSessionEnd     EventType = "session_end"
	EventCommand        EventType = "command"
	EventSyntaxError    EventType = "syntax_error"
	EventUnknownCommand EventType = "unknown_command"
)

// Entry is one logged event. Zero fields are omitted from the output.
type Entry struct {
	Time    time.Time `json:"timestamp"`
	Event   EventType `json:"event"`
	Command string    `json:"command,omitempty"`
	Args    []string  `json:"args,omitempty"`
	Dir     string    `json:"dir,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// Logger writes entries to a single destination. A nil *Logger is
// valid and discards everything, so callers never need to guard.
type Logger struct {
	enc *json.Encoder
	now func() time.Time
}

func New(w io.Writer) *Logger {
	return &Logger{
		enc: json.NewEncoder(w),
		now: time.Now,
	}
}

// NewWithClock is New with an injectable time source for tests.
func NewWithClock(w io.Writer, now func() time.Time) *Logger {
	out := New(w)
	out.now = now
	return out
}

// Record writes one entry, stamping it with the current time.
// Failures to log never disturb the shell session.
func (l *Logger) Record(entry Entry) {
	if l == nil {
		return
	}
	entry.Time = l.now()
	_ = l.enc.Encode(entry)
}
