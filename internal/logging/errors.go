package logging

import "fmt"

// Kind classifies logging setup failures.
type Kind int

const (
	// SinkUnavailable means a requested log sink could not be opened.
	SinkUnavailable Kind = iota + 1
)

func (k Kind) String() string {
	if k == SinkUnavailable {
		return "sink unavailable"
	}
	return "unknown"
}

// Error reports a logging configuration failure. It is always fatal to the
// invocation.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("open log file %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
