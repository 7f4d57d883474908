package config

import (
	"errors"
	"fmt"
)

// Kind classifies configuration failures.
type Kind int

const (
	// Unreadable means the file could not be opened or read.
	Unreadable Kind = iota + 1
	// Malformed means the file was read but is not valid INI.
	Malformed
	// InvalidTarget means a section.key target could not be parsed.
	InvalidTarget
	// Unwritable means the document could not be persisted.
	Unwritable
)

func (k Kind) String() string {
	switch k {
	case Unreadable:
		return "unreadable"
	case Malformed:
		return "malformed"
	case InvalidTarget:
		return "invalid target"
	case Unwritable:
		return "unwritable"
	default:
		return "unknown"
	}
}

// ErrLocked is returned when another process holds the config write lock.
var ErrLocked = errors.New("config file is locked by another qimu process")

// Error is the error type returned by every fallible operation in this package.
type Error struct {
	Kind   Kind
	Path   string
	Target string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case Unreadable:
		return fmt.Sprintf("read config %s: %v", e.Path, e.Err)
	case Malformed:
		return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
	case InvalidTarget:
		return fmt.Sprintf("invalid config target %q: %v", e.Target, e.Err)
	case Unwritable:
		return fmt.Sprintf("write config %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("config: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a config *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var cfgErr *Error
	return errors.As(err, &cfgErr) && cfgErr.Kind == kind
}
