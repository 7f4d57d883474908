package reads

import (
	"errors"
	"fmt"
)

// Kind classifies reads-table failures.
type Kind int

const (
	// NotDirectory means an input path is missing or not a directory.
	NotDirectory Kind = iota + 1
	// UnknownPreset means a --format name has no preset.
	UnknownPreset
	// DuplicateSample means two samples resolved to the same id.
	DuplicateSample
	// MixedReadTypes means single-end and paired-end samples were found together.
	MixedReadTypes
)

// Error reports a failure to build or render a run.
type Error struct {
	Kind   Kind
	Path   string
	Sample string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case NotDirectory:
		if e.Err != nil {
			return fmt.Sprintf("path is not a directory: %s: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("path is not a directory: %s", e.Path)
	case UnknownPreset:
		return fmt.Sprintf("unknown format: %v", e.Err)
	case DuplicateSample:
		return fmt.Sprintf("duplicate sample ID: %s", e.Sample)
	case MixedReadTypes:
		return "mixed single-end and paired-end samples found; all samples must be of the same type"
	default:
		return fmt.Sprintf("reads: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a reads *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var readsErr *Error
	return errors.As(err, &readsErr) && readsErr.Kind == kind
}
