package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Persist writes doc to path. The document is rendered into a temp file in
// the target directory, synced, and renamed over path, so an interrupted write
// leaves the previous file intact. A sibling ".lock" file serializes two qimu
// processes saving at once. A symlinked path is written through to its target.
func Persist(doc *Document, path string) error {
	if doc == nil {
		return &Error{Kind: Unwritable, Path: path, Err: errors.New("nil document")}
	}
	if err := doc.validate(); err != nil {
		return &Error{Kind: Unwritable, Path: path, Err: err}
	}

	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return &Error{Kind: Unwritable, Path: path, Err: fmt.Errorf("create config directory: %w", err)}
	}

	lock := flock.New(target + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return &Error{Kind: Unwritable, Path: path, Err: fmt.Errorf("acquire lock: %w", err)}
	}
	if !locked {
		return &Error{Kind: Unwritable, Path: path, Err: ErrLocked}
	}
	defer func() { _ = lock.Unlock() }()

	if err := writeAtomic(doc, target); err != nil {
		return &Error{Kind: Unwritable, Path: path, Err: err}
	}
	return nil
}

func writeAtomic(doc *Document, path string) (err error) {
	mode := fs.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = doc.WriteTo(tmp); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}
