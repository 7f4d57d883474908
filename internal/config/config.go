package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Source records where a resolved document came from.
type Source int

const (
	// SourceDefaults means no file existed and built-in defaults were used.
	SourceDefaults Source = iota
	// SourceFile means the default per-user file was read.
	SourceFile
	// SourceOverride means the file named by --config was read.
	SourceOverride
)

func (s Source) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceOverride:
		return "cli-override"
	default:
		return "defaults"
	}
}

// SourceOf classifies a Load result.
func SourceOf(override string, exists bool) Source {
	switch {
	case strings.TrimSpace(override) != "":
		return SourceOverride
	case exists:
		return SourceFile
	default:
		return SourceDefaults
	}
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load resolves and parses the configuration. An explicit path must exist and
// parse. With no path the default location is used, and a missing default file
// yields Default() with exists=false. The returned path is where a later
// Persist should write.
func Load(path string) (*Document, string, bool, error) {
	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}
	if !exists {
		return Default(), resolvedPath, false, nil
	}

	data, err := os.ReadFile(resolvedPath)
	if err != nil {
		return nil, "", false, &Error{Kind: Unreadable, Path: resolvedPath, Err: err}
	}
	doc, err := ParseDocument(bytes.NewReader(data))
	if err != nil {
		return nil, "", false, &Error{Kind: Malformed, Path: resolvedPath, Err: err}
	}
	return doc, resolvedPath, true, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, &Error{Kind: Unreadable, Path: path, Err: err}
		}
		info, err := os.Stat(expanded)
		if err != nil {
			return "", false, &Error{Kind: Unreadable, Path: expanded, Err: err}
		}
		if info.IsDir() {
			return "", false, &Error{Kind: Unreadable, Path: expanded, Err: errors.New("is a directory")}
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, &Error{Kind: Unreadable, Path: defaultConfigPath, Err: err}
	}
	info, err := os.Stat(defaultPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return defaultPath, false, nil
	case err != nil:
		return "", false, &Error{Kind: Unreadable, Path: defaultPath, Err: err}
	case info.IsDir():
		return "", false, &Error{Kind: Unreadable, Path: defaultPath, Err: errors.New("is a directory")}
	}
	return defaultPath, true, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
