package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TempHome points HOME at a fresh temp directory for the duration of the test
// and returns it, so the default config location resolves inside the sandbox.
func TempHome(t testing.TB) string {
	t.Helper()

	home := filepath.Join(t.TempDir(), "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	return home
}

// DefaultConfigPath returns the default qimu config location under home.
func DefaultConfigPath(home string) string {
	return filepath.Join(home, ".config", "qimu.ini")
}

// WriteConfig writes an INI file built from lines, creating parent
// directories, and returns its path.
func WriteConfig(t testing.TB, path string, lines ...string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
