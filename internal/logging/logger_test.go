package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLevelPrecedence(t *testing.T) {
	cases := []struct {
		debug, verbose bool
		want           slog.Level
	}{
		{false, false, slog.LevelWarn},
		{false, true, slog.LevelInfo},
		{true, false, slog.LevelDebug},
		{true, true, slog.LevelDebug},
	}
	for _, tc := range cases {
		if got := ResolveLevel(tc.debug, tc.verbose); got != tc.want {
			t.Fatalf("ResolveLevel(%v, %v) = %v, want %v", tc.debug, tc.verbose, got, tc.want)
		}
	}
}

func TestLevelName(t *testing.T) {
	cases := map[slog.Level]string{
		slog.LevelDebug: "DEBUG",
		slog.LevelInfo:  "INFO",
		slog.LevelWarn:  "WARNING",
		slog.LevelError: "ERROR",
	}
	for level, want := range cases {
		if got := LevelName(level); got != want {
			t.Fatalf("LevelName(%v) = %q, want %q", level, got, want)
		}
	}
}

func TestConfigureDefaultLevelFiltersInfo(t *testing.T) {
	restoreDefault(t)
	var console bytes.Buffer
	c := NewController()
	logger, err := c.Configure(Options{Console: &console})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown", slog.String("key", "value"))

	if got := console.String(); got != "WARNING shown key=value\n" {
		t.Fatalf("unexpected console output %q", got)
	}
	if c.InvocationID() != "" {
		t.Fatal("expected no invocation id without a log file")
	}
}

func TestConfigureDebugAddsSource(t *testing.T) {
	restoreDefault(t)
	var console bytes.Buffer
	logger, err := NewController().Configure(Options{Debug: true, Verbose: true, Console: &console})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	logger.Debug("trace")

	out := console.String()
	if !strings.HasPrefix(out, "DEBUG trace [logger_test.go:") {
		t.Fatalf("expected debug line with source, got %q", out)
	}
}

func TestConfigureWritesFileSink(t *testing.T) {
	restoreDefault(t)
	path := filepath.Join(t.TempDir(), "logs", "qimu.log")
	var console bytes.Buffer
	c := NewController()
	t.Cleanup(func() { _ = c.Close() })

	logger, err := c.Configure(Options{Verbose: true, LogFile: path, Console: &console})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	logger.Info("hello", slog.Int("n", 2))
	logger.Debug("filtered")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one file line, got %q", data)
	}
	line := lines[0]
	if !strings.Contains(line, " - qimu - INFO - hello ") {
		t.Fatalf("unexpected file line %q", line)
	}
	if !strings.Contains(line, FieldInvocation+"="+c.InvocationID()) || c.InvocationID() == "" {
		t.Fatalf("expected invocation id in %q", line)
	}
	if !strings.Contains(line, "n=2") {
		t.Fatalf("expected attribute in %q", line)
	}
	if strings.Contains(console.String(), FieldInvocation) {
		t.Fatalf("console should not carry the invocation id: %q", console.String())
	}
}

func TestConfigureTwiceDoesNotDuplicate(t *testing.T) {
	restoreDefault(t)
	path := filepath.Join(t.TempDir(), "qimu.log")
	var first, second bytes.Buffer
	c := NewController()
	t.Cleanup(func() { _ = c.Close() })

	if _, err := c.Configure(Options{LogFile: path, Console: &first}); err != nil {
		t.Fatalf("first Configure: %v", err)
	}
	logger, err := c.Configure(Options{LogFile: path, Console: &second})
	if err != nil {
		t.Fatalf("second Configure: %v", err)
	}
	logger.Warn("once")

	if first.Len() != 0 {
		t.Fatalf("replaced console still receives records: %q", first.String())
	}
	if second.String() != "WARNING once\n" {
		t.Fatalf("unexpected console output %q", second.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if n := strings.Count(string(data), "once"); n != 1 {
		t.Fatalf("expected one file record, got %d in %q", n, data)
	}
}

func TestConfigureUnwritableLogFile(t *testing.T) {
	restoreDefault(t)
	dir := t.TempDir()
	_, err := NewController().Configure(Options{LogFile: dir, Console: &bytes.Buffer{}})
	var logErr *Error
	if !errors.As(err, &logErr) || logErr.Kind != SinkUnavailable {
		t.Fatalf("expected SinkUnavailable, got %v", err)
	}
	if logErr.Path != dir {
		t.Fatalf("unexpected path %q", logErr.Path)
	}
}

func TestConfigureInstallsDefault(t *testing.T) {
	restoreDefault(t)
	var console bytes.Buffer
	if _, err := NewController().Configure(Options{Console: &console}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	slog.Error("through default")
	if console.String() != "ERROR through default\n" {
		t.Fatalf("default logger not installed: %q", console.String())
	}
}

func TestLoggerBeforeConfigureIsNop(t *testing.T) {
	logger := NewController().Logger()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("expected unconfigured logger to discard records")
	}
}

func restoreDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}
