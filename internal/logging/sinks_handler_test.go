package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestNewSinksHandlerDropsMissingSinks(t *testing.T) {
	if _, ok := newSinksHandler(nil, nil).(NoopHandler); !ok {
		t.Fatal("expected NoopHandler without sinks")
	}

	var buf bytes.Buffer
	console := newConsoleHandler(&buf, slog.LevelInfo, false, false)
	if h := newSinksHandler(console, nil); h != console {
		t.Fatalf("expected the console sink unwrapped, got %T", h)
	}
	file := newFileHandler(&buf, slog.LevelInfo, false)
	if h := newSinksHandler(nil, file); h != file {
		t.Fatalf("expected the file sink unwrapped, got %T", h)
	}
}

func TestSinksFeedConsoleAndFile(t *testing.T) {
	var console, file bytes.Buffer
	h := newSinksHandler(
		newConsoleHandler(&console, slog.LevelInfo, false, false),
		newFileHandler(&file, slog.LevelInfo, false),
	)
	slog.New(h).Info("scan complete", slog.Int("samples", 3))

	if got := console.String(); got != "INFO scan complete samples=3\n" {
		t.Fatalf("unexpected console line %q", got)
	}
	if line := file.String(); !strings.Contains(line, " - qimu - INFO - scan complete samples=3") {
		t.Fatalf("unexpected file line %q", line)
	}
}

func TestSinksKeepTheirOwnLevel(t *testing.T) {
	var console, file bytes.Buffer
	h := newSinksHandler(
		newConsoleHandler(&console, slog.LevelWarn, false, false),
		newFileHandler(&file, slog.LevelDebug, false),
	)
	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug to be enabled while the file sink accepts it")
	}

	slog.New(h).Debug("pairing reads")
	if console.Len() != 0 {
		t.Fatalf("console received a debug record: %q", console.String())
	}
	if !strings.Contains(file.String(), "DEBUG - pairing reads") {
		t.Fatalf("file missed the record: %q", file.String())
	}
}

func TestSinksWithAttrsAndGroup(t *testing.T) {
	var console, file bytes.Buffer
	h := newSinksHandler(
		newConsoleHandler(&console, slog.LevelInfo, false, false),
		newFileHandler(&file, slog.LevelInfo, false),
	)
	logger := slog.New(h).With(slog.String("command", "config")).WithGroup("set")
	logger.Info("saved", slog.String("target", "qimu.db"))

	if got := console.String(); got != "INFO saved command=config set.target=qimu.db\n" {
		t.Fatalf("unexpected console line %q", got)
	}
	if !strings.HasSuffix(file.String(), " - INFO - saved command=config set.target=qimu.db\n") {
		t.Fatalf("unexpected file line %q", file.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestSinksWriteFileWhenConsoleFails(t *testing.T) {
	var file bytes.Buffer
	h := newSinksHandler(
		newConsoleHandler(failingWriter{}, slog.LevelInfo, false, false),
		newFileHandler(&file, slog.LevelInfo, false),
	)
	record := slog.NewRecord(time.Now(), slog.LevelWarn, "no read files found", 0)
	if err := h.Handle(context.Background(), record); err == nil {
		t.Fatal("expected the console error to be reported")
	}
	if !strings.Contains(file.String(), "WARNING - no read files found") {
		t.Fatalf("file missed the record: %q", file.String())
	}
}
