package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// FieldInvocation tags every file-sink record with the id of the run that
// wrote it, so appended log files can be split per invocation.
const FieldInvocation = "invocation"

// Options describes logger construction parameters.
type Options struct {
	Debug   bool
	Verbose bool
	// LogFile, when set, adds an append-mode file sink at the resolved level.
	LogFile string
	// Console receives formatted records. It defaults to os.Stderr and must
	// never be the command output stream.
	Console io.Writer
}

// ResolveLevel picks the single active level: debug, then verbose, then WARNING.
func ResolveLevel(debug, verbose bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// Controller owns the process-wide sinks. The zero value is ready to use.
type Controller struct {
	mu           sync.Mutex
	file         *os.File
	logger       *slog.Logger
	level        slog.Level
	invocationID string
}

// NewController returns an unconfigured controller.
func NewController() *Controller {
	return &Controller{}
}

// Configure builds the logger for opts, installs it as slog's default, and
// returns it. Calling Configure again replaces every sink; the previous log
// file is closed. On error the previous configuration stays in place.
func (c *Controller) Configure(opts Options) (*slog.Logger, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	level := ResolveLevel(opts.Debug, opts.Verbose)
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	consoleSink := newConsoleHandler(console, level, opts.Debug, shouldColorize(console))

	var file *os.File
	var fileSink slog.Handler
	invocationID := ""
	if path := strings.TrimSpace(opts.LogFile); path != "" {
		f, err := openLogFile(path)
		if err != nil {
			return nil, &Error{Kind: SinkUnavailable, Path: path, Err: err}
		}
		file = f
		invocationID = uuid.NewString()
		fileSink = newFileHandler(f, level, opts.Debug).
			WithAttrs([]slog.Attr{slog.String(FieldInvocation, invocationID)})
	}

	_ = c.closeFileLocked()
	c.file = file
	c.level = level
	c.invocationID = invocationID
	c.logger = slog.New(newSinksHandler(consoleSink, fileSink))
	slog.SetDefault(c.logger)
	return c.logger, nil
}

// Logger returns the configured logger, or a no-op logger before Configure.
func (c *Controller) Logger() *slog.Logger {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.logger == nil {
		return NewNop()
	}
	return c.logger
}

// Level returns the level chosen by the last successful Configure.
func (c *Controller) Level() slog.Level {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.level
}

// InvocationID returns the id attached to file-sink records, empty without a log file.
func (c *Controller) InvocationID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invocationID
}

// Close releases the file sink, if any.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeFileLocked()
}

func (c *Controller) closeFileLocked() error {
	if c.file == nil {
		return nil
	}
	err := c.file.Close()
	c.file = nil
	return err
}

func openLogFile(path string) (*os.File, error) {
	if err := ensureLogDir(path); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure log directory: %w", err)
	}
	return nil
}

// LevelName returns the label used in both sinks.
func LevelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARNING"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
