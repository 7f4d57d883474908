package logging

import (
	"context"
	"errors"
	"log/slog"
)

// sinksHandler routes every record to the console sink and the file sink.
// Each sink keeps its own level gate, so the file can be more verbose than
// the terminal.
type sinksHandler struct {
	console slog.Handler
	file    slog.Handler
}

// newSinksHandler combines the two sinks. A missing sink is dropped; with
// neither present all output is discarded.
func newSinksHandler(console, file slog.Handler) slog.Handler {
	switch {
	case console == nil && file == nil:
		return NoopHandler{}
	case file == nil:
		return console
	case console == nil:
		return file
	}
	return &sinksHandler{console: console, file: file}
}

func (h *sinksHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.console.Enabled(ctx, level) || h.file.Enabled(ctx, level)
}

// Handle writes to both sinks even when the first one fails.
func (h *sinksHandler) Handle(ctx context.Context, record slog.Record) error {
	var consoleErr, fileErr error
	if h.console.Enabled(ctx, record.Level) {
		consoleErr = h.console.Handle(ctx, record.Clone())
	}
	if h.file.Enabled(ctx, record.Level) {
		fileErr = h.file.Handle(ctx, record)
	}
	return errors.Join(consoleErr, fileErr)
}

func (h *sinksHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sinksHandler{console: h.console.WithAttrs(attrs), file: h.file.WithAttrs(attrs)}
}

func (h *sinksHandler) WithGroup(name string) slog.Handler {
	return &sinksHandler{console: h.console.WithGroup(name), file: h.file.WithGroup(name)}
}
