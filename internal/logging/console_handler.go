package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/jedib0t/go-pretty/v6/text"
)

// lineFormatter renders one record, including its trailing newline.
type lineFormatter func(buf *bytes.Buffer, record slog.Record, attrs []kv)

// lineHandler is the shared slog.Handler behind the console and file sinks.
// The level is fixed at construction.
type lineHandler struct {
	mu     *sync.Mutex
	writer io.Writer
	level  slog.Level
	attrs  []slog.Attr
	groups []string
	format lineFormatter
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *lineHandler) Handle(_ context.Context, record slog.Record) error {
	if record.Level < h.level {
		return nil
	}

	kvs := make([]kv, 0, record.NumAttrs()+len(h.attrs))
	flattenAttrs(&kvs, nil, h.attrs)
	record.Attrs(func(attr slog.Attr) bool {
		flattenAttr(&kvs, h.groups, attr)
		return true
	})

	var buf bytes.Buffer
	buf.Grow(128 + len(kvs)*24)
	h.format(&buf, record, kvs)

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := h.clone()
	for _, attr := range attrs {
		if len(h.groups) > 0 {
			attr = nestAttr(h.groups, attr)
		}
		clone.attrs = append(clone.attrs, attr)
	}
	return clone
}

func (h *lineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *lineHandler) clone() *lineHandler {
	return &lineHandler{
		mu:     h.mu,
		writer: h.writer,
		level:  h.level,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
		format: h.format,
	}
}

func nestAttr(groups []string, attr slog.Attr) slog.Attr {
	for i := len(groups) - 1; i >= 0; i-- {
		attr = slog.Attr{Key: groups[i], Value: slog.GroupValue(attr)}
	}
	return attr
}

// newConsoleHandler writes "LEVEL message key=value" lines. Debug output adds
// the call site; colorize paints the level label.
func newConsoleHandler(w io.Writer, level slog.Level, addSource, colorize bool) slog.Handler {
	return &lineHandler{
		mu:     &sync.Mutex{},
		writer: w,
		level:  level,
		format: func(buf *bytes.Buffer, record slog.Record, attrs []kv) {
			label := LevelName(record.Level)
			if colorize {
				label = levelColors(record.Level).Sprint(label)
			}
			buf.WriteString(label)
			buf.WriteByte(' ')
			writeMessage(buf, record.Message)
			writeAttrs(buf, attrs)
			if addSource {
				writeSource(buf, record)
			}
			buf.WriteByte('\n')
		},
	}
}

func levelColors(level slog.Level) text.Colors {
	switch {
	case level >= slog.LevelError:
		return text.Colors{text.Bold, text.FgRed}
	case level >= slog.LevelWarn:
		return text.Colors{text.FgYellow}
	case level >= slog.LevelInfo:
		return text.Colors{text.FgCyan}
	default:
		return text.Colors{text.FgHiBlack}
	}
}

func writeMessage(buf *bytes.Buffer, message string) {
	if msg := strings.TrimSpace(message); msg != "" {
		buf.WriteString(msg)
		return
	}
	buf.WriteString("(no message)")
}

func writeAttrs(buf *bytes.Buffer, attrs []kv) {
	for _, attr := range attrs {
		if attr.key == "" {
			continue
		}
		buf.WriteByte(' ')
		buf.WriteString(attr.key)
		buf.WriteByte('=')
		buf.WriteString(formatValue(attr.value))
	}
}

func writeSource(buf *bytes.Buffer, record slog.Record) {
	src := record.Source()
	if src == nil || src.File == "" {
		return
	}
	buf.WriteString(" [")
	buf.WriteString(filepath.Base(src.File))
	buf.WriteByte(':')
	buf.WriteString(strconv.Itoa(src.Line))
	buf.WriteByte(']')
}
