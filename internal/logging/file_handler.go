package logging

import (
	"bytes"
	"io"
	"log/slog"
	"sync"

	"qimu/internal/version"
)

const fileTimeLayout = "2006-01-02 15:04:05,000"

// newFileHandler writes "TIME - qimu - LEVEL - message key=value" lines.
// Colors are never applied.
func newFileHandler(w io.Writer, level slog.Level, addSource bool) slog.Handler {
	return &lineHandler{
		mu:     &sync.Mutex{},
		writer: w,
		level:  level,
		format: func(buf *bytes.Buffer, record slog.Record, attrs []kv) {
			if !record.Time.IsZero() {
				buf.WriteString(record.Time.Format(fileTimeLayout))
			}
			buf.WriteString(" - ")
			buf.WriteString(version.Name)
			buf.WriteString(" - ")
			buf.WriteString(LevelName(record.Level))
			buf.WriteString(" - ")
			writeMessage(buf, record.Message)
			writeAttrs(buf, attrs)
			if addSource {
				writeSource(buf, record)
			}
			buf.WriteByte('\n')
		},
	}
}
