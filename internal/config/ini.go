package config

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"gopkg.in/ini.v1"
)

// loadOptions keep ini.v1 from rewriting values: no inline comments, no
// continuation lines, and surrounding quotes are data.
var loadOptions = ini.LoadOptions{
	IgnoreContinuation:      true,
	IgnoreInlineComment:     true,
	PreserveSurroundedQuote: true,
}

// autoKey is the key name ini.v1 numbers ("#1", "#2", ...) instead of storing.
const autoKey = "-"

// ParseDocument reads INI text into a Document. The general section is added
// when the input lacks one. Keys that appear before any section header are
// kept under a DEFAULT section so nothing read is dropped on the next save.
// An explicit [DEFAULT] header keeps its place among the other sections.
func ParseDocument(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, err
	}

	defaultAt := defaultHeaderIndex(data)
	doc := &Document{}
	for _, s := range file.Sections() {
		keys := s.Keys()
		if s.Name() == ini.DefaultSection && len(keys) == 0 && defaultAt < 0 {
			continue
		}
		dst := doc.ensureSection(s.Name())
		for _, k := range keys {
			if strings.HasPrefix(k.Name(), "#") {
				return nil, fmt.Errorf("section %s: key %q is not supported", s.Name(), autoKey)
			}
			if _, ok := dst.values[k.Name()]; !ok {
				dst.keys = append(dst.keys, k.Name())
			}
			dst.values[k.Name()] = k.Value()
		}
	}
	if defaultAt >= 0 {
		doc.moveSection(ini.DefaultSection, defaultAt)
	}
	doc.ensureSection(GeneralSection)
	return doc, nil
}

// defaultHeaderIndex returns how many distinct section headers precede the
// first [DEFAULT] header in data. ini.v1 always lists DEFAULT first; the index
// lets the document put it back. It returns -1 when there is no such header or
// when keys appear before the first header, since DEFAULT then leads anyway.
func defaultHeaderIndex(data []byte) int {
	seen := make(map[string]bool)
	for _, raw := range bytes.Split(data, []byte("\n")) {
		line := bytes.TrimLeftFunc(raw, unicode.IsSpace)
		if len(line) == 0 || line[0] == '#' || line[0] == ';' {
			continue
		}
		if line[0] != '[' {
			if len(seen) == 0 {
				return -1
			}
			continue
		}
		end := bytes.LastIndexByte(line, ']')
		if end < 0 {
			continue
		}
		name := string(line[1:end])
		if name == ini.DefaultSection {
			return len(seen)
		}
		seen[name] = true
	}
	return -1
}

// WriteTo renders d as INI text.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}
	for i, s := range d.sections {
		if i > 0 {
			fmt.Fprintln(cw)
		}
		fmt.Fprintf(cw, "[%s]\n", s.name)
		for _, k := range s.keys {
			if v := s.values[k]; v != "" {
				fmt.Fprintf(cw, "%s = %s\n", k, v)
			} else {
				fmt.Fprintf(cw, "%s =\n", k)
			}
		}
	}
	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, cw.w.Flush()
}

// Render returns d as INI text, the same shape Persist writes to disk.
func Render(doc *Document) string {
	var b strings.Builder
	_, _ = doc.WriteTo(&b)
	return b.String()
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
