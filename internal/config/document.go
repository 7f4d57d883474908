package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Entry is one resolved setting, used for display.
type Entry struct {
	Section string
	Key     string
	Value   string
}

type section struct {
	name   string
	keys   []string
	values map[string]string
}

// Document is an ordered mapping of section name to ordered key/value pairs.
// The zero value is an empty document; use Default for a resolved one.
type Document struct {
	sections []*section
	index    map[string]*section
}

// Sections returns section names in insertion order.
func (d *Document) Sections() []string {
	names := make([]string, 0, len(d.sections))
	for _, s := range d.sections {
		names = append(names, s.name)
	}
	return names
}

// HasSection reports whether name exists.
func (d *Document) HasSection(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Get returns the value stored under section/key. An empty section resolves to
// the general section.
func (d *Document) Get(sectionName, key string) (string, bool) {
	if sectionName == "" {
		sectionName = GeneralSection
	}
	s, ok := d.index[sectionName]
	if !ok {
		return "", false
	}
	v, ok := s.values[key]
	return v, ok
}

// GetDefault returns the stored value or fallback when the key is absent.
func (d *Document) GetDefault(sectionName, key, fallback string) string {
	if v, ok := d.Get(sectionName, key); ok {
		return v
	}
	return fallback
}

// Set stores value under section/key, creating the section when needed. An
// existing key keeps its position; a new key is appended to its section.
func (d *Document) Set(sectionName, key, value string) {
	if sectionName == "" {
		sectionName = GeneralSection
	}
	s := d.ensureSection(sectionName)
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Entries returns every setting in section then key insertion order.
func (d *Document) Entries() []Entry {
	var entries []Entry
	for _, s := range d.sections {
		for _, k := range s.keys {
			entries = append(entries, Entry{Section: s.name, Key: k, Value: s.values[k]})
		}
	}
	return entries
}

// Len returns the number of stored keys across all sections.
func (d *Document) Len() int {
	n := 0
	for _, s := range d.sections {
		n += len(s.keys)
	}
	return n
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	out := &Document{}
	for _, s := range d.sections {
		dst := out.ensureSection(s.name)
		for _, k := range s.keys {
			dst.keys = append(dst.keys, k)
			dst.values[k] = s.values[k]
		}
	}
	return out
}

// Equal reports whether both documents hold the same sections, keys, values
// and ordering.
func (d *Document) Equal(other *Document) bool {
	if other == nil || len(d.sections) != len(other.sections) {
		return false
	}
	for i, s := range d.sections {
		o := other.sections[i]
		if s.name != o.name || len(s.keys) != len(o.keys) {
			return false
		}
		for j, k := range s.keys {
			if o.keys[j] != k || o.values[k] != s.values[k] {
				return false
			}
		}
	}
	return true
}

func (d *Document) ensureSection(name string) *section {
	if d.index == nil {
		d.index = make(map[string]*section)
	}
	if s, ok := d.index[name]; ok {
		return s
	}
	s := &section{name: name, values: make(map[string]string)}
	d.sections = append(d.sections, s)
	d.index[name] = s
	return s
}

// moveSection places section name at position idx, shifting later sections.
func (d *Document) moveSection(name string, idx int) {
	from := slices.IndexFunc(d.sections, func(s *section) bool { return s.name == name })
	if from < 0 {
		return
	}
	s := d.sections[from]
	d.sections = slices.Delete(d.sections, from, from+1)
	idx = min(idx, len(d.sections))
	d.sections = slices.Insert(d.sections, idx, s)
}

// Format returns the document as ordered (section, key, value) triples.
func Format(doc *Document) []Entry {
	return doc.Entries()
}

// Lookup resolves a "section.key" or bare "key" target, returning fallback when
// the target is invalid or unset.
func Lookup(doc *Document, target, fallback string) string {
	sectionName, key, err := ParseTarget(target)
	if err != nil {
		return fallback
	}
	return doc.GetDefault(sectionName, key, fallback)
}

var (
	errTooManySeparators = errors.New("expected KEY or SECTION.KEY with at most one '.'")
	errEmptyPart         = errors.New("section and key must not be empty")
	errAutoKey           = errors.New(`key "-" is reserved by the INI format`)
)

// ParseTarget splits a `config --set` target. "key" maps to the general
// section, "section.key" splits on the single dot, and anything with more than
// one dot is rejected.
func ParseTarget(target string) (string, string, error) {
	switch strings.Count(target, ".") {
	case 0:
		if target == "" {
			return "", "", &Error{Kind: InvalidTarget, Target: target, Err: errEmptyPart}
		}
		if target == autoKey {
			return "", "", &Error{Kind: InvalidTarget, Target: target, Err: errAutoKey}
		}
		return GeneralSection, target, nil
	case 1:
		sectionName, key, _ := strings.Cut(target, ".")
		if sectionName == "" || key == "" {
			return "", "", &Error{Kind: InvalidTarget, Target: target, Err: errEmptyPart}
		}
		if key == autoKey {
			return "", "", &Error{Kind: InvalidTarget, Target: target, Err: errAutoKey}
		}
		return sectionName, key, nil
	default:
		return "", "", &Error{Kind: InvalidTarget, Target: target, Err: errTooManySeparators}
	}
}

// validate checks every section, key and value can be written as INI and read
// back unchanged.
func (d *Document) validate() error {
	for _, s := range d.sections {
		if s.name == "" || strings.ContainsAny(s.name, "]\r\n") || strings.TrimSpace(s.name) != s.name {
			return fmt.Errorf("section name %q cannot be stored", s.name)
		}
		for _, k := range s.keys {
			if err := validateKey(k); err != nil {
				return fmt.Errorf("%s.%s: %w", s.name, k, err)
			}
			if err := validateValue(s.values[k]); err != nil {
				return fmt.Errorf("%s.%s: %w", s.name, k, err)
			}
		}
	}
	return nil
}

func validateKey(key string) error {
	switch {
	case key == "":
		return errors.New("key must not be empty")
	case key == autoKey:
		return errAutoKey
	case strings.TrimSpace(key) != key:
		return errors.New("key must not have surrounding whitespace")
	case strings.ContainsAny(key, "=:\r\n"):
		return errors.New("key must not contain '=', ':' or line breaks")
	case strings.ContainsAny(key[:1], "[#;`\""):
		return errors.New("key must not start with a comment or section marker")
	}
	return nil
}

func validateValue(value string) error {
	switch {
	case strings.ContainsAny(value, "\r\n"):
		return errors.New("value must be a single line")
	case strings.TrimSpace(value) != value:
		return errors.New("value must not have surrounding whitespace")
	case strings.HasPrefix(value, "`"), strings.HasPrefix(value, `"""`):
		return errors.New("value must not start with a backquote or triple quote")
	}
	return nil
}
