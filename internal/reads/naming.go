package reads

import "strings"

// readExtensions are removed from filenames before naming; the first match wins.
var readExtensions = []string{".fastq.gz", ".fq.gz", ".fastq", ".fq"}

const defaultSeparator = "_"

// NamingRules controls how a sample name is derived from a filename.
type NamingRules struct {
	Separators  []string
	ForwardTags []string
	ReverseTags []string
	Strip       []string
}

func (n NamingRules) separators() []string {
	out := make([]string, 0, len(n.Separators))
	for _, sep := range n.Separators {
		if sep != "" {
			out = append(out, sep)
		}
	}
	if len(out) == 0 {
		return []string{defaultSeparator}
	}
	return out
}

// primarySeparator is the separator sample names are joined with.
func (n NamingRules) primarySeparator() string {
	return n.separators()[0]
}

// ExtractSampleName drops the read extension, every forward and reverse tag
// and every strip string from filename, normalizes all separators to the
// first one and trims non-alphanumeric characters from both ends.
func ExtractSampleName(filename string, rules NamingRules) string {
	name := filename
	for _, ext := range readExtensions {
		if strings.HasSuffix(name, ext) {
			name = strings.TrimSuffix(name, ext)
			break
		}
	}

	for _, tag := range rules.ForwardTags {
		name = removeAll(name, tag)
	}
	for _, tag := range rules.ReverseTags {
		name = removeAll(name, tag)
	}
	for _, s := range rules.Strip {
		name = removeAll(name, s)
	}

	seps := rules.separators()
	parts := []string{name}
	for _, sep := range seps {
		next := make([]string, 0, len(parts))
		for _, part := range parts {
			next = append(next, strings.Split(part, sep)...)
		}
		parts = next
	}
	return StripNonAlphanumeric(strings.Join(parts, seps[0]))
}

func removeAll(s, sub string) string {
	if sub == "" {
		return s
	}
	return strings.ReplaceAll(s, sub, "")
}

// StripNonAlphanumeric trims every leading and trailing character outside
// [A-Za-z0-9].
func StripNonAlphanumeric(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return !isASCIIAlnum(r) })
}

func isASCIIAlnum(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

// FirstUniqueParts maps each name to its first separator-delimited token that
// no other name has at the same position. A name without such a token maps to
// itself.
func FirstUniqueParts(names []string, separator string) map[string]string {
	if separator == "" {
		separator = defaultSeparator
	}
	split := make(map[string][]string, len(names))
	for _, name := range names {
		split[name] = strings.Split(name, separator)
	}

	result := make(map[string]string, len(split))
	for name, parts := range split {
		result[name] = name
		for i, part := range parts {
			if uniqueAt(split, name, i, part) {
				result[name] = part
				break
			}
		}
	}
	return result
}

func uniqueAt(split map[string][]string, name string, pos int, part string) bool {
	for other, parts := range split {
		if other == name {
			continue
		}
		if pos < len(parts) && parts[pos] == part {
			return false
		}
	}
	return true
}
