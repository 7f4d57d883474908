package reads

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// File is a read file found by Scan.
type File struct {
	// Name is the NFC-normalized base name used for matching and naming.
	Name string
	// Path is the absolute path, with the directory's symlinks resolved.
	Path string
	// Dir is the resolved directory the file was found in.
	Dir string
}

// Scan lists regular files in each directory whose name ends with one of
// extensions. Subdirectories are not descended into. Files are returned in
// directory order, then by name.
func Scan(dirs []string, extensions []string) ([]File, error) {
	var files []File
	for _, dir := range dirs {
		resolved, err := resolveDir(dir)
		if err != nil {
			return nil, err
		}
		entries, err := os.ReadDir(resolved)
		if err != nil {
			return nil, &Error{Kind: NotDirectory, Path: dir, Err: err}
		}
		for _, entry := range entries {
			name := norm.NFC.String(entry.Name())
			if !hasExtension(name, extensions) {
				continue
			}
			full := filepath.Join(resolved, entry.Name())
			info, err := os.Stat(full)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			files = append(files, File{Name: name, Path: full, Dir: resolved})
		}
	}
	return files, nil
}

func resolveDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &Error{Kind: NotDirectory, Path: dir, Err: err}
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", &Error{Kind: NotDirectory, Path: dir, Err: err}
	}
	if !info.IsDir() {
		return "", &Error{Kind: NotDirectory, Path: dir}
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

func hasExtension(name string, extensions []string) bool {
	return slices.ContainsFunc(extensions, func(ext string) bool {
		return ext != "" && strings.HasSuffix(name, ext)
	})
}

// Pair is a forward read and, when found, its reverse mate.
type Pair struct {
	Forward File
	Reverse *File
}

const pairMarker = "\x00"

// PairFiles splits files into forward/reverse pairs and unpaired reads. A file
// is forward when its name contains a forward tag, else reverse when it
// contains a reverse tag, else unpaired. Mates are matched within the same
// directory by replacing their tags with a common marker. Reverse reads
// without a forward mate are returned as unpaired. forceSingleEnd treats
// every file as unpaired.
func PairFiles(files []File, forwardTags, reverseTags []string, forceSingleEnd bool) ([]Pair, []File) {
	var unpaired []File
	forward := make(map[string]File)
	reverse := make(map[string]File)
	var forwardKeys, reverseKeys []string

	for _, f := range files {
		isForward := containsAny(f.Name, forwardTags)
		isReverse := containsAny(f.Name, reverseTags)
		switch {
		case forceSingleEnd || (!isForward && !isReverse):
			unpaired = append(unpaired, f)
		case isForward:
			key := pairKey(f, forwardTags)
			if _, seen := forward[key]; !seen {
				forwardKeys = append(forwardKeys, key)
			}
			forward[key] = f
		default:
			key := pairKey(f, reverseTags)
			if _, seen := reverse[key]; !seen {
				reverseKeys = append(reverseKeys, key)
			}
			reverse[key] = f
		}
	}

	pairs := make([]Pair, 0, len(forwardKeys))
	for _, key := range forwardKeys {
		pair := Pair{Forward: forward[key]}
		if rev, ok := reverse[key]; ok {
			pair.Reverse = &rev
		}
		pairs = append(pairs, pair)
	}
	for _, key := range reverseKeys {
		if _, ok := forward[key]; !ok {
			unpaired = append(unpaired, reverse[key])
		}
	}
	return pairs, unpaired
}

func pairKey(f File, tags []string) string {
	base := f.Name
	for _, tag := range tags {
		if tag != "" {
			base = strings.ReplaceAll(base, tag, pairMarker)
		}
	}
	return f.Dir + string(filepath.Separator) + base
}

func containsAny(name string, tags []string) bool {
	return slices.ContainsFunc(tags, func(tag string) bool {
		return tag != "" && strings.Contains(name, tag)
	})
}
