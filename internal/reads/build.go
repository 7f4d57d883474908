package reads

import (
	"context"
	"log/slog"
)

// Options configures Build.
type Options struct {
	Dirs           []string
	Extensions     []string
	ForwardTags    []string
	ReverseTags    []string
	Separators     []string
	Strip          []string
	ForceSingleEnd bool
	Logger         *slog.Logger
}

// DefaultOptions returns the Illumina-style defaults.
func DefaultOptions() Options {
	return Options{
		Extensions:  []string{".fastq", ".fastq.gz"},
		ForwardTags: []string{"_R1_", "_1."},
		ReverseTags: []string{"_R2_", "_2."},
		Separators:  []string{"_"},
	}
}

func (o Options) naming() NamingRules {
	return NamingRules{
		Separators:  o.Separators,
		ForwardTags: o.ForwardTags,
		ReverseTags: o.ReverseTags,
		Strip:       o.Strip,
	}
}

type candidate struct {
	name  string
	reads []string
}

// Build scans, pairs and names the reads in opts.Dirs. A directory without
// read files yields an empty run and no error.
func Build(opts Options) (*Run, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	files, err := Scan(opts.Dirs, opts.Extensions)
	if err != nil {
		return nil, err
	}
	run := NewRun()
	if len(files) == 0 {
		return run, nil
	}
	logger.Debug("read files found", slog.Int("count", len(files)))

	pairs, unpaired := PairFiles(files, opts.ForwardTags, opts.ReverseTags, opts.ForceSingleEnd)
	rules := opts.naming()

	var candidates []candidate
	byName := make(map[string]int)
	add := func(source File, reads ...string) {
		name := ExtractSampleName(source.Name, rules)
		if idx, exists := byName[name]; exists {
			level := slog.LevelWarn
			if opts.ForceSingleEnd {
				level = slog.LevelDebug
			}
			logger.Log(context.Background(), level, "read file skipped, sample name already taken",
				slog.String("file", source.Path),
				slog.String("sample", name),
				slog.String("kept", candidates[idx].reads[0]),
			)
			return
		}
		byName[name] = len(candidates)
		candidates = append(candidates, candidate{name: name, reads: reads})
	}
	for _, p := range pairs {
		if p.Reverse != nil {
			add(p.Forward, p.Forward.Path, p.Reverse.Path)
			continue
		}
		add(p.Forward, p.Forward.Path)
	}
	for _, f := range unpaired {
		add(f, f.Path)
	}

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.name)
	}
	ids := FirstUniqueParts(names, rules.primarySeparator())

	for _, c := range candidates {
		sample := Sample{ID: ids[c.name], Type: SingleEnd, Reads: c.reads}
		if len(c.reads) == 2 {
			sample.Type = PairedEnd
		}
		if err := run.Add(sample); err != nil {
			return nil, err
		}
		logger.Debug("sample resolved",
			slog.String("sample", sample.ID),
			slog.String("type", sample.Type.String()),
			slog.String("name", c.name),
		)
	}
	if err := run.Validate(); err != nil {
		return nil, err
	}
	return run, nil
}
