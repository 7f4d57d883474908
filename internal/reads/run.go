package reads

import (
	"path/filepath"
	"slices"
	"strings"
)

// ReadType is the layout of a sample's reads.
type ReadType int

const (
	SingleEnd ReadType = iota + 1
	PairedEnd
)

func (t ReadType) String() string {
	switch t {
	case SingleEnd:
		return "single-end"
	case PairedEnd:
		return "paired-end"
	default:
		return "other"
	}
}

// Sample is one sequenced sample: one read file for single-end, forward then
// reverse for paired-end. Paths are absolute.
type Sample struct {
	ID    string
	Type  ReadType
	Reads []string
}

// Run is a set of samples with unique ids.
type Run struct {
	samples []Sample
	ids     map[string]struct{}
}

// NewRun returns an empty run.
func NewRun() *Run {
	return &Run{ids: make(map[string]struct{})}
}

// Add appends sample, rejecting a duplicate id.
func (r *Run) Add(sample Sample) error {
	if _, exists := r.ids[sample.ID]; exists {
		return &Error{Kind: DuplicateSample, Sample: sample.ID}
	}
	r.ids[sample.ID] = struct{}{}
	r.samples = append(r.samples, sample)
	return nil
}

// Validate rejects a run mixing single-end and paired-end samples.
func (r *Run) Validate() error {
	var se, pe bool
	for _, s := range r.samples {
		switch s.Type {
		case SingleEnd:
			se = true
		case PairedEnd:
			pe = true
		}
	}
	if se && pe {
		return &Error{Kind: MixedReadTypes}
	}
	return nil
}

// Len returns the number of samples.
func (r *Run) Len() int {
	return len(r.samples)
}

// Samples returns the samples sorted by id.
func (r *Run) Samples() []Sample {
	out := slices.Clone(r.samples)
	slices.SortFunc(out, func(a, b Sample) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// IsPairedEnd reports whether any sample is paired-end.
func (r *Run) IsPairedEnd() bool {
	for _, s := range r.samples {
		if s.Type == PairedEnd {
			return true
		}
	}
	return false
}

// TableOptions controls Run.Table.
type TableOptions struct {
	Separator string
	ColID     string
	ColFor    string
	ColRev    string
	// Absolute prints absolute paths; otherwise paths are relative to BaseDir.
	Absolute bool
	BaseDir  string
}

// DefaultTableOptions returns the tab-separated SampleId/reads_R1/reads_R2 layout.
func DefaultTableOptions() TableOptions {
	return TableOptions{
		Separator: "\t",
		ColID:     "SampleId",
		ColFor:    "reads_R1",
		ColRev:    "reads_R2",
	}
}

// Table renders a header row plus one row per sample, sorted by id. The
// reverse column is present only for paired-end runs. An empty run renders
// as the empty string.
func (r *Run) Table(opts TableOptions) string {
	if len(r.samples) == 0 {
		return ""
	}
	paired := r.IsPairedEnd()

	header := []string{opts.ColID, opts.ColFor}
	if paired {
		header = append(header, opts.ColRev)
	}
	rows := []string{strings.Join(header, opts.Separator)}
	for _, s := range r.Samples() {
		row := []string{s.ID}
		for _, read := range s.Reads {
			row = append(row, displayPath(read, opts))
		}
		rows = append(rows, strings.Join(row, opts.Separator))
	}
	return strings.Join(rows, "\n")
}

func displayPath(path string, opts TableOptions) string {
	if opts.Absolute || opts.BaseDir == "" {
		return path
	}
	rel, err := filepath.Rel(opts.BaseDir, path)
	if err != nil {
		return path
	}
	return rel
}
