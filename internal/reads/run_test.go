package reads

import (
	"path/filepath"
	"strings"
	"testing"

	"qimu/internal/testsupport"
)

func TestRunTableDefaultLayout(t *testing.T) {
	dir := testsupport.ReadsDir(t, "pe1", testsupport.IlluminaPairs("B", "A")...)
	run, err := Build(buildOptions(dir))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	opts := DefaultTableOptions()
	opts.BaseDir = dir
	want := strings.Join([]string{
		"SampleId\treads_R1\treads_R2",
		"A\tA_S2_L001_R1_001.fastq.gz\tA_S2_L001_R2_001.fastq.gz",
		"B\tB_S1_L001_R1_001.fastq.gz\tB_S1_L001_R2_001.fastq.gz",
	}, "\n")
	if got := run.Table(opts); got != want {
		t.Fatalf("unexpected table:\n%s\nwant\n%s", got, want)
	}
}

func TestRunTableSingleEndHasNoReverseColumn(t *testing.T) {
	dir := testsupport.ReadsDir(t, "se", "Ctrl.fastq")
	run, err := Build(buildOptions(dir))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	opts := DefaultTableOptions()
	opts.Separator = ","
	opts.Absolute = true
	want := "SampleId,reads_R1\nCtrl," + filepath.Join(dir, "Ctrl.fastq")
	if got := run.Table(opts); got != want {
		t.Fatalf("unexpected table %q, want %q", got, want)
	}
}

func TestRunAddRejectsDuplicate(t *testing.T) {
	run := NewRun()
	if err := run.Add(Sample{ID: "x", Type: SingleEnd, Reads: []string{"/a"}}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := run.Add(Sample{ID: "x", Type: SingleEnd, Reads: []string{"/b"}}); !IsKind(err, DuplicateSample) {
		t.Fatalf("expected DuplicateSample, got %v", err)
	}
}

func TestPresets(t *testing.T) {
	if got := strings.Join(PresetNames(), ","); got != "ampliseq,mag,manifest" {
		t.Fatalf("unexpected presets %s", got)
	}

	cases := []struct {
		name   string
		sep    string
		header string
	}{
		{"manifest", ",", "sample-id,forward-absolute-filepath,reverse-absolute-filepath"},
		{"AMPLISEQ", "\t", "sample-id\tforward-absolute-filepath\treverse-absolute-filepath"},
		{"mag", ",", "sample,R1,R2"},
	}
	for _, tc := range cases {
		preset, err := LookupPreset(tc.name)
		if err != nil {
			t.Fatalf("LookupPreset(%q): %v", tc.name, err)
		}
		opts := preset.Apply(DefaultTableOptions())
		if !opts.Absolute || opts.Separator != tc.sep {
			t.Fatalf("%s: unexpected options %+v", tc.name, opts)
		}
		header := strings.Join([]string{opts.ColID, opts.ColFor, opts.ColRev}, opts.Separator)
		if header != tc.header {
			t.Fatalf("%s: header %q, want %q", tc.name, header, tc.header)
		}
	}

	if _, err := LookupPreset("qiime"); !IsKind(err, UnknownPreset) {
		t.Fatalf("expected UnknownPreset, got %v", err)
	}
}

func TestPairFilesMatchesWithinDirectory(t *testing.T) {
	files := []File{
		{Name: "x_R1_001.fastq", Path: "/a/x_R1_001.fastq", Dir: "/a"},
		{Name: "x_R2_001.fastq", Path: "/b/x_R2_001.fastq", Dir: "/b"},
		{Name: "y_R1_001.fastq", Path: "/a/y_R1_001.fastq", Dir: "/a"},
		{Name: "y_R2_001.fastq", Path: "/a/y_R2_001.fastq", Dir: "/a"},
	}
	pairs, unpaired := PairFiles(files, []string{"_R1_"}, []string{"_R2_"}, false)
	if len(pairs) != 2 {
		t.Fatalf("expected 2 forward entries, got %d", len(pairs))
	}
	if pairs[0].Reverse != nil {
		t.Fatalf("cross-directory reads must not pair: %+v", pairs[0])
	}
	if pairs[1].Reverse == nil || pairs[1].Reverse.Path != "/a/y_R2_001.fastq" {
		t.Fatalf("expected y to pair, got %+v", pairs[1])
	}
	if len(unpaired) != 1 || unpaired[0].Path != "/b/x_R2_001.fastq" {
		t.Fatalf("unexpected unpaired %+v", unpaired)
	}
}
