package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteFASTQ writes records minimal FASTQ records to path. A count <= 0
// writes a single record.
func WriteFASTQ(t testing.TB, path string, records int) {
	t.Helper()

	if records <= 0 {
		records = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	for i := 0; i < records; i++ {
		if _, err := fmt.Fprintf(f, "@read%d\nACGTACGT\n+\nIIIIIIII\n", i+1); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// ReadsDir creates dir (under a fresh temp directory when dir is relative)
// holding one FASTQ file per name, and returns its absolute, symlink-free path.
func ReadsDir(t testing.TB, dir string, names ...string) string {
	t.Helper()

	if !filepath.IsAbs(dir) {
		dir = filepath.Join(t.TempDir(), dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	for _, name := range names {
		WriteFASTQ(t, filepath.Join(dir, name), 1)
	}
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("resolve %s: %v", dir, err)
	}
	return resolved
}

// IlluminaPairs returns forward and reverse names in the
// {sample}_S{n}_L001_R{1,2}_001.fastq.gz layout.
func IlluminaPairs(samples ...string) []string {
	names := make([]string, 0, len(samples)*2)
	for i, sample := range samples {
		names = append(names,
			fmt.Sprintf("%s_S%d_L001_R1_001.fastq.gz", sample, i+1),
			fmt.Sprintf("%s_S%d_L001_R2_001.fastq.gz", sample, i+1),
		)
	}
	return names
}

// SimplePairs returns {prefix}{sample}_{1,2}.fastq.gz names.
func SimplePairs(prefix string, samples ...string) []string {
	names := make([]string, 0, len(samples)*2)
	for _, sample := range samples {
		names = append(names,
			fmt.Sprintf("%s%s_1.fastq.gz", prefix, sample),
			fmt.Sprintf("%s%s_2.fastq.gz", prefix, sample),
		)
	}
	return names
}
