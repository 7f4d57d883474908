// Package reads builds sample tables from directories of sequencing read
// files.
//
// Build scans each directory (non-recursively) for files with a read
// extension, pairs forward and reverse reads by their tags, derives a short
// sample id from each filename and validates the result: a run is either all
// single-end or all paired-end, and sample ids are unique. Run.Table renders
// the samples sorted by id in a separated layout, optionally using one of the
// named presets embedded in presets.toml.
package reads
