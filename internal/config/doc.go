// Package config loads, queries, mutates, and persists the qimu INI
// configuration document.
//
// A Document is an ordered section -> key -> string store. Section and key
// insertion order is preserved so `qimu config` lists settings the way the
// user wrote them and a save rewrites untouched sections unchanged. The [qimu]
// section is the general section and always exists in a resolved document.
//
// Always obtain settings through this package: Load resolves the default path
// (~/.config/qimu.ini) or a --config override, and Persist writes through a
// temp file and rename so an interrupted save never leaves a truncated file.
package config
