package config

const (
	// GeneralSection is the default section bare keys resolve to.
	GeneralSection = "qimu"

	defaultConfigPath = "~/.config/qimu.ini"
	defaultSection    = "DEFAULT"
)

// Default returns the built-in document: an empty general section.
func Default() *Document {
	doc := &Document{}
	doc.ensureSection(GeneralSection)
	return doc
}
