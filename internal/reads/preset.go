package reads

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

//go:embed presets.toml
var presetsTOML []byte

// Preset is a named table layout.
type Preset struct {
	Separator string `toml:"separator"`
	ColID     string `toml:"col-id"`
	ColFor    string `toml:"col-for"`
	ColRev    string `toml:"col-rev"`
	Absolute  bool   `toml:"absolute"`
}

// Apply returns opts with the preset's layout. BaseDir is kept.
func (p Preset) Apply(opts TableOptions) TableOptions {
	opts.Separator = p.Separator
	opts.ColID = p.ColID
	opts.ColFor = p.ColFor
	opts.ColRev = p.ColRev
	opts.Absolute = opts.Absolute || p.Absolute
	return opts
}

var (
	presetsOnce sync.Once
	presets     map[string]Preset
	presetsErr  error
)

func loadPresets() (map[string]Preset, error) {
	presetsOnce.Do(func() {
		var decoded map[string]Preset
		if err := toml.Unmarshal(presetsTOML, &decoded); err != nil {
			presetsErr = fmt.Errorf("decode presets: %w", err)
			return
		}
		presets = decoded
	})
	return presets, presetsErr
}

// PresetNames returns the available preset names, sorted.
func PresetNames() []string {
	loaded, err := loadPresets()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(loaded))
	for name := range loaded {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LookupPreset finds a preset by case-insensitive name.
func LookupPreset(name string) (Preset, error) {
	loaded, err := loadPresets()
	if err != nil {
		return Preset{}, err
	}
	key := strings.ToLower(strings.TrimSpace(name))
	preset, ok := loaded[key]
	if !ok {
		return Preset{}, &Error{
			Kind: UnknownPreset,
			Err:  fmt.Errorf("%s (available formats: %s)", name, strings.Join(PresetNames(), ", ")),
		}
	}
	return preset, nil
}
