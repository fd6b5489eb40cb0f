package enums

import "fmt"

// Preset names a quick-start bundle template.
type Preset string

const (
	PresetLight1 Preset = "light_1"
	PresetLight2 Preset = "light_2"
	PresetGiga1  Preset = "giga_1"
)

var validPresets = []Preset{
	PresetLight1,
	PresetLight2,
	PresetGiga1,
}

var presetLabels = map[Preset]string{
	PresetLight1: "기라_1",
	PresetLight2: "기라_2",
	PresetGiga1:  "기가_1",
}

// String implements fmt.Stringer.
func (p Preset) String() string {
	return string(p)
}

// Label returns the card label agents see.
func (p Preset) Label() string {
	return presetLabels[p]
}

// IsValid reports whether the value is a known Preset.
func (p Preset) IsValid() bool {
	for _, candidate := range validPresets {
		if candidate == p {
			return true
		}
	}
	return false
}

// Presets lists every preset in display order.
func Presets() []Preset {
	out := make([]Preset, len(validPresets))
	copy(out, validPresets)
	return out
}

// ParsePreset converts raw input into a Preset.
func ParsePreset(value string) (Preset, error) {
	for _, candidate := range validPresets {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid preset %q", value)
}
