package engine

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"
)

// CCMapping describes one entry in the CC map (spec.md §6 "CC map
// (canonical)"): MIDI CC number -> dotted param path, with the
// controller's 0..127 range scaled into [Min, Max].
type CCMapping struct {
	Path string  `yaml:"path"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

//go:embed ccmap.yaml
var defaultCCMapYAML []byte

// ParseCCMap decodes a YAML document of `cc_number: {path, min, max}`
// entries into the map Engine.SetCCMap expects.
func ParseCCMap(data []byte) (map[int]CCMapping, error) {
	var wire map[int]CCMapping
	if err := yaml.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	return wire, nil
}

// DefaultCCMap decodes the embedded ccmap.yaml, the canonical table used
// unless a host supplies its own via LoadCCMap/SetCCMap (SPEC_FULL.md §6).
func DefaultCCMap() map[int]CCMapping {
	m, err := ParseCCMap(defaultCCMapYAML)
	if err != nil {
		// The embedded default is part of the binary, not host input;
		// a parse failure here is a build-time mistake, not a runtime one.
		panic("engine: embedded ccmap.yaml is invalid: " + err.Error())
	}
	return m
}

// LoadCCMap reads a host-supplied YAML CC map override from path, in the
// same shape as ccmap.yaml.
func LoadCCMap(path string) (map[int]CCMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCCMap(data)
}
