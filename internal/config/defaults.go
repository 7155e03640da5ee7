package config

import (
	_ "embed"
)

//go:embed defaults/stacker.yaml
var defaultStackerYAML []byte

// DefaultStackerConfig returns the default stacker configuration.
func DefaultStackerConfig() StackerConfig {
	return StackerConfig{
		Field: FieldConfig{
			Width:  128,
			Height: 64,
		},
		Box: BoxConfig{
			StartX: 0,
			Y:      8,
			Width:  64,
			Height: 8,
			Speed:  2,
		},
		Tower: TowerConfig{
			BaseX:     32,
			BaseWidth: 64,
		},
		Host: HostConfig{
			TickRate:       80,
			ReleaseDelayMS: 120,
			InputBuffer:    16,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultStackerYAML
}
