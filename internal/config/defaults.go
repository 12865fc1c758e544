package config

import (
	_ "embed"
)

//go:embed defaults/termtris.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Game: GameConfig{
			TickRate: 60,
		},
		Input: InputConfig{
			DebounceFrames: 6,
		},
		UI: UIConfig{
			ASCII: false,
		},
	}
}
