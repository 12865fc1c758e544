// Package config provides YAML-based configuration loading for termtris.
package config

// Config contains all user-tunable settings.
type Config struct {
	Game  GameConfig  `yaml:"game"`
	Input InputConfig `yaml:"input"`
	UI    UIConfig    `yaml:"ui"`
}

// GameConfig defines simulation parameters.
type GameConfig struct {
	// TickRate is the number of simulation frames per second.
	TickRate int `yaml:"tick_rate"`
}

// InputConfig defines input handling parameters.
type InputConfig struct {
	// DebounceFrames is the per-action refractory window: after an action
	// triggers, further presses of the same action are swallowed for this
	// many frames. 0 disables debouncing.
	DebounceFrames int `yaml:"debounce_frames"`
}

// UIConfig defines presentation parameters.
type UIConfig struct {
	// ASCII switches the renderer to plain ASCII cells for terminals
	// without good block-glyph support.
	ASCII bool `yaml:"ascii"`
}

// Normalize clamps nonsensical values back to the defaults.
func (c *Config) Normalize() {
	def := Default()
	if c.Game.TickRate <= 0 {
		c.Game.TickRate = def.Game.TickRate
	}
	if c.Input.DebounceFrames < 0 {
		c.Input.DebounceFrames = def.Input.DebounceFrames
	}
}
