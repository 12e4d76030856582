package config

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .flowviz.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Theme names the theme applied when --theme is not given.
	Theme string `yaml:"theme" mapstructure:"theme"`

	// Animation holds playback defaults.
	Animation AnimationConfig `yaml:"animation" mapstructure:"animation"`

	// Render holds static rendering defaults.
	Render RenderConfig `yaml:"render" mapstructure:"render"`

	// Output controls terminal output behavior.
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// AnimationConfig controls how `flowviz play` animates by default.
type AnimationConfig struct {
	// Style is the reveal style: "top-down", "fade-in", or "left-right".
	Style string `yaml:"style" mapstructure:"style"`

	// FPS is the playback rate in frames per second.
	FPS int `yaml:"fps" mapstructure:"fps"`

	// Stagger is how many lines each top-down step reveals.
	Stagger int `yaml:"stagger" mapstructure:"stagger"`

	// Loop restarts the animation after the last frame.
	Loop bool `yaml:"loop" mapstructure:"loop"`

	// Hold is how long the final frame stays up, e.g. "2s".
	Hold string `yaml:"hold" mapstructure:"hold"`

	// AltScreen plays on the alternate screen and restores on exit.
	AltScreen bool `yaml:"alt_screen" mapstructure:"alt_screen"`
}

// RenderConfig controls the static diagram output.
type RenderConfig struct {
	// Direction overrides the flow header: "LR", "RL", "TB", "TD", "BT".
	// Empty keeps whatever the diagram declares.
	Direction string `yaml:"direction" mapstructure:"direction"`

	// Legend prints the category color legend under the diagram.
	Legend bool `yaml:"legend" mapstructure:"legend"`
}

// OutputConfig controls color and glyph behavior.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`

	// ASCII forces plain ASCII glyphs even on unicode terminals.
	ASCII bool `yaml:"ascii" mapstructure:"ascii"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Animation: AnimationConfig{
			Style:   "top-down",
			FPS:     12,
			Stagger: 1,
			Hold:    "1s",
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
