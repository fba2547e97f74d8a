// Package config manages application configuration.
package config

// Config represents the application configuration. The defaults reproduce
// the tuned heuristic constants; a config file only overrides them.
type Config struct {
	Classifier ClassifierConfig `yaml:"classifier"`
	Builder    BuilderConfig    `yaml:"builder"`
	Render     RenderConfig     `yaml:"render"`
}

// ClassifierConfig contains the geometric thresholds for element
// classification, in layout units (points).
type ClassifierConfig struct {
	UnderlineMaxHeight float64 `yaml:"underline_max_height"`
	UnderlineMaxGap    float64 `yaml:"underline_max_gap"`
}

// BuilderConfig contains hierarchy construction settings.
type BuilderConfig struct {
	// FallbackRegularFontSize is the body-text reference used when a
	// document contains no non-bold text at all.
	FallbackRegularFontSize float64 `yaml:"fallback_regular_font_size"`

	// Placeholder fills node content when a heading has no body text.
	Placeholder string `yaml:"placeholder"`
}

// RenderConfig contains visual output settings.
type RenderConfig struct {
	Height     string `yaml:"height"`
	Width      string `yaml:"width"`
	LabelLimit int    `yaml:"label_limit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Classifier: ClassifierConfig{
			UnderlineMaxHeight: 5.0,
			UnderlineMaxGap:    5.0,
		},
		Builder: BuilderConfig{
			FallbackRegularFontSize: 8.0,
			Placeholder:             "(No description)",
		},
		Render: RenderConfig{
			Height:     "750px",
			Width:      "100%",
			LabelLimit: 30,
		},
	}
}
