// Package config defines the slackfmt configuration file.
//
// JSON keys use camelCase; unknown keys are ignored and missing keys keep
// their defaults.
package config

import "github.com/crystaldolphin/slackfmt/internal/message"

// BuilderConfig holds the defaults handed to message.New.
type BuilderConfig struct {
	Fallback     string `json:"fallback"`
	OkLabel      string `json:"okLabel"`
	DismissLabel string `json:"dismissLabel"`
}

func defaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		Fallback:     message.DefaultFallback,
		OkLabel:      message.DefaultOkLabel,
		DismissLabel: message.DefaultDismissLabel,
	}
}

// OutputConfig controls how rendered payloads are printed.
type OutputConfig struct {
	Indent string `json:"indent"` // "" prints compact JSON
}

func defaultOutputConfig() OutputConfig {
	return OutputConfig{Indent: "  "}
}

// Config is the root configuration.
type Config struct {
	Builder BuilderConfig `json:"builder"`
	Output  OutputConfig  `json:"output"`
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() Config {
	return Config{
		Builder: defaultBuilderConfig(),
		Output:  defaultOutputConfig(),
	}
}
