// Package config handles vertextool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Process ProcessConfig `yaml:"process"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ProcessConfig controls what happens to vertices before they are written.
type ProcessConfig struct {
	NormalizeWeights bool `yaml:"normalize_weights"` // Normalize blend weights per vertex
	Deduplicate      bool `yaml:"deduplicate"`       // Merge vertices that compare equal
	WarnUnsetColor   bool `yaml:"warn_unset_color"`  // Warn when a vertex has no color
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Process: ProcessConfig{
			NormalizeWeights: true,
			Deduplicate:      true,
			WarnUnsetColor:   true,
		},
	}
}
