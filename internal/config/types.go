// Package config carries the run configuration: an optional YAML file
// merged over built-in defaults, with command-line flags layered on top
// by the CLI.
package config

// Config is the top-level configuration carrier.
type Config struct {
	App   AppConfig   `mapstructure:"app"`
	Build BuildConfig `mapstructure:"build"`
}

// AppConfig controls process-wide concerns.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
	LogPath  string `mapstructure:"log_path"`
}

// BuildConfig controls one report build.
type BuildConfig struct {
	Input  string `mapstructure:"input"`
	Output string `mapstructure:"output"`
	Rates  string `mapstructure:"rates"`
	WeekOf string `mapstructure:"week_of"`
	Sheet  string `mapstructure:"sheet"`
	Chart  string `mapstructure:"chart"`
	Watch  bool   `mapstructure:"watch"`
}
