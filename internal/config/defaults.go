package config

import "strings"

const (
	defaultLogLevel = "info"
	defaultInput    = "data/daily_totals.csv"
	defaultOutput   = "daily_totals.json"
	defaultRates    = "rates.json"
)

// DefaultPath is where Load looks when no config file is named.
const DefaultPath = "amglabor.yaml"

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.App.LogLevel) == "" {
		c.App.LogLevel = defaultLogLevel
	}
	if strings.TrimSpace(c.Build.Input) == "" {
		c.Build.Input = defaultInput
	}
	if strings.TrimSpace(c.Build.Output) == "" {
		c.Build.Output = defaultOutput
	}
	if strings.TrimSpace(c.Build.Rates) == "" {
		c.Build.Rates = defaultRates
	}
}

// Default returns the configuration a run gets with no file and no
// flags.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}
