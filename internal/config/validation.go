package config

import (
	"fmt"
	"strings"
)

var logLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

func validate(c *Config) error {
	if !logLevels[strings.ToLower(strings.TrimSpace(c.App.LogLevel))] {
		return fmt.Errorf("app.log_level must be one of debug|info|warn|error, got %q", c.App.LogLevel)
	}
	if strings.TrimSpace(c.Build.Input) == "" {
		return fmt.Errorf("build.input cannot be blank")
	}
	if strings.TrimSpace(c.Build.Output) == "" {
		return fmt.Errorf("build.output cannot be blank")
	}
	return nil
}
