package config

import (
	"fmt"
	"os"
	"time"
)

const (
	// EnvAutosaveWindow overrides the draft autosave coalescing window.
	EnvAutosaveWindow = "AUTOSAVE_WINDOW"
)

// AutosaveConfig contains draft autosave configuration.
type AutosaveConfig struct {
	// Window is the write inactivity period before a draft is persisted.
	Window string `toml:"window"`
}

// WindowDuration parses and returns the coalescing window as a time.Duration.
func (c *AutosaveConfig) WindowDuration() time.Duration {
	d, _ := time.ParseDuration(c.Window)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the autosave configuration.
func (c *AutosaveConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AutosaveConfig) Merge(overlay *AutosaveConfig) {
	if overlay.Window != "" {
		c.Window = overlay.Window
	}
}

func (c *AutosaveConfig) loadDefaults() {
	if c.Window == "" {
		c.Window = "1s"
	}
}

func (c *AutosaveConfig) loadEnv() {
	if v := os.Getenv(EnvAutosaveWindow); v != "" {
		c.Window = v
	}
}

func (c *AutosaveConfig) validate() error {
	d, err := time.ParseDuration(c.Window)
	if err != nil {
		return fmt.Errorf("invalid window: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("window must be positive")
	}
	return nil
}
