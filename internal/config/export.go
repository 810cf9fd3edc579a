package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// EnvExportOversample overrides the rasterization oversampling factor.
	EnvExportOversample = "EXPORT_OVERSAMPLE"

	// EnvExportSettleDelay overrides the render settle delay.
	EnvExportSettleDelay = "EXPORT_SETTLE_DELAY"
)

// ExportConfig contains document export configuration.
type ExportConfig struct {
	// ReferenceWidth is the fixed pixel width previews are normalized to
	// before pagination, one page wide at standard print resolution.
	ReferenceWidth int `toml:"reference_width"`

	// Oversample is the rasterization oversampling factor applied for
	// resolution quality.
	Oversample float64 `toml:"oversample"`

	// SettleDelay is the bounded wait before measuring a rendered surface.
	SettleDelay string `toml:"settle_delay"`

	// JPEGQuality is the encoding quality for page images embedded in the PDF.
	JPEGQuality int `toml:"jpeg_quality"`
}

// SettleDelayDuration parses and returns the settle delay as a time.Duration.
func (c *ExportConfig) SettleDelayDuration() time.Duration {
	d, _ := time.ParseDuration(c.SettleDelay)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the export configuration.
func (c *ExportConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *ExportConfig) Merge(overlay *ExportConfig) {
	if overlay.ReferenceWidth != 0 {
		c.ReferenceWidth = overlay.ReferenceWidth
	}
	if overlay.Oversample != 0 {
		c.Oversample = overlay.Oversample
	}
	if overlay.SettleDelay != "" {
		c.SettleDelay = overlay.SettleDelay
	}
	if overlay.JPEGQuality != 0 {
		c.JPEGQuality = overlay.JPEGQuality
	}
}

func (c *ExportConfig) loadDefaults() {
	if c.ReferenceWidth == 0 {
		c.ReferenceWidth = 816
	}
	if c.Oversample == 0 {
		c.Oversample = 1.5
	}
	if c.SettleDelay == "" {
		c.SettleDelay = "100ms"
	}
	if c.JPEGQuality == 0 {
		c.JPEGQuality = 90
	}
}

func (c *ExportConfig) loadEnv() {
	if v := os.Getenv(EnvExportOversample); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Oversample = f
		}
	}
	if v := os.Getenv(EnvExportSettleDelay); v != "" {
		c.SettleDelay = v
	}
}

func (c *ExportConfig) validate() error {
	if c.ReferenceWidth < 1 {
		return fmt.Errorf("reference_width must be positive")
	}
	if c.Oversample < 1 {
		return fmt.Errorf("oversample must be >= 1")
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality must be in [1, 100]")
	}
	if _, err := time.ParseDuration(c.SettleDelay); err != nil {
		return fmt.Errorf("invalid settle_delay: %w", err)
	}
	return nil
}
