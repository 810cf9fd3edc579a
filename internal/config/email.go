package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/docker/go-units"
)

const (
	// EnvEmailProviderURL overrides the transactional email provider endpoint.
	EnvEmailProviderURL = "EMAIL_PROVIDER_URL"

	// EnvEmailAPIKey overrides the provider API key.
	EnvEmailAPIKey = "EMAIL_API_KEY"

	// EnvEmailSandbox overrides the sandbox mode flag.
	EnvEmailSandbox = "EMAIL_SANDBOX"

	// EnvEmailSandboxRecipient overrides the permitted sandbox recipient.
	EnvEmailSandboxRecipient = "EMAIL_SANDBOX_RECIPIENT"

	// EnvEmailMaxAttachmentSize overrides the attachment size cap.
	EnvEmailMaxAttachmentSize = "EMAIL_MAX_ATTACHMENT_SIZE"
)

// EmailConfig contains transactional email provider configuration.
type EmailConfig struct {
	ProviderURL string `toml:"provider_url"`
	APIKey      string `toml:"api_key"`

	// Sandbox restricts delivery to SandboxRecipient, mirroring provider
	// sandbox-mode behavior for unverified sender domains.
	Sandbox          bool   `toml:"sandbox"`
	SandboxRecipient string `toml:"sandbox_recipient"`

	MaxAttachmentSize    string `toml:"max_attachment_size"`
	Timeout              string `toml:"timeout"`
	maxAttachmentSizeVal int64
}

// MaxAttachmentSizeBytes returns the parsed attachment size cap.
func (c *EmailConfig) MaxAttachmentSizeBytes() int64 {
	return c.maxAttachmentSizeVal
}

// TimeoutDuration parses and returns the request timeout as a time.Duration.
func (c *EmailConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the email configuration.
func (c *EmailConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *EmailConfig) Merge(overlay *EmailConfig) {
	if overlay.ProviderURL != "" {
		c.ProviderURL = overlay.ProviderURL
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}

	c.Sandbox = overlay.Sandbox

	if overlay.SandboxRecipient != "" {
		c.SandboxRecipient = overlay.SandboxRecipient
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if size, err := units.FromHumanSize(overlay.MaxAttachmentSize); err == nil {
		c.MaxAttachmentSize = overlay.MaxAttachmentSize
		c.maxAttachmentSizeVal = size
	}
}

func (c *EmailConfig) loadDefaults() {
	if c.MaxAttachmentSize == "" {
		c.MaxAttachmentSize = "10MB"
	}
	if c.Timeout == "" {
		c.Timeout = "30s"
	}
}

func (c *EmailConfig) loadEnv() {
	if v := os.Getenv(EnvEmailProviderURL); v != "" {
		c.ProviderURL = v
	}
	if v := os.Getenv(EnvEmailAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvEmailSandbox); v != "" {
		if sandbox, err := strconv.ParseBool(v); err == nil {
			c.Sandbox = sandbox
		}
	}
	if v := os.Getenv(EnvEmailSandboxRecipient); v != "" {
		c.SandboxRecipient = v
	}
	if v := os.Getenv(EnvEmailMaxAttachmentSize); v != "" {
		c.MaxAttachmentSize = v
	}
}

func (c *EmailConfig) validate() error {
	size, err := units.FromHumanSize(c.MaxAttachmentSize)
	if err != nil {
		return fmt.Errorf("invalid max_attachment_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_attachment_size must be positive")
	}
	c.maxAttachmentSizeVal = size

	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
