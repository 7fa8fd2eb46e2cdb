// Package config handles configuration loading and validation for codegauge.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pthm/codegauge/internal/assist"
)

const (
	// DefaultConfigFile is the default configuration file name (without extension).
	DefaultConfigFile = ".codegauge"
	// DefaultConfigType is the default configuration file type.
	DefaultConfigType = "yaml"
	// EnvPrefix prefixes every environment override (CODEGAUGE_ASSIST_MODEL, ...).
	EnvPrefix = "CODEGAUGE"
)

// Config holds all configuration for codegauge.
type Config struct {
	// Assist configures the AI backend used by optimize and translate.
	Assist AssistConfig `mapstructure:"assist"`
	// Output configures report rendering.
	Output OutputConfig `mapstructure:"output"`
}

// AssistConfig holds AI backend configuration.
type AssistConfig struct {
	// Provider is the backend (anthropic, claude-code, gateway).
	Provider string `mapstructure:"provider"`
	// Model is the model identifier; empty selects the provider default.
	Model string `mapstructure:"model"`
	// MaxTokens caps the response length for providers that support it.
	MaxTokens int `mapstructure:"max_tokens"`
	// APIKey authenticates against the Anthropic API.
	APIKey string `mapstructure:"api_key"`
	// GatewayURL is the base URL of the function gateway.
	GatewayURL string `mapstructure:"gateway_url"`
	// GatewayToken is sent as a bearer token to the gateway.
	GatewayToken string `mapstructure:"gateway_token"`
	// Timeout bounds a single request, e.g. "2m".
	Timeout string `mapstructure:"timeout"`
}

// OutputConfig holds report rendering configuration.
type OutputConfig struct {
	// Format is the default report format (terminal, json, yaml).
	Format string `mapstructure:"format"`
}

// Formats lists the supported report formats.
var Formats = []string{"terminal", "json", "yaml"}

// Load reads configuration from file, environment variables, and defaults.
// An explicit path must exist; the default file is optional.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigFile)
		v.SetConfigType(DefaultConfigType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.Assist.APIKey == "" {
		cfg.Assist.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}

	return &cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Assist.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

// Validate checks the AI backend settings. Only commands that contact a
// backend need them to be valid.
func (a AssistConfig) Validate() error {
	if !contains(assist.Providers(), a.Provider) {
		return fmt.Errorf("assist provider must be one of %v, got %q", assist.Providers(), a.Provider)
	}
	if a.Provider == "gateway" && a.GatewayURL == "" {
		return fmt.Errorf("gateway_url is required when assist provider is 'gateway'")
	}
	if a.MaxTokens < 0 {
		return fmt.Errorf("max_tokens must not be negative, got %d", a.MaxTokens)
	}
	if _, err := a.RequestTimeout(); err != nil {
		return err
	}
	return nil
}

// Validate checks the report rendering settings.
func (o OutputConfig) Validate() error {
	if !contains(Formats, o.Format) {
		return fmt.Errorf("output format must be one of %v, got %q", Formats, o.Format)
	}
	return nil
}

// RequestTimeout parses Timeout. Empty or zero means no timeout.
func (a AssistConfig) RequestTimeout() (time.Duration, error) {
	if a.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(a.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid assist timeout %q: %w", a.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("assist timeout must not be negative, got %s", d)
	}
	return d, nil
}

// ClientConfig returns the assist client configuration for the selected provider.
func (c *Config) ClientConfig() assist.Config {
	cfg := assist.Config{
		Provider:  c.Assist.Provider,
		Model:     c.Assist.Model,
		MaxTokens: c.Assist.MaxTokens,
		APIKey:    c.Assist.APIKey,
	}
	if c.Assist.Provider == "gateway" {
		cfg.BaseURL = c.Assist.GatewayURL
		cfg.APIKey = c.Assist.GatewayToken
	}
	return cfg
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("assist.provider", "anthropic")
	v.SetDefault("assist.model", "")
	v.SetDefault("assist.max_tokens", 4096)
	v.SetDefault("assist.api_key", "")
	v.SetDefault("assist.gateway_url", "")
	v.SetDefault("assist.gateway_token", "")
	v.SetDefault("assist.timeout", "2m")

	v.SetDefault("output.format", "terminal")
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
