// Package config provides configuration loading and validation for the service and CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jonathan/career-pulse/internal/llm"
	"github.com/jonathan/career-pulse/internal/observability"
)

// EnvPrefix is the prefix for environment overrides (CAREER_PULSE_LLM_PROVIDER, ...)
const EnvPrefix = "CAREER_PULSE"

// Default values applied before the config file and environment are read
const (
	DefaultPort        = 8080
	DefaultLLMTimeout  = 10 * time.Second
	DefaultLogLevel    = "info"
	DefaultRateLimit   = 120
	DefaultRateWindow  = time.Minute
	DefaultRateCleanup = 5 * time.Minute
)

// providerKeyEnv maps providers to the conventional credential variables
var providerKeyEnv = map[llm.Provider]string{
	llm.ProviderGemini:    "GEMINI_API_KEY",
	llm.ProviderAnthropic: "ANTHROPIC_API_KEY",
	llm.ProviderOpenAI:    "OPENAI_API_KEY",
}

// Config is the process-wide configuration. It is created once at startup and
// treated as read-only afterwards.
type Config struct {
	LLM       LLMConfig       `mapstructure:"llm"`
	Server    ServerConfig    `mapstructure:"server"`
	Insights  InsightsConfig  `mapstructure:"insights"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// LLMConfig selects the completion provider
type LLMConfig struct {
	Provider string            `mapstructure:"provider"`
	APIKey   string            `mapstructure:"api_key"`
	Tier     string            `mapstructure:"tier"`
	Models   map[string]string `mapstructure:"models"`
	Timeout  time.Duration     `mapstructure:"timeout"`
	BaseURL  string            `mapstructure:"base_url"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Port             int  `mapstructure:"port" validate:"min=1,max=65535"`
	ExposeProvenance bool `mapstructure:"expose_provenance"`
}

// InsightsConfig configures the fallback generator
type InsightsConfig struct {
	Seed        uint64 `mapstructure:"seed"`
	CatalogPath string `mapstructure:"catalog_path"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// RateLimitConfig configures per-client request limits
type RateLimitConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	DefaultLimit    int           `mapstructure:"default_limit" validate:"min=0"`
	DefaultWindow   time.Duration `mapstructure:"default_window"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	Whitelist       []string      `mapstructure:"whitelist"`
	Blacklist       []string      `mapstructure:"blacklist"`
}

// Load reads configuration from an optional file plus environment variables.
// An empty path skips the file; a missing explicit path is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = providerKey(cfg.LLM.Provider)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("llm.provider", string(llm.ProviderGemini))
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.tier", string(llm.TierStandard))
	v.SetDefault("llm.timeout", DefaultLLMTimeout)
	v.SetDefault("llm.base_url", "")
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.expose_provenance", false)
	v.SetDefault("insights.seed", 0)
	v.SetDefault("insights.catalog_path", "")
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.development", false)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.default_limit", DefaultRateLimit)
	v.SetDefault("rate_limit.default_window", DefaultRateWindow)
	v.SetDefault("rate_limit.cleanup_interval", DefaultRateCleanup)
	v.SetDefault("rate_limit.whitelist", []string{})
	v.SetDefault("rate_limit.blacklist", []string{})
}

// providerKey returns the conventional credential for a provider, if set
func providerKey(name string) string {
	provider, err := llm.ParseProvider(name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(os.Getenv(providerKeyEnv[provider]))
}

// Validate checks that the configuration has usable values.
// A missing API key is not an error: the service then runs in offline mode.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	var errs []error
	if _, err := llm.ParseProvider(c.LLM.Provider); err != nil {
		errs = append(errs, err)
	}
	if _, err := llm.ParseTier(c.LLM.Tier); err != nil {
		errs = append(errs, err)
	}
	for tier := range c.LLM.Models {
		if _, err := llm.ParseTier(tier); err != nil {
			errs = append(errs, fmt.Errorf("llm.models: %w", err))
		}
	}
	if c.LLM.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("llm.timeout must be positive, got %s", c.LLM.Timeout))
	}
	if _, err := observability.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.RateLimit.Enabled && c.RateLimit.DefaultWindow <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.default_window must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config error: %w", errors.Join(errs...))
	}
	return nil
}

// LLMSettings builds the provider configuration with any model overrides applied
func (c *Config) LLMSettings() (*llm.Config, llm.ModelTier, error) {
	provider, err := llm.ParseProvider(c.LLM.Provider)
	if err != nil {
		return nil, "", err
	}
	tier, err := llm.ParseTier(c.LLM.Tier)
	if err != nil {
		return nil, "", err
	}

	settings := llm.DefaultConfigFor(provider)
	for name, model := range c.LLM.Models {
		if model == "" {
			continue
		}
		modelTier, err := llm.ParseTier(name)
		if err != nil {
			return nil, "", err
		}
		settings = settings.WithModel(modelTier, model)
	}
	settings.BaseURL = c.LLM.BaseURL
	return settings, tier, nil
}

// Offline reports whether no provider credential is available
func (c *Config) Offline() bool {
	return strings.TrimSpace(c.LLM.APIKey) == ""
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
