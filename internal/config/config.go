// Package config loads schemagen settings from the environment, an optional
// .env file and an optional YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spetersoncode/schemagen"
	"github.com/spetersoncode/schemagen/model"
	"github.com/spetersoncode/schemagen/prompt"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultPort     = "5000"
	DefaultLogLevel = "info"
	DefaultBaseURL  = "https://api.gpt.mws.ru/v1"
	DefaultTimeout  = 15 * time.Second
)

// Config holds the service configuration.
type Config struct {
	// Server
	Port     string `yaml:"port"`
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Completion backend
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`
	Model    string `yaml:"model"`

	// Request parameters
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"`
}

// Load builds the configuration. Values come from, in increasing priority:
// built-in defaults, the YAML file named by SCHEMAGEN_CONFIG, and
// environment variables (a .env file is loaded first if present).
func Load() (*Config, error) {
	godotenv.Load() // Load .env file if present

	cfg := &Config{
		Port:        DefaultPort,
		LogLevel:    DefaultLogLevel,
		Provider:    string(schemagen.ProviderOpenAI),
		Temperature: prompt.DefaultTemperature,
		MaxTokens:   prompt.DefaultMaxTokens,
		Timeout:     DefaultTimeout,
	}

	if path := os.Getenv("SCHEMAGEN_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnvOrDefault("SCHEMAGEN_PORT", cfg.Port)
	cfg.LogLevel = getEnvOrDefault("SCHEMAGEN_LOG_LEVEL", cfg.LogLevel)
	cfg.Provider = getEnvOrDefault("SCHEMAGEN_PROVIDER", cfg.Provider)
	cfg.APIKey = getEnvOrDefault("SCHEMAGEN_API_KEY", cfg.APIKey)
	cfg.BaseURL = getEnvOrDefault("SCHEMAGEN_BASE_URL", cfg.BaseURL)
	cfg.Model = getEnvOrDefault("SCHEMAGEN_MODEL", cfg.Model)
	cfg.Temperature = getEnvFloatOrDefault("SCHEMAGEN_TEMPERATURE", cfg.Temperature)
	cfg.MaxTokens = getEnvIntOrDefault("SCHEMAGEN_MAX_TOKENS", cfg.MaxTokens)
	cfg.Timeout = getEnvDurationOrDefault("SCHEMAGEN_TIMEOUT", cfg.Timeout)

	cfg.applyProviderDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// applyProviderDefaults fills the key, endpoint and model a provider needs
// when they were not set explicitly.
func (c *Config) applyProviderDefaults() {
	provider := schemagen.Provider(c.Provider)
	switch provider {
	case schemagen.ProviderOpenAI:
		c.APIKey = fallbackEnv(c.APIKey, "OPENAI_API_KEY")
		if c.BaseURL == "" {
			c.BaseURL = DefaultBaseURL
		}
	case schemagen.ProviderAnthropic:
		c.APIKey = fallbackEnv(c.APIKey, "ANTHROPIC_API_KEY")
	case schemagen.ProviderGoogle:
		c.APIKey = fallbackEnv(c.APIKey, "GOOGLE_API_KEY")
	}
	if c.Model == "" {
		c.Model = model.DefaultFor(provider).ID()
	}
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	switch schemagen.Provider(c.Provider) {
	case schemagen.ProviderOpenAI, schemagen.ProviderAnthropic, schemagen.ProviderGoogle:
	default:
		return fmt.Errorf("unknown provider: %s (must be openai, anthropic, or google)", c.Provider)
	}
	if c.APIKey == "" {
		return fmt.Errorf("SCHEMAGEN_API_KEY is required for %s provider", c.Provider)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %v", c.Temperature)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// Addr returns the listen address for Port.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// fallbackEnv returns current, or the variable's value when current is empty.
func fallbackEnv(current, key string) string {
	if current != "" {
		return current
	}
	return os.Getenv(key)
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
