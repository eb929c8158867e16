package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"texturl/internal/core"
)

type Config struct {
	BaseURL      string `yaml:"base_url"`
	MaxURLLength int    `yaml:"max_url_length"`
}

// Load resolves configuration from defaults, an optional YAML file and the
// environment, in that order. An empty path falls back to TEXTURL_CONFIG;
// when neither is set no file is read.
func Load(path string) (*Config, error) {
	cfg := &Config{
		BaseURL:      core.DefaultBaseURL,
		MaxURLLength: core.DefaultMaxURLLength,
	}

	if path == "" {
		path = os.Getenv("TEXTURL_CONFIG")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.BaseURL = getEnv("TEXTURL_BASE_URL", cfg.BaseURL)
	cfg.MaxURLLength = getEnvInt("TEXTURL_MAX_URL_LENGTH", cfg.MaxURLLength)

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var fc Config
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.MaxURLLength > 0 {
		c.MaxURLLength = fc.MaxURLLength
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
