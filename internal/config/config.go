package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/keutrack-dev/keutrack/internal/client"
)

// Filename is the config file a keutrack book carries.
const Filename = "keutrack.yaml"

// Config represents the top-level keutrack.yaml configuration.
type Config struct {
	API  APIConfig  `yaml:"api"`
	Auth AuthConfig `yaml:"auth"`
}

// APIConfig holds the backend endpoint and retry policy.
type APIConfig struct {
	BaseURL        string  `yaml:"base_url"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	MaxRetries     int     `yaml:"max_retries"`
	BaseDelayMS    int     `yaml:"base_delay_ms"`
	JitterFactor   float64 `yaml:"jitter_factor"`
}

// AuthConfig holds the stored bearer token.
type AuthConfig struct {
	Token string `yaml:"token,omitempty"`
}

// Load reads a keutrack.yaml file from disk and applies environment
// overrides (KEUTRACK_API_URL, KEUTRACK_TOKEN).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyEnv()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the default client settings.
func Default() *Config {
	c := client.DefaultConfig()
	return &Config{
		API: APIConfig{
			BaseURL:        c.BaseURL,
			TimeoutSeconds: int(c.Timeout / time.Second),
			MaxRetries:     c.MaxRetries,
			BaseDelayMS:    int(c.BaseDelay / time.Millisecond),
			JitterFactor:   c.JitterFactor,
		},
	}
}

func (c *Config) applyEnv() {
	if url := os.Getenv("KEUTRACK_API_URL"); url != "" {
		c.API.BaseURL = url
	}
	if token := os.Getenv("KEUTRACK_TOKEN"); token != "" {
		c.Auth.Token = token
	}
}

// ClientConfig converts the API section into a client.Config.
func (c *Config) ClientConfig() client.Config {
	return client.Config{
		BaseURL:      c.API.BaseURL,
		Timeout:      time.Duration(c.API.TimeoutSeconds) * time.Second,
		MaxRetries:   c.API.MaxRetries,
		BaseDelay:    time.Duration(c.API.BaseDelayMS) * time.Millisecond,
		JitterFactor: c.API.JitterFactor,
	}
}
