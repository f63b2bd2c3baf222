package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/m3rciful/anorbot/core/config"
	coredatabase "github.com/m3rciful/anorbot/core/database"
)

const (
	SessionStoreMemory   = "memory"
	SessionStorePostgres = "postgres"

	defaultRewindLimit = 5
)

// APIConfig points the bot at the internal profile API.
type APIConfig struct {
	BaseURL        string `yaml:"base_url" envconfig:"API_URL"`
	InternalToken  string `yaml:"internal_token" envconfig:"INTERNAL_TOKEN"`
	TimeoutSeconds int    `yaml:"timeout_seconds" envconfig:"API_TIMEOUT_SECONDS"`
	// AppURL is the public web app base used for chat deep links.
	AppURL string `yaml:"app_url" envconfig:"APP_URL"`
}

// Timeout returns the configured request timeout, or zero for the default.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// BotConfig holds dating-bot specific knobs.
type BotConfig struct {
	RewindLimit  int    `yaml:"rewind_limit" envconfig:"REWIND_LIMIT"`
	SessionStore string `yaml:"session_store" envconfig:"SESSION_STORE"`
}

// Config aggregates the core runtime settings with the bot's own sections.
type Config struct {
	coreconfig.Config `yaml:",inline"`

	Database coredatabase.Config `yaml:"database"`
	API      APIConfig           `yaml:"api"`
	Bot      BotConfig           `yaml:"bot"`
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Config
}

// LoadConfig reads configuration from a YAML file and environment variables.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Config); err != nil {
		return nil, err
	}
	if err := normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func normalize(cfg *Config) error {
	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if strings.TrimSpace(cfg.API.InternalToken) == "" {
		return fmt.Errorf("api.internal_token is required")
	}
	if cfg.API.TimeoutSeconds < 0 {
		return fmt.Errorf("api.timeout_seconds must be >= 0")
	}

	if cfg.Bot.RewindLimit <= 0 {
		cfg.Bot.RewindLimit = defaultRewindLimit
	}

	store := strings.ToLower(strings.TrimSpace(cfg.Bot.SessionStore))
	if store == "" {
		store = SessionStorePostgres
	}
	switch store {
	case SessionStoreMemory:
	case SessionStorePostgres:
		if strings.TrimSpace(cfg.Database.Host) == "" {
			return fmt.Errorf("database.host is required when bot.session_store is 'postgres'")
		}
	default:
		return fmt.Errorf("invalid bot.session_store %q; allowed: memory, postgres", cfg.Bot.SessionStore)
	}
	cfg.Bot.SessionStore = store
	return nil
}
