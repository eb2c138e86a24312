package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Pair maps a display name to its provider ticker symbol.
type Pair struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}

// Config holds all application configuration.
type Config struct {
	Pairs       []Pair `yaml:"pairs"`
	IndexSymbol string `yaml:"index_symbol"`
	Lookback    struct {
		Days int `yaml:"days"`
	} `yaml:"lookback"`
	Garch struct {
		Omega float64 `yaml:"omega"`
		Alpha float64 `yaml:"alpha"`
		Beta  float64 `yaml:"beta"`
	} `yaml:"garch"`
	Thresholds struct {
		Good     float64 `yaml:"good"`
		Moderate float64 `yaml:"moderate"`
	} `yaml:"thresholds"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Fetch struct {
		Concurrency int `yaml:"concurrency"`
	} `yaml:"fetch"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Log struct {
		Development bool `yaml:"development"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// DefaultPairs is the built-in catalog of the seven major currency pairs.
var DefaultPairs = []Pair{
	{Name: "EUR/USD", Symbol: "EURUSD=X"},
	{Name: "GBP/USD", Symbol: "GBPUSD=X"},
	{Name: "USD/JPY", Symbol: "JPY=X"},
	{Name: "USD/CHF", Symbol: "CHF=X"},
	{Name: "AUD/USD", Symbol: "AUDUSD=X"},
	{Name: "USD/CAD", Symbol: "CAD=X"},
	{Name: "NZD/USD", Symbol: "NZDUSD=X"},
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error: the built-in defaults describe a full run.
func Load(path string) (*Config, error) {
	// Pick up a local .env before reading overrides.
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("VSTRADER_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("VSTRADER_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}

	// Defaults
	if len(cfg.Pairs) == 0 {
		cfg.Pairs = DefaultPairs
	}
	if cfg.IndexSymbol == "" {
		cfg.IndexSymbol = "^VIX"
	}
	if cfg.Lookback.Days == 0 {
		cfg.Lookback.Days = 90
	}
	if cfg.Garch.Omega == 0 && cfg.Garch.Alpha == 0 && cfg.Garch.Beta == 0 {
		cfg.Garch.Omega = 0.05
		cfg.Garch.Alpha = 0.1
		cfg.Garch.Beta = 0.85
	}
	if cfg.Thresholds.Good == 0 {
		cfg.Thresholds.Good = 0.7
	}
	if cfg.Thresholds.Moderate == 0 {
		cfg.Thresholds.Moderate = 0.4
	}
	if cfg.Fetch.Concurrency == 0 {
		cfg.Fetch.Concurrency = 3
	}

	return cfg, nil
}

// Validate checks that the configuration describes a runnable analysis.
func (c *Config) Validate() error {
	if len(c.Pairs) == 0 {
		return fmt.Errorf("at least one pair is required")
	}
	for _, p := range c.Pairs {
		if p.Name == "" || p.Symbol == "" {
			return fmt.Errorf("pair entries need both name and symbol")
		}
	}
	if c.Lookback.Days <= 0 {
		return fmt.Errorf("lookback.days must be positive")
	}
	if c.Garch.Omega < 0 || c.Garch.Alpha < 0 || c.Garch.Beta < 0 {
		return fmt.Errorf("garch coefficients must be non-negative")
	}
	if c.Thresholds.Moderate < 0 || c.Thresholds.Good <= c.Thresholds.Moderate {
		return fmt.Errorf("thresholds.good must exceed thresholds.moderate")
	}
	if c.Fetch.Concurrency <= 0 {
		return fmt.Errorf("fetch.concurrency must be positive")
	}
	if c.Schedule.DailyCron != "" {
		if c.Telegram.BotToken == "" || c.Telegram.ChatID == "" {
			return fmt.Errorf("daemon mode requires telegram.bot_token and telegram.chat_id")
		}
	}
	return nil
}
