package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Analysis struct {
		WindowDays     int           `yaml:"window_days"`
		Interval       time.Duration `yaml:"interval"`
		CadenceGate    time.Duration `yaml:"cadence_gate"`
		CooldownWindow time.Duration `yaml:"cooldown_window"`
		PeriodStartDay int           `yaml:"period_start_day"`
	} `yaml:"analysis"`
	Notifications struct {
		Enabled    bool   `yaml:"enabled"`
		WebhookURL string `yaml:"webhook_url"`
		AuthToken  string `yaml:"auth_token"`
	} `yaml:"notifications"`
	Database struct {
		LedgerPath  string `yaml:"ledger_path"`
		HistoryPath string `yaml:"history_path"`
	} `yaml:"database"`
	Inbox struct {
		StateFile string `yaml:"state_file"`
	} `yaml:"inbox"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
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
	if v := os.Getenv("LEDGER_PATH"); v != "" {
		cfg.Database.LedgerPath = v
	}
	if v := os.Getenv("HISTORY_PATH"); v != "" {
		cfg.Database.HistoryPath = v
	}
	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		cfg.Notifications.WebhookURL = v
	}
	if v := os.Getenv("WEBHOOK_AUTH_TOKEN"); v != "" {
		cfg.Notifications.AuthToken = v
	}
	if v := os.Getenv("SMART_NOTIFICATIONS"); v != "" {
		cfg.Notifications.Enabled = v == "true"
	}
	if v := os.Getenv("ANALYSIS_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Analysis.Interval = d
		}
	}

	// Defaults
	if cfg.Analysis.WindowDays <= 0 {
		cfg.Analysis.WindowDays = 30
	}
	if cfg.Analysis.Interval <= 0 {
		cfg.Analysis.Interval = 5 * time.Minute
	}
	if cfg.Analysis.CadenceGate <= 0 {
		cfg.Analysis.CadenceGate = 30 * time.Minute
	}
	if cfg.Analysis.CooldownWindow <= 0 {
		cfg.Analysis.CooldownWindow = time.Hour
	}
	if cfg.Analysis.PeriodStartDay <= 0 || cfg.Analysis.PeriodStartDay > 28 {
		cfg.Analysis.PeriodStartDay = 1
	}
	if cfg.Database.LedgerPath == "" {
		cfg.Database.LedgerPath = "data/ledger.db"
	}
	if cfg.Database.HistoryPath == "" {
		cfg.Database.HistoryPath = "data/history.db"
	}
	if cfg.Inbox.StateFile == "" {
		cfg.Inbox.StateFile = "data/inbox_state.json"
	}

	return cfg, nil
}

// Validate checks that the configuration is coherent.
func (c *Config) Validate() error {
	if c.Analysis.WindowDays < 1 {
		return fmt.Errorf("analysis.window_days must be positive")
	}
	if c.Analysis.Interval < time.Minute {
		return fmt.Errorf("analysis.interval must be at least 1m")
	}
	if c.Notifications.Enabled && c.Notifications.WebhookURL == "" {
		return fmt.Errorf("notifications.webhook_url is required when notifications are enabled")
	}
	return nil
}
