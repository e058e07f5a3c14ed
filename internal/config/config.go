package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Storage struct {
		SQLitePath  string `yaml:"sqlite_path"`
		HistoryPath string `yaml:"history_path"`
	} `yaml:"storage"`
	Game struct {
		TickIntervalMs int    `yaml:"tick_interval_ms"`
		Username       string `yaml:"username"`
	} `yaml:"game"`
	Schedule struct {
		AutosaveCron string `yaml:"autosave_cron"`
		SnapshotCron string `yaml:"snapshot_cron"`
	} `yaml:"schedule"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
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
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := os.Getenv("HISTORY_PATH"); v != "" {
		cfg.Storage.HistoryPath = v
	}
	if v := os.Getenv("TICK_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Game.TickIntervalMs = ms
		}
	}
	if v := os.Getenv("PLAYER_USERNAME"); v != "" {
		cfg.Game.Username = v
	}
	if v := os.Getenv("CRON_AUTOSAVE"); v != "" {
		cfg.Schedule.AutosaveCron = v
	}
	if v := os.Getenv("CRON_SNAPSHOT"); v != "" {
		cfg.Schedule.SnapshotCron = v
	}

	// Defaults
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = "data/cookieforge.db"
	}
	if cfg.Storage.HistoryPath == "" {
		cfg.Storage.HistoryPath = "data/history.db"
	}
	if cfg.Game.TickIntervalMs == 0 {
		cfg.Game.TickIntervalMs = 100
	}
	if cfg.Game.Username == "" {
		cfg.Game.Username = "player"
	}
	if cfg.Schedule.AutosaveCron == "" {
		cfg.Schedule.AutosaveCron = "@every 30s"
	}
	if cfg.Schedule.SnapshotCron == "" {
		cfg.Schedule.SnapshotCron = "@every 5m"
	}

	return cfg, nil
}

// Validate checks that all required fields are usable.
func (c *Config) Validate() error {
	if c.Game.TickIntervalMs <= 0 {
		return fmt.Errorf("game.tick_interval_ms must be positive")
	}
	if c.Game.Username == "" {
		return fmt.Errorf("game.username is required")
	}
	return nil
}
