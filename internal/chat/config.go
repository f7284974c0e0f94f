package chat

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	StateDir     string `yaml:"state_dir"`
	DelayMinMs   int    `yaml:"delay_min_ms"`
	DelayMaxMs   int    `yaml:"delay_max_ms"`
	HistoryLimit int    `yaml:"history_limit"`
	UserName     string `yaml:"user_name"`
}

func DefaultConfig() Config {
	return Config{
		StateDir:     "",
		DelayMinMs:   1000,
		DelayMaxMs:   2000,
		HistoryLimit: 50,
		UserName:     "You",
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DelayMinMs <= 0 {
		cfg.DelayMinMs = 1000
	}
	if cfg.DelayMaxMs <= cfg.DelayMinMs {
		cfg.DelayMaxMs = cfg.DelayMinMs + 1000
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 50
	}
	if cfg.UserName == "" {
		cfg.UserName = "You"
	}
	return cfg, nil
}

func SaveConfig(cfg Config, path string) error {
	if path == "" {
		return errors.New("no path provided for config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "docchat", "config.yml")
}
