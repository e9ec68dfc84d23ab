package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Auth   AuthConfig   `yaml:"auth"`
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	View   ViewConfig   `yaml:"view"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Mode string `yaml:"mode"` // "stdio" or "http"
}

type AuthConfig struct {
	Enabled bool `yaml:"enabled"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type ViewConfig struct {
	InitialWindow int           `yaml:"initial_window"`
	WindowStep    int           `yaml:"window_step"`
	Debounce      time.Duration `yaml:"debounce"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
			Mode: "http",
		},
		DB: DBConfig{
			Path: "deckview.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		View: ViewConfig{
			InitialWindow: 9,
			WindowStep:    9,
			Debounce:      300 * time.Millisecond,
		},
	}

	if path := os.Getenv("DECKVIEW_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("DECKVIEW_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("DECKVIEW_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DECKVIEW_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("DECKVIEW_SERVER_MODE"); mode != "" {
		cfg.Server.Mode = mode
	}
	if enabled := os.Getenv("DECKVIEW_AUTH_ENABLED"); enabled != "" {
		cfg.Auth.Enabled = enabled == "true" || enabled == "1"
	}
	if dbPath := os.Getenv("DECKVIEW_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("DECKVIEW_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
