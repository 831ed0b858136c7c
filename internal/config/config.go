package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rpggio/checkmaster/internal/persistence"
	"gopkg.in/yaml.v3"
)

// Transport modes.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	Store     StoreConfig     `yaml:"store"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"`
}

type StoreConfig struct {
	Backend string `yaml:"backend"`
	// Path is the SQLite file or the BadgerDB directory.
	Path string `yaml:"path"`
	Key  string `yaml:"key"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// Path optionally redirects logs to a size-capped file.
	Path string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: TransportStdio,
		},
		Store: StoreConfig{
			Backend: BackendSQLite,
			Path:    "checkmaster.db",
			Key:     persistence.DefaultKey,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from an optional YAML file and environment
// variables. A non-empty path takes precedence over CHECKMASTER_CONFIG_PATH.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CHECKMASTER_CONFIG_PATH")
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("CHECKMASTER_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("CHECKMASTER_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CHECKMASTER_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("CHECKMASTER_TRANSPORT"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if backend := os.Getenv("CHECKMASTER_STORE_BACKEND"); backend != "" {
		cfg.Store.Backend = backend
	}
	if storePath := os.Getenv("CHECKMASTER_STORE_PATH"); storePath != "" {
		cfg.Store.Path = storePath
	}
	if key := os.Getenv("CHECKMASTER_STORE_KEY"); key != "" {
		cfg.Store.Key = key
	}
	if level := os.Getenv("CHECKMASTER_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("CHECKMASTER_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown enum values and unusable settings.
func (c Config) Validate() error {
	switch c.Transport.Mode {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("invalid transport mode %q (want %s or %s)", c.Transport.Mode, TransportStdio, TransportHTTP)
	}
	switch c.Store.Backend {
	case BackendSQLite, BackendBadger:
	default:
		return fmt.Errorf("invalid store backend %q (want %s or %s)", c.Store.Backend, BackendSQLite, BackendBadger)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store path is required")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
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
