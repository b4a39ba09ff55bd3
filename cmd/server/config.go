package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the server configuration, loaded from an optional YAML
// file and overridden by environment variables.
type Config struct {
	Server ServerConfig `yaml:"server"`
	CORS   CORSConfig   `yaml:"cors"`
	Log    LogConfig    `yaml:"log"`

	// DefaultLocale is used when a request does not name one.
	DefaultLocale string `yaml:"default_locale" env:"WORDNUM_DEFAULT_LOCALE" env-default:"en"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"WORDNUM_SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"WORDNUM_SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"WORDNUM_SERVER_READ_TIMEOUT"     env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"WORDNUM_SERVER_WRITE_TIMEOUT"    env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"WORDNUM_SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"WORDNUM_SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"WORDNUM_CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods []string `yaml:"allowed_methods" env:"WORDNUM_CORS_ALLOWED_METHODS" env-default:"GET,POST,OPTIONS"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"WORDNUM_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"WORDNUM_LOG_FORMAT" env-default:"text"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadConfig reads configuration from path (if non-empty) and the
// environment. A missing default config file is not an error; an
// explicitly named one must exist.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return &cfg, nil
	}
	if _, err := os.Stat("wordnum.yaml"); err == nil {
		if err := cleanenv.ReadConfig("wordnum.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("read config wordnum.yaml: %w", err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	return &cfg, nil
}
