package config

import (
	"ctchen222/tictactoe/internal/validator"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is used when CONFIG_PATH is not set.
const DefaultPath = "config.yml"

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	HTTPPort  string    `yaml:"http-port" env:"HTTP_PORT" env-default:"8080" validate:"required,numeric"`
	Seed      uint64    `yaml:"seed" env:"SEED" env-default:"0"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Telemetry struct {
	Enabled     bool   `yaml:"enabled" env:"TELEMETRY_ENABLED" env-default:"false"`
	Endpoint    string `yaml:"endpoint" env:"TELEMETRY_ENDPOINT" env-default:"otel-collector:4317" validate:"required_if=Enabled true"`
	ServiceName string `yaml:"service-name" env:"TELEMETRY_SERVICE_NAME" env-default:"tic-tac-toe" validate:"required"`
}

// Path returns the config file location, honouring CONFIG_PATH.
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the YAML file at path with environment overrides. A missing file
// is not an error: defaults and environment variables are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	err := cleanenv.ReadConfig(path, config)
	if errors.Is(err, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := validator.GetValidator().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// SlogLevel maps LogLevel onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}
