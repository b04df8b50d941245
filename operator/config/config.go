package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/robfig/cron/v3"
)

const EnvPrefix = "LSOP_"

type Config struct {
	// Admin is the engine admin address the maintenance messages are signed for.
	Admin    string      `koanf:"admin"`
	Schedule string      `koanf:"schedule"`
	Retry    RetryConfig `koanf:"retry"`
	Listen   string      `koanf:"listen"`
	LogLevel string      `koanf:"log_level"`
}

type RetryConfig struct {
	Attempts int           `koanf:"attempts"`
	Delay    time.Duration `koanf:"delay"`
}

func DefaultConfig() Config {
	return Config{
		Schedule: "*/2 * * * *",
		Retry: RetryConfig{
			Attempts: 3,
			Delay:    10 * time.Second,
		},
		Listen:   ":8080",
		LogLevel: "info",
	}
}

func (c Config) Validate() error {
	if _, err := sdk.AccAddressFromBech32(c.Admin); err != nil {
		return fmt.Errorf("invalid admin address %q: %w", c.Admin, err)
	}
	if _, err := cron.ParseStandard(c.Schedule); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", c.Schedule, err)
	}
	if c.Retry.Attempts < 1 {
		return errors.New("retry.attempts must be at least 1")
	}
	if c.Retry.Delay < 0 {
		return errors.New("retry.delay must not be negative")
	}
	if c.Listen == "" {
		return errors.New("listen address must be set")
	}
	return nil
}

// Load reads defaults, then the yaml provider, then LSOP_ environment overrides.
// Nested keys use a double underscore, e.g. LSOP_RETRY__ATTEMPTS.
func Load(provider koanf.Provider) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("error loading defaults: %w", err)
	}
	if provider != nil {
		if err := k.Load(provider, yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("error loading config: %w", err)
		}
	}
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "__", ".", -1)
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("error loading env: %w", err)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return Config{}, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return config, config.Validate()
}

// FileProvider returns the config file named by LSOP_CONFIG_PATH, or config.yaml.
func FileProvider() koanf.Provider {
	path := os.Getenv(EnvPrefix + "CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	return file.Provider(path)
}
