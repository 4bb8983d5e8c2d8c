package appconfig

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pterm/pterm"
)

type AppConfig struct {
	Workers  int    `env:"FLOP_WORKERS" env-default:"1" env-description:"goroutines classifying flops"`
	Samples  int    `env:"FLOP_SAMPLES" env-default:"0" env-description:"random flops to sample instead of enumerating all (0 = exhaustive)"`
	LogLevel string `env:"FLOP_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
}

// Load environment variables to AppConfig instance
func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the ranges of the configured values.
func (c *AppConfig) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Samples < 0 {
		return fmt.Errorf("samples must not be negative, got %d", c.Samples)
	}
	if _, err := c.PtermLogLevel(); err != nil {
		return err
	}
	return nil
}

// PtermLogLevel maps LogLevel to the pterm logger level.
func (c *AppConfig) PtermLogLevel() (pterm.LogLevel, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info", "":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	default:
		return pterm.LogLevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}

// Usage describes the environment variables read by LoadAppConfig.
func Usage() string {
	desc, err := cleanenv.GetDescription(&AppConfig{}, nil)
	if err != nil {
		return ""
	}
	return desc
}
