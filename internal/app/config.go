package app

import (
	"errors"

	"github.com/Mosheur-Rahman/gotseb/internal/tseb"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPath is the TSEB configuration file to translate.
	ConfigPath string
	// Mode selects the gridded-image or point-series schema branch.
	Mode tseb.Mode
	// CheckOnly resolves and prints the parameter mapping without
	// dispatching a model run.
	CheckOnly bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
