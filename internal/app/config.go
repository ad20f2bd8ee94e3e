package app

import (
	"errors"
	"strings"
)

// DefaultExtension selects the files processed when GraphPath is a directory.
const DefaultExtension = ".dot"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GraphPath   string // file or directory of graph files
	DialectPath string // optional HCL dialect file
	Extension   string

	DryRun bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GraphPath == "" {
		return nil, errors.New("GraphPath is a required configuration field and cannot be empty")
	}

	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}
	if !strings.HasPrefix(cfg.Extension, ".") {
		cfg.Extension = "." + cfg.Extension
	}

	return &cfg, nil
}
