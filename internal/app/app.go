package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/dotlabel/internal/config"
	"github.com/vk/dotlabel/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	dialect *config.Dialect
}

// NewApp is the constructor for the main application. Reports such as dry
// run diffs go to outW, logs go to logW. The dialect is read through loader
// when the configuration names a dialect file; loader may be nil otherwise.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	dialect := config.DefaultDialect()
	if cfg.DialectPath != "" {
		if loader == nil {
			return nil, fmt.Errorf("dialect file %s given but no loader configured", cfg.DialectPath)
		}
		loaded, err := loader.Load(ctx, cfg.DialectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load dialect: %w", err)
		}
		dialect = loaded
	}
	if err := dialect.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Dialect ready.", "dialect", dialect.Name, "header_lines", dialect.HeaderLines, "marker", dialect.Marker)

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		dialect: dialect,
	}, nil
}

// Dialect returns the dialect the app processes files with.
func (a *App) Dialect() *config.Dialect {
	return a.dialect
}
