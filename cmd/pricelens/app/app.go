// Package app provides the application context and dependency management
// for the pricelens CLI. It centralizes configuration, logging, and the
// reconciliation pipeline behind a single App value shared by all commands.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/pricelens/pricelens"
	"github.com/pricelens/pricelens/pkg/dedupe"
)

// App represents the pricelens application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Pipeline instance (lazy-initialized, singleton)
	mu       sync.RWMutex
	pipeline *pricelens.Pipeline
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Pipeline returns the reconciliation pipeline, creating it lazily if
// needed. This is thread-safe and ensures only one instance is created.
func (a *App) Pipeline() (*pricelens.Pipeline, error) {
	a.mu.RLock()
	if a.pipeline != nil {
		p := a.pipeline
		a.mu.RUnlock()
		return p, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pipeline != nil {
		return a.pipeline, nil
	}

	p, err := pricelens.New(a.buildPipelineOptions()...)
	if err != nil {
		return nil, err
	}

	a.pipeline = p
	return p, nil
}

// buildPipelineOptions constructs pipeline options from the app configuration.
func (a *App) buildPipelineOptions() []pricelens.Option {
	opts := []pricelens.Option{
		pricelens.WithThreshold(a.config.Threshold),
		pricelens.WithDedupePolicy(dedupe.ParsePolicy(a.config.DedupePolicy)),
	}

	if a.config.UnitNormalization {
		opts = append(opts, pricelens.WithUnitNormalization())
	}
	if a.config.CacheTTL > 0 {
		opts = append(opts, pricelens.WithCache(a.config.CacheTTL))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
