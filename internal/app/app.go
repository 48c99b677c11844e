package app

import (
	"io"
	"log/slog"

	"github.com/Mosheur-Rahman/gotseb/internal/tseb"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *tseb.Registry
	iface    *tseb.Interface
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry.
// Results go to outW; logs go to logW. The variadic models are the model
// runner modules the embedding application links in.
func NewApp(outW, logW io.Writer, appConfig *Config, models ...tseb.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	registry := tseb.NewRegistry()
	for _, model := range models {
		model.Register(registry)
	}
	logger.Debug("Model modules registered.", "count", len(models), "names", registry.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		registry: registry,
		iface:    tseb.New(registry),
	}
}

// Interface returns the application's configuration interface. This is
// primarily for testing.
func (a *App) Interface() *tseb.Interface {
	return a.iface
}
