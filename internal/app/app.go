// Package app provides application-level orchestration and dependency
// injection. It wires the spectrum source, the renderer registry and the
// Fyne UI together and manages the application lifecycle.
package app

import (
	"fmt"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/tejashwikalptaru/soundscape/internal/adapter/source/synthetic"
	"github.com/tejashwikalptaru/soundscape/internal/adapter/source/wsclient"
	fyneui "github.com/tejashwikalptaru/soundscape/internal/adapter/ui/fyne"
	"github.com/tejashwikalptaru/soundscape/internal/domain"
	"github.com/tejashwikalptaru/soundscape/internal/logger"
	"github.com/tejashwikalptaru/soundscape/internal/ports"
	"github.com/tejashwikalptaru/soundscape/internal/rng"
	"github.com/tejashwikalptaru/soundscape/internal/visualizer"
)

// Source kinds accepted by Config.Source.
const (
	SourceSynthetic = "synthetic"
	SourceWebSocket = "websocket"
)

// Config holds application configuration.
type Config struct {
	// AppID is the unique application identifier.
	AppID string

	// Style is the initial visualizer style.
	Style visualizer.Style

	// Quality selects the rendering quality tier.
	Quality domain.QualityTier

	// BarCount is the requested number of spectrum buckets.
	BarCount int

	// Overlay renders in the reduced overlay mode.
	Overlay bool

	// Seed drives all randomized rendering effects.
	Seed uint64

	// Source selects the spectrum source kind.
	Source string

	// Addr is the WebSocket endpoint for the websocket source.
	Addr string

	// Bins is the magnitude array length of the synthetic source.
	Bins int

	// FPS is the synthetic source frame rate.
	FPS int

	// LogLevel controls logging verbosity.
	LogLevel slog.Level

	// TestFyneApp allows injecting a test Fyne app (nil for production).
	TestFyneApp fyne.App
}

// DefaultConfig returns the default application configuration.
func DefaultConfig() Config {
	loggerCfg := logger.DefaultConfig()
	return Config{
		AppID:    "com.soundscape.app",
		Style:    visualizer.StyleBars,
		Quality:  domain.QualityMedium,
		BarCount: domain.DefaultRenderParams().BarCount,
		Seed:     1,
		Source:   SourceSynthetic,
		Addr:     "ws://localhost:8080/spectrum",
		Bins:     128,
		FPS:      30,
		LogLevel: loggerCfg.Level,
	}
}

// Application is the root application structure that holds all
// dependencies, wired by constructor-based injection.
type Application struct {
	logger  *slog.Logger
	fyneApp fyne.App

	registry *visualizer.Registry
	opts     visualizer.Options
	overlay  bool
	style    visualizer.Style

	source     ports.SpectrumSource
	mainWindow *fyneui.MainWindow

	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewApplication creates a new application with all dependencies wired.
func NewApplication(config Config) (*Application, error) {
	app := &Application{
		registry: visualizer.NewRegistry(),
		style:    config.Style,
		overlay:  config.Overlay,
	}

	if config.TestFyneApp != nil {
		app.fyneApp = config.TestFyneApp
	} else {
		app.fyneApp = fyneapp.NewWithID(config.AppID)
	}

	app.logger = logger.NewLogger(logger.Config{
		Level:  config.LogLevel,
		Format: "text",
	})
	app.logger.Info("initializing application",
		slog.String("style", string(config.Style)),
		slog.String("quality", config.Quality.String()),
		slog.String("source", config.Source))

	params := domain.DefaultRenderParams()
	if config.BarCount > 0 {
		params.BarCount = config.BarCount
	}
	app.opts = visualizer.Options{
		Logger:  app.logger,
		Rand:    rng.New(config.Seed),
		Quality: config.Quality,
		Params:  params,
	}

	renderer, err := app.newRenderer(app.style)
	if err != nil {
		return nil, err
	}

	widget := fyneui.NewVisualizerWidget(renderer)
	app.mainWindow = fyneui.NewMainWindow(app.fyneApp, app.windowTitle(), widget)
	app.mainWindow.SetOnCycleStyle(app.cycleStyle)

	switch config.Source {
	case SourceSynthetic, "":
		app.source = synthetic.New(app.logger, config.Bins, config.FPS, config.Seed)
	case SourceWebSocket:
		app.source = wsclient.New(app.logger, config.Addr)
	default:
		return nil, fmt.Errorf("unknown spectrum source %q", config.Source)
	}

	return app, nil
}

// Run starts the spectrum source and the UI event loop. It blocks until
// the window is closed.
func (a *Application) Run() error {
	if err := a.source.Start(); err != nil {
		return fmt.Errorf("failed to start spectrum source: %w", err)
	}

	a.wg.Add(1)
	go a.consumeFrames()

	a.logger.Info("soundscape started")
	a.mainWindow.ShowAndRun()
	return nil
}

// Shutdown gracefully shuts down the application. Safe to call multiple
// times; typically deferred in main.
func (a *Application) Shutdown() {
	a.stopOnce.Do(func() {
		a.logger.Info("shutting down application")

		if err := a.source.Close(); err != nil {
			a.logger.Warn("failed to close spectrum source", slog.Any("error", err))
		}
		a.wg.Wait()

		a.mainWindow.Close()
		a.logger.Info("application shutdown complete")
	})
}

// consumeFrames forwards source frames to the widget until the source
// channel closes. UI updates are marshalled onto the Fyne thread.
func (a *Application) consumeFrames() {
	defer a.wg.Done()

	widget := a.mainWindow.Widget()
	for frame := range a.source.Frames() {
		f := frame
		fyne.Do(func() {
			widget.UpdateSpectrum(f)
		})
	}
	a.logger.Debug("spectrum source drained")
}

// cycleStyle switches the widget to the next registered style.
func (a *Application) cycleStyle() {
	next := a.registry.Next(a.style)
	renderer, err := a.newRenderer(next)
	if err != nil {
		a.logger.Warn("failed to switch style", slog.Any("error", err))
		return
	}

	a.style = next
	a.mainWindow.Widget().SetRenderer(renderer)
	a.mainWindow.SetTitle(a.windowTitle())
	a.logger.Info("style switched", slog.String("style", string(next)))
}

func (a *Application) newRenderer(style visualizer.Style) (ports.Renderer, error) {
	renderer, err := a.registry.New(style, a.opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	renderer.SetOverlay(a.overlay)
	return renderer, nil
}

func (a *Application) windowTitle() string {
	return fmt.Sprintf("Soundscape - %s", a.style)
}
