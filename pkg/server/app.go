package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	xhttp "FinScreen/pkg/http"
	applogger "FinScreen/pkg/logger"
)

// ShutdownHook runs once after the HTTP server has stopped.
type ShutdownHook struct {
	Name string
	Fn   func(ctx context.Context) error
}

// App encapsulates the serving lifecycle.
type App struct {
	logger          *applogger.Logger
	httpServer      *xhttp.Server
	shutdownTimeout time.Duration
	hooks           []ShutdownHook
}

type Option func(*App)

func WithShutdownTimeout(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.shutdownTimeout = d
		}
	}
}

// WithShutdownHook appends a hook. Hooks run in registration order.
func WithShutdownHook(name string, fn func(ctx context.Context) error) Option {
	return func(a *App) { a.hooks = append(a.hooks, ShutdownHook{Name: name, Fn: fn}) }
}

func New(logger *applogger.Logger, httpServer *xhttp.Server, opts ...Option) *App {
	a := &App{
		logger:          logger,
		httpServer:      httpServer,
		shutdownTimeout: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run starts the HTTP server and blocks until ctx is done, SIGINT or
// SIGTERM arrives, or the listener fails.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case runErr = <-a.httpServer.Errors():
		a.logger.Error("http server failed", applogger.Error(runErr))
	}

	a.shutdown()
	return runErr
}

func (a *App) shutdown() {
	a.logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	for _, h := range a.hooks {
		if err := h.Fn(ctx); err != nil {
			a.logger.Warn("shutdown hook failed", applogger.String("hook", h.Name), applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
}
