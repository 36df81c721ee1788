/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/suparena/statuslogs/config"
	"github.com/suparena/statuslogs/datastore"
	"github.com/suparena/statuslogs/handlers"
	"github.com/suparena/statuslogs/httpapi"
)

// App owns the HTTP server lifecycle for the status log handlers.
type App struct {
	cfg    config.Config
	logger *slog.Logger
	server *http.Server
	ready  atomic.Bool
}

func New(cfg config.Config, store datastore.StatusLogStore, logger *slog.Logger) (*App, error) {
	if cfg.HTTPAddr == "" {
		return nil, errors.New("new app: empty HTTPAddr")
	}
	if store == nil {
		return nil, errors.New("new app: nil store")
	}
	if logger == nil {
		return nil, errors.New("new app: nil logger")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new app config: %w", err)
	}

	a := &App{
		cfg:    cfg,
		logger: logger,
	}

	h := handlers.New(store, handlers.Config{TableName: cfg.TableName}, handlers.WithLogger(logger))

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("/readyz", a.handleReadyz)
	mux.Handle("/", httpapi.NewRouter(h, logger))
	a.server = &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: requestLoggingMiddleware(logger)(mux),
	}

	return a, nil
}

// Handler returns the root HTTP handler, middleware included.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

func (a *App) Start() error {
	a.ready.Store(true)
	a.logger.Info("status log server listening",
		slog.String("addr", a.cfg.HTTPAddr),
		slog.String("table", a.cfg.TableName),
	)

	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	a.ready.Store(false)
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	if ctx == nil {
		return errors.New("shutdown: nil context")
	}
	a.ready.Store(false)

	err := a.server.Shutdown(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		a.logger.Warn("graceful shutdown timed out; forcing connection close")
		if closeErr := a.server.Close(); closeErr != nil {
			return fmt.Errorf("shutdown timeout and forced close failed: %w", errors.Join(err, closeErr))
		}
		return nil
	}
	return err
}

func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writePlain(w, http.StatusOK, "ok")
}

func (a *App) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !a.ready.Load() {
		writePlain(w, http.StatusServiceUnavailable, "not ready")
		return
	}
	writePlain(w, http.StatusOK, "ready")
}

func writePlain(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
