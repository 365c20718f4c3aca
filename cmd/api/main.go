// Package main is the entry point for the fleet records API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mapler/fleet-records/internal/config"
	"github.com/mapler/fleet-records/internal/handler"
	"github.com/mapler/fleet-records/internal/middleware"
	"github.com/mapler/fleet-records/internal/repo"
	"github.com/mapler/fleet-records/internal/service"
	"github.com/mapler/fleet-records/internal/store"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog JSON handler writes machine-readable output suitable for log
	// aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Store ------------------------------------------------------------
	// An unopenable database file degrades to an in-memory store rather than
	// refusing to start: records then live only for the process lifetime.
	var st store.Store
	sqlStore, err := store.OpenSQLite(cfg.DataPath)
	if err != nil {
		logger.Warn("cannot open data file, falling back to in-memory store",
			"path", cfg.DataPath, "error", err)
		st = store.NewMemory()
	} else {
		st = sqlStore
		logger.Info("data file opened", "path", cfg.DataPath)
	}

	// --- Repository and services -----------------------------------------
	// Load migrates whatever is in the store into the current schema; it
	// never fails, so startup is never blocked by bad data.
	fleet := repo.New(st, logger)
	fleet.Load(context.Background())

	// The damage-description summarizer is an optional external collaborator;
	// none is wired here, so the damage-summary endpoint reports unavailable.
	trailerSvc := service.NewTrailerService(fleet, nil)
	refuelingSvc := service.NewRefuelingService(fleet)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order:
	// RequestID → RealIP → SlogLogger → Recoverer → CORS → MaxBodySize.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Mount("/", handler.NewServer(trailerSvc, refuelingSvc).Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// Write timeout is generous because photo-laden trailer records are big.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stopCh
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
