package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/tocgen/internal/api"
	"github.com/dgallion1/tocgen/internal/config"
	"github.com/dgallion1/tocgen/internal/pipeline"
	"github.com/dgallion1/tocgen/internal/version"
)

func main() {
	cfg := config.Load()
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	book, err := config.LoadBook(cfg.BookPath)
	if err != nil {
		log.Error("load book", "path", cfg.BookPath, "error", err)
		os.Exit(1)
	}

	p := pipeline.New(book, nil, log, pipeline.Options{
		LoadConcurrency: cfg.LoadConcurrency,
		OutputDir:       cfg.OutputDir,
	})

	// Surface configuration problems at startup rather than on first request.
	if err := p.Validate(); err != nil {
		log.Error("invalid book", "path", cfg.BookPath, "error", err)
		os.Exit(1)
	}

	srv := api.NewServer(p, log, cfg.APIKey)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting tocgen", "port", cfg.Port, "book", cfg.BookPath, "version", version.Resolved())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
