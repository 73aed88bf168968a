package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Clark-Hu/film-catalog/internal/catalog"
	"github.com/Clark-Hu/film-catalog/internal/config"
	"github.com/Clark-Hu/film-catalog/internal/filmsapi"
	httpserver "github.com/Clark-Hu/film-catalog/internal/http"
	"github.com/Clark-Hu/film-catalog/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	slog.SetDefault(logger)
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		logger.Warn("ignoring unreadable .env file", slog.String("error", envErr.Error()))
	}

	client, err := filmsapi.NewHTTPClient(filmsapi.Options{
		URL:     cfg.FilmsAPIURL,
		Timeout: time.Duration(cfg.FilmsAPITimeoutSecs) * time.Second,
		Logger:  logger,
	})
	if err != nil {
		log.Fatalf("init films api client: %v", err)
	}

	svc := catalog.NewService(client, catalog.NewMapper(cfg.StrictMagnitudes, logger), logger)
	server := httpserver.New(cfg, svc, logger)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			serverErrCh <- err
			return
		}
		serverErrCh <- nil
	}()

	select {
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, context.Canceled) {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("graceful shutdown error", slog.String("error", err.Error()))
	}
}
