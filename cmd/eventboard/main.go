package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/api/option"

	"eventboard/config"
	"eventboard/internal/adapters/google"
	httpdelivery "eventboard/internal/delivery/http"
	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/services"
)

const (
	refreshTimeout  = 2 * time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := google.NewClient(ctx, opts...)
	if err != nil {
		logger.Error("failed to init google client", "err", err)
		os.Exit(1)
	}

	board := services.NewBoardService(logger, client, client, client, services.BoardConfig{
		CalendarID:       cfg.CalendarID,
		PromoFolderID:    cfg.PromoFolderID,
		MessagesFolderID: cfg.MessagesFolder,
		ServicesSheetID:  cfg.ServicesSheetID,
		ServicesRange:    cfg.ServicesRange,
		Location:         cfg.Timezone,
	})

	refresher := services.NewRefresher(logger, board, refreshTimeout)
	if err := refresher.Start(ctx, cfg.RefreshSchedule); err != nil {
		logger.Error("failed to start refresher", "err", err)
		os.Exit(1)
	}
	defer refresher.Stop()

	controller := controllers.NewBoardController(logger, refresher, cfg.Timezone)
	mux := httpdelivery.NewRouter(controller)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			cancel()
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("signal received, shutting down", "signal", sig.String())
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
	logger.Info("server stopped")
}
