package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ondrasimku/upload-proxy-go/internal/config"
	httphandler "github.com/ondrasimku/upload-proxy-go/internal/http"
	"github.com/ondrasimku/upload-proxy-go/internal/log"
	"github.com/ondrasimku/upload-proxy-go/internal/storage/catbox"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := log.NewLogger(cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	uploader := catbox.NewClient(cfg.Upstream.Endpoint, cfg.Upstream.UserAgent, &http.Client{
		Timeout: cfg.Upstream.Timeout,
	})

	router := httphandler.NewRouter(uploader, cfg, logger)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting upload proxy",
			"addr", cfg.HTTPAddr,
			"upstream", cfg.Upstream.Endpoint,
			"metrics", cfg.Metrics.Enabled,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("Server exited")
}
