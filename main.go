package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carnav-core/internal/api"
	"carnav-core/internal/config"
	"carnav-core/internal/logger"
)

var version = "dev"

func main() {
	logger.Banner(version)

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.Error("Config", fmt.Sprintf("Failed to parse flags: %v", err))
		os.Exit(1)
	}

	srv := api.New()
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	logger.Server(addr)

	httpServer := &http.Server{Addr: addr, Handler: srv.Handler()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("Server", "Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server", fmt.Sprintf("Shutdown error: %v", err))
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server", fmt.Sprintf("Failed: %v", err))
		os.Exit(1)
	}
	logger.Info("Server", "Stopped")
}
