package main

import (
	"context"
	"ctchen222/tictactoe/internal/api/service"
	"ctchen222/tictactoe/internal/config"
	"ctchen222/tictactoe/internal/logger"
	"ctchen222/tictactoe/internal/match"
	"ctchen222/tictactoe/internal/server"
	"ctchen222/tictactoe/internal/telemetry"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	cfg, err := config.Load(config.Path())
	if err != nil {
		logger.Init(os.Stdout, slog.LevelInfo).Error("failed to load config", "error", err)
		return 1
	}

	log := logger.Init(os.Stdout, cfg.SlogLevel())

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		log.Error("failed to initialize telemetry", "error", err)
		return 1
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Error("Error shutting down telemetry", "error", err)
		}
	}()

	gin.SetMode(gin.ReleaseMode)

	controller, err := match.NewController(log)
	if err != nil {
		log.Error("failed to create match controller", "error", err)
		return 1
	}
	moveService := service.NewMoveService(controller, cfg.Seed)

	// Create the Gin-based server
	srv, err := server.NewServer(moveService)
	if err != nil {
		log.Error("failed to create server", "error", err)
		return 1
	}

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	addr := ":" + cfg.HTTPPort
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Engine(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("http server started", "http.addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	exitCode := 0
	select {
	case <-stop:
	case err := <-serveErr:
		log.Error("ListenAndServe", "error", err)
		exitCode = 1
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		return 1
	}

	log.Info("Server exiting")
	return exitCode
}
