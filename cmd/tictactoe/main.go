package main

import (
	"context"
	"ctchen222/tictactoe/internal/config"
	"ctchen222/tictactoe/internal/console"
	"ctchen222/tictactoe/internal/logger"
	"ctchen222/tictactoe/internal/match"
	"ctchen222/tictactoe/internal/telemetry"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.Path())
	if err != nil {
		logger.Init(os.Stderr, slog.LevelInfo).Error("failed to load config", "error", err)
		return 1
	}

	// stdout carries the game, logs go to stderr.
	log := logger.Init(os.Stderr, cfg.SlogLevel())

	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		log.Error("failed to initialize telemetry", "error", err)
		return 1
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Error("Error shutting down telemetry", "error", err)
		}
	}()

	controller, err := match.NewController(log)
	if err != nil {
		log.Error("failed to create match controller", "error", err)
		return 1
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	if err := console.New(os.Stdin, os.Stdout, controller, rng).Run(ctx); err != nil {
		log.Error("console stopped", "error", err)
		return 1
	}
	return 0
}
