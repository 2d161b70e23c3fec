// Package main is the entry point for the directional lighting demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/dirlight/internal/config"
	"github.com/Faultbox/dirlight/internal/demo"
	"github.com/Faultbox/dirlight/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Directional Lighting ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	app, err := demo.New(cfg)
	if err != nil {
		logger.Error("failed to start demo", zap.Error(err))
		return 1
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		logger.Error("demo error", zap.Error(err))
		return 1
	}

	logger.Info("demo closed normally")
	return 0
}
