// Package main is the entry point for the Raging Sea viewer with its
// debug panel.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/raging-sea/internal/app"
	"github.com/Faultbox/raging-sea/internal/config"
	"github.com/Faultbox/raging-sea/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.FileConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Raging Sea ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	a.Run()

	logger.Info("viewer closed normally")
}
