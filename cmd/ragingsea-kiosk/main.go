// Package main is the entry point for the panel-less Raging Sea viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/raging-sea/internal/config"
	"github.com/Faultbox/raging-sea/internal/kiosk"
	"github.com/Faultbox/raging-sea/internal/logger"
)

func main() {
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

	logger.Info("=== Raging Sea (kiosk) ===")

	k, err := kiosk.New(cfg)
	if err != nil {
		logger.Error("failed to create kiosk", zap.Error(err))
		os.Exit(1)
	}
	defer k.Close()

	if err := k.Run(); err != nil {
		logger.Error("kiosk error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("kiosk closed normally")
}
