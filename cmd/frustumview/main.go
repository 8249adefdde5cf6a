// Package main is the entry point for the interactive frustum preview.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/frustum/internal/config"
	"github.com/Faultbox/frustum/internal/logger"
	"github.com/Faultbox/frustum/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Frustum Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	opts, err := cfg.Shape.Options()
	if err != nil {
		logger.Fatal("invalid shape", zap.Error(err))
	}

	v, err := viewer.New(cfg, opts)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return
	}

	logger.Info("viewer closed normally")
}
