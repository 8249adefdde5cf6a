// frustumlab is an interactive editor for frustum parameters with a live
// preview, validation report and YAML export.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/frustum/internal/config"
	"github.com/Faultbox/frustum/internal/logger"
)

func main() {
	runtime.LockOSThread()

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

	opts, err := cfg.Shape.Options()
	if err != nil {
		logger.Fatal("invalid shape", zap.Error(err))
	}

	app, err := NewApp(cfg, opts)
	if err != nil {
		logger.Fatal("failed to start", zap.Error(err))
	}
	defer app.Close()

	app.Run()
}
