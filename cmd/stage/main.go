// Package main is the entry point for the scrollstage viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/morivert/scrollstage/internal/config"
	"github.com/morivert/scrollstage/internal/logger"
	"github.com/morivert/scrollstage/internal/stage"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Scrollstage ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	s, err := stage.New(cfg)
	if err != nil {
		logger.Error("failed to create stage", zap.Error(err))
		os.Exit(1)
	}
	defer s.Close()

	if err := s.Run(); err != nil {
		logger.Error("stage error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("stage closed normally")
}
