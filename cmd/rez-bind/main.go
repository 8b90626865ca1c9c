package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rohtau/rez/internal/cmd"
	"github.com/rohtau/rez/internal/config"
	"github.com/rohtau/rez/internal/logging"
	"github.com/rohtau/rez/internal/ui"
)

var version = "dev"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	ui.InitColors()

	log := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		LogFile: cfg.Logging.File,
		NoColor: cfg.Logging.Color == "never",
	})

	rootCmd := cmd.NewRootCmd(cfg, log, version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("discovery failed")
		os.Exit(1)
	}
}
