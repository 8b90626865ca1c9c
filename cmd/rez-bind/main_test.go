package main

import (
	"context"
	"testing"

	"github.com/rohtau/rez/internal/cmd"
	"github.com/rohtau/rez/internal/config"
	"github.com/rohtau/rez/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoad(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err, "Configuration should load without error")
	assert.NotNil(t, cfg, "Configuration should not be nil")
}

func TestCommandExecution(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err, "Configuration should load without error")

	log := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		LogFile: cfg.Logging.File,
		NoColor: true,
	})
	require.NotNil(t, log)

	rootCmd := cmd.NewRootCmd(cfg, log, version)
	err = rootCmd.ExecuteContext(context.Background())
	assert.NoError(t, err, "Bare invocation should print help without error")
}
