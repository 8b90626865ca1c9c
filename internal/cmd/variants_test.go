package cmd

import (
	"bytes"
	"testing"

	"github.com/rohtau/rez/internal/config"
	"github.com/rohtau/rez/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantsCmd(t *testing.T) {
	t.Run("keeps tags matching implicits", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Bind.ImplicitPackages = []string{"~platform==linux", "~arch==x86_64"}

		var out bytes.Buffer
		cmd := NewRootCmd(cfg, logging.Nop(), "test")
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"variants", "platform-linux", "os-linux-ubuntu-22.04", "arch-x86_64"})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "platform-linux")
		assert.Contains(t, out.String(), "arch-x86_64")
		assert.NotContains(t, out.String(), "os-linux-ubuntu-22.04")
	})

	t.Run("no implicits drops everything", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewRootCmd(&config.Config{}, logging.Nop(), "test")
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"variants", "platform-linux"})

		require.NoError(t, cmd.Execute())
		assert.NotContains(t, out.String(), "platform-linux")
	})
}
