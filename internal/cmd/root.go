package cmd

import (
	"github.com/rohtau/rez/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "rez-bind",
		Short:        "Discover installed software for package binding",
		Long:         `Discovery front end for bind modules: locates executables, extracts tool versions, and enumerates folder-based version installs.`,
		Version:      version,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewScanCmd(cfg, log))
	cmd.AddCommand(NewLocateCmd(cfg, log))
	cmd.AddCommand(NewVariantsCmd(cfg, log))

	return cmd
}
