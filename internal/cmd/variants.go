package cmd

import (
	"fmt"

	"github.com/rohtau/rez/internal/bindutil"
	"github.com/rohtau/rez/internal/config"
	"github.com/rohtau/rez/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewVariantsCmd creates the variants command
func NewVariantsCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variants <tag>...",
		Short: "Filter system-variant tags by the configured implicit packages",
		Long: `Show which of the given system-variant tags, e.g. platform-linux or
arch-x86_64, would survive the implicit-package filter. A tag is kept
when its family matches an implicit entry such as "~platform==linux".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			implicits := cfg.ImplicitPackages()
			log.Debug().Strs("implicits", implicits).Strs("tags", args).Msg("filtering variant tags")

			kept := bindutil.FilterImplicitVariants(implicits, args)
			if len(kept) == 0 {
				ui.PrintWarning("no tags match the configured implicit packages")
				return nil
			}

			for _, tag := range kept {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}

	return cmd
}
