package cmd

import (
	"fmt"

	version "github.com/hashicorp/go-version"
	"github.com/rohtau/rez/internal/bindutil"
	"github.com/rohtau/rez/internal/config"
	"github.com/rohtau/rez/internal/executil"
	"github.com/rohtau/rez/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewLocateCmd creates the locate command
func NewLocateCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		explicitPath string
		versionArgs  []string
		lineIndex    int
		wordIndex    int
		versionRank  int
		rangeStr     string
	)

	cmd := &cobra.Command{
		Use:   "locate <name>",
		Short: "Find an executable and optionally extract its version",
		Long: `Resolve an executable by name through the system PATH, or validate an
explicit --path. With --version-args the tool is run and a structured
version is extracted from its output; --range then checks the result
against an allowed version range.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			exe, err := bindutil.FindExe(afero.NewOsFs(), name, explicitPath)
			if err != nil {
				ui.PrintError("%v", err)
				return err
			}
			ui.PrintKeyValue("Executable", exe)

			if len(versionArgs) == 0 {
				return nil
			}

			debug := cfg.DebugBindModules()
			runner := executil.NewOSRunner(log, debug)
			extractor := bindutil.NewExtractor(runner, log, debug)

			opts := bindutil.DefaultExtractOptions()
			opts.LineIndex = lineIndex
			opts.WordIndex = wordIndex
			opts.VersionRank = versionRank

			v, err := extractor.Extract(cmd.Context(), exe, versionArgs, opts)
			if err != nil {
				ui.PrintError("%v", err)
				return err
			}

			if rangeStr != "" {
				rng, err := version.NewConstraint(rangeStr)
				if err != nil {
					return fmt.Errorf("parse range %q: %w", rangeStr, err)
				}
				if err := bindutil.CheckVersion(v, rng); err != nil {
					ui.PrintError("%v", err)
					return err
				}
			}

			ui.PrintKeyValue("Version", v.String())
			ui.PrintSuccess("%s %s is usable", name, v)
			return nil
		},
	}

	cmd.Flags().StringVar(&explicitPath, "path", "", "explicit executable path instead of a PATH search")
	cmd.Flags().StringSliceVar(&versionArgs, "version-args", nil, "arguments that make the tool print its version, e.g. --version")
	cmd.Flags().IntVar(&lineIndex, "line", 0, "output line holding the version (negative counts from the end)")
	cmd.Flags().IntVar(&wordIndex, "word", -1, "word within the line holding the version (negative counts from the end)")
	cmd.Flags().IntVar(&versionRank, "rank", 3, "number of version tokens to keep")
	cmd.Flags().StringVar(&rangeStr, "range", "", `allowed version range, e.g. ">= 17.0, < 19.0"`)

	return cmd
}
