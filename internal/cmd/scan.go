package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/rohtau/rez/internal/bindutil"
	"github.com/rohtau/rez/internal/config"
	"github.com/rohtau/rez/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command
func NewScanCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "scan <app>",
		Short: "List folder-based version installs of an app",
		Long: `List the version folders installed under <root>/<app>, e.g.
/opt/houdini/hfs17.5.626 and /opt/houdini/hfs18.0.312. Validating which
folders actually hold usable installs is up to the bind module; scan
shows every candidate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := args[0]

			// --root left unset means "absent", which is different from
			// --root="" for precedence purposes.
			var rootArg *string
			if cmd.Flags().Changed("root") {
				rootArg = &root
			}

			if !bindutil.UseFolderVersions(rootArg, cfg) {
				ui.PrintWarning("folder-based versions are not enabled; pass --root or set bind.use_folder_versions")
				return nil
			}

			resolved := bindutil.FolderVersionsRoot(rootArg, cfg)
			log.Debug().Str("app", app).Str("root", resolved).Msg("scanning install root")

			folders, err := bindutil.ScanAppFolders(afero.NewOsFs(), app, resolved, nil)
			if err != nil {
				ui.PrintError("%v", err)
				return err
			}

			if len(folders) == 0 {
				ui.PrintInfo("no version folders under %s", filepath.Join(resolved, app))
				return nil
			}

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"Version Folder", "Path"}),
				tablewriter.WithAlignment(tw.MakeAlign(2, tw.AlignLeft)),
				tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
			)
			for _, folder := range folders {
				table.Append(filepath.Base(folder), folder)
			}
			table.Render()

			fmt.Fprintf(cmd.OutOrStdout(), "%d install(s) of %s\n", len(folders), app)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "install root containing <root>/<app>/<version> folders")

	return cmd
}
