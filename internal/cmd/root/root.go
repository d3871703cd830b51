// Package root provides the root command for the cnmap CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/cn-mapblock/internal/cmd/completion"
	"github.com/open-cli-collective/cn-mapblock/internal/cmd/configcmd"
	initcmd "github.com/open-cli-collective/cn-mapblock/internal/cmd/init"
	"github.com/open-cli-collective/cn-mapblock/internal/cmd/inspect"
	"github.com/open-cli-collective/cn-mapblock/internal/cmd/render"
	"github.com/open-cli-collective/cn-mapblock/internal/cmd/scan"
	"github.com/open-cli-collective/cn-mapblock/internal/version"
)

// NewCmdRoot creates the root command for cnmap.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cnmap",
		Short: "Render [cn-mapblock] map shortcodes",
		Long: `cnmap expands the Connections Business Directory [cn-mapblock]
shortcode, with its nested [maplayer] and [mapmarker] shortcodes, into
Leaflet maps.

Documents can be read from files, standard input, or WordPress posts and
pages through the REST API.

Get started by running: cnmap init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/cnmap/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("cnmap version " + version.String() + "\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(render.NewCmdRender())
	cmd.AddCommand(inspect.NewCmdInspect())
	cmd.AddCommand(scan.NewCmdScan())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
