// Package render provides the render command.
package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/cn-mapblock/api"
	"github.com/open-cli-collective/cn-mapblock/internal/cmd/cmdutil"
	"github.com/open-cli-collective/cn-mapblock/internal/config"
	"github.com/open-cli-collective/cn-mapblock/internal/view"
	"github.com/open-cli-collective/cn-mapblock/pkg/leaflet"
	"github.com/open-cli-collective/cn-mapblock/pkg/mapblock"
)

type renderOptions struct {
	source      cmdutil.Source
	standalone  bool
	popupFormat string
	browserKey  string
	out         string
	configPath  string
	noColor     bool
	stdout      io.Writer // For testing; defaults to os.Stdout
	stderr      io.Writer // For testing; defaults to os.Stderr
}

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Expand [cn-mapblock] shortcodes into map markup",
		Long: `Expand every [cn-mapblock] shortcode in a document into a Leaflet map
container and the script that builds it. Everything else in the document
is left untouched.

The document is read from a file, standard input, or a WordPress post or
page. Markers with invalid coordinates are dropped and reported on stderr.`,
		Example: `  # Render a local file
  cnmap render post.html

  # Render from stdin
  echo '[cn-mapblock latitude="40" longitude="-75"][/cn-mapblock]' | cnmap render

  # Render a WordPress post as a complete page
  cnmap render --post 42 --standalone --out map.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.source.File = args[0]
			}
			opts.configPath = cmdutil.ConfigPath(cmd)
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runRender(cmd.Context(), opts, nil)
		},
	}

	cmd.Flags().IntVar(&opts.source.PostID, "post", 0, "Render the WordPress post with this ID")
	cmd.Flags().IntVar(&opts.source.PageID, "page", 0, "Render the WordPress page with this ID")
	cmd.Flags().BoolVar(&opts.standalone, "standalone", false, "Prepend the Leaflet stylesheet and scripts when a map is present")
	cmd.Flags().StringVar(&opts.popupFormat, "popup-format", "", "Popup content format: html, markdown (default from config)")
	cmd.Flags().StringVar(&opts.browserKey, "browser-key", "", "Google Maps browser key (default from config)")
	cmd.Flags().StringVar(&opts.out, "out", "", "Write output to a file instead of stdout")

	return cmd
}

func runRender(ctx context.Context, opts *renderOptions, client *api.Client) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := cmdutil.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	applyOverrides(cfg, opts)

	builder, err := cmdutil.NewBuilder(cfg)
	if err != nil {
		return err
	}

	// Create API client if not provided (allows injection for testing)
	if client == nil && opts.source.Remote() {
		client, err = cmdutil.NewClient(cfg)
		if err != nil {
			return err
		}
	}

	document, err := cmdutil.ReadDocument(ctx, opts.source, client)
	if err != nil {
		return err
	}

	output, warnings := mapblock.NewExpander(builder).Expand(document)
	if opts.standalone && mapblock.HasShortcode(document) {
		output = leaflet.Assets(cfg.BrowserKey(mapblock.GoogleMapsProvider)) + output
	}

	stderr := opts.stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	warn := view.NewRenderer(view.FormatTable, opts.noColor)
	warn.SetWriter(stderr)
	for _, w := range warnings {
		warn.Warning(w)
	}

	stdout := opts.stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	if opts.out != "" {
		if err := os.WriteFile(opts.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		done := view.NewRenderer(view.FormatTable, opts.noColor)
		done.SetWriter(stdout)
		done.Success(fmt.Sprintf("Wrote %s", opts.out))
		return nil
	}

	if _, err := io.WriteString(stdout, output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if !strings.HasSuffix(output, "\n") {
		fmt.Fprintln(stdout)
	}
	return nil
}

// applyOverrides lets command flags take precedence over the config file.
func applyOverrides(cfg *config.Config, opts *renderOptions) {
	if opts.browserKey != "" {
		cfg.GoogleMapsKey = opts.browserKey
	}
	if opts.popupFormat != "" {
		cfg.PopupFormat = opts.popupFormat
	}
}
