// Package inspect provides the inspect command.
package inspect

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/cn-mapblock/api"
	"github.com/open-cli-collective/cn-mapblock/internal/cmd/cmdutil"
	"github.com/open-cli-collective/cn-mapblock/internal/view"
	"github.com/open-cli-collective/cn-mapblock/pkg/content"
	"github.com/open-cli-collective/cn-mapblock/pkg/leaflet"
	"github.com/open-cli-collective/cn-mapblock/pkg/mapblock"
)

const popupWidth = 60

type inspectOptions struct {
	source     cmdutil.Source
	configPath string
	output     string
	noColor    bool
	stdout     io.Writer // For testing; defaults to os.Stdout
}

// mapReport is the JSON form of one inspected map.
type mapReport struct {
	Map      *leaflet.Node `json:"map"`
	Warnings []string      `json:"warnings,omitempty"`
}

// NewCmdInspect creates the inspect command.
func NewCmdInspect() *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the map graph built for each [cn-mapblock]",
		Long: `Build every [cn-mapblock] shortcode in a document and show the
resulting layers, markers and popups as a tree, without rendering HTML.

Popup content is shown as markdown.`,
		Example: `  # Inspect a local file
  cnmap inspect post.html

  # Inspect a WordPress page as JSON
  cnmap inspect --page 7 -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.source.File = args[0]
			}
			opts.configPath = cmdutil.ConfigPath(cmd)
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runInspect(cmd.Context(), opts, nil)
		},
	}

	cmd.Flags().IntVar(&opts.source.PostID, "post", 0, "Inspect the WordPress post with this ID")
	cmd.Flags().IntVar(&opts.source.PageID, "page", 0, "Inspect the WordPress page with this ID")

	return cmd
}

func runInspect(ctx context.Context, opts *inspectOptions, client *api.Client) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Validate output format
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	cfg, err := cmdutil.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

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

	results := mapblock.NewExpander(builder).Blocks(document)

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.stdout != nil {
		renderer.SetWriter(opts.stdout)
	} else {
		renderer.SetWriter(os.Stdout)
	}

	if opts.output == "json" {
		reports := make([]mapReport, 0, len(results))
		for _, res := range results {
			reports = append(reports, mapReport{Map: res.Map.Tree(), Warnings: res.Warnings})
		}
		return renderer.RenderJSON(reports)
	}

	if len(results) == 0 {
		renderer.RenderText("No maps found.")
		return nil
	}

	for i, res := range results {
		if i > 0 {
			renderer.RenderText("")
		}
		renderer.RenderTree(treeRows(res.Map.Tree()))
		for _, w := range res.Warnings {
			renderer.Warning(w)
		}
	}

	return nil
}

// treeRows flattens a map snapshot into display rows.
func treeRows(root *leaflet.Node) []view.TreeRow {
	var rows []view.TreeRow
	root.Walk(func(n *leaflet.Node, depth int) {
		rows = append(rows, view.TreeRow{Depth: depth, Columns: describe(n)})
	})
	return rows
}

func describe(n *leaflet.Node) []string {
	cols := []string{string(n.Kind), n.ID}

	switch n.Kind {
	case leaflet.KindMap:
		cols = append(cols, n.Center.String(), "zoom "+strconv.Itoa(*n.Zoom), n.Height+" x "+n.Width)
	case leaflet.KindProvider:
		cols = append(cols, n.Source, quoted(n.Name))
	case leaflet.KindLayerGroup:
		cols = append(cols, quoted(n.Name))
	case leaflet.KindMarker:
		cols = append(cols, n.Center.String())
	case leaflet.KindPopup:
		cols = append(cols, popupText(n.Content))
	case leaflet.KindLayerControl:
		if len(n.BaseLayers) > 0 {
			cols = append(cols, "base: "+strings.Join(n.BaseLayers, ", "))
		}
		if len(n.Overlays) > 0 {
			cols = append(cols, "overlays: "+strings.Join(n.Overlays, ", "))
		}
		if n.Collapsed != nil && *n.Collapsed {
			cols = append(cols, "collapsed")
		}
	}

	return cols
}

func quoted(s string) string {
	if s == "" {
		return ""
	}
	return fmt.Sprintf("%q", s)
}

// popupText shows popup HTML as a single line of markdown.
func popupText(html string) string {
	text, err := content.ToMarkdown(html)
	if err != nil {
		// Fall back to raw content if conversion fails
		text = html
	}
	text = strings.Join(strings.Fields(text), " ")
	return view.Truncate(text, popupWidth)
}
