// Package scan provides the scan command.
package scan

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/cn-mapblock/api"
	"github.com/open-cli-collective/cn-mapblock/internal/cmd/cmdutil"
	"github.com/open-cli-collective/cn-mapblock/internal/view"
	"github.com/open-cli-collective/cn-mapblock/pkg/mapblock"
)

type scanOptions struct {
	contentType string
	status      string
	limit       int
	page        int
	configPath  string
	output      string
	noColor     bool
	stdout      io.Writer // For testing; defaults to os.Stdout
}

// NewCmdScan creates the scan command.
func NewCmdScan() *cobra.Command {
	opts := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List WordPress posts that contain maps",
		Long: `Search WordPress posts or pages for [cn-mapblock] shortcodes and show
how many maps each one builds and how many warnings they raise.`,
		Example: `  # Scan published posts
  cnmap scan

  # Scan drafts among pages
  cnmap scan --type page --status draft

  # Output as JSON
  cnmap scan -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath = cmdutil.ConfigPath(cmd)
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runScan(cmd.Context(), opts, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.contentType, "type", "t", "post", "Content type to scan (post, page)")
	cmd.Flags().StringVar(&opts.status, "status", "", "Post status (publish, draft, any)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", 25, "Maximum number of posts to search")
	cmd.Flags().IntVar(&opts.page, "page-number", 0, "Result page to fetch")

	return cmd
}

func contentType(name string) (string, error) {
	switch name {
	case "post", "":
		return api.TypePost, nil
	case "page":
		return api.TypePage, nil
	default:
		return "", fmt.Errorf("invalid type %q: must be post or page", name)
	}
}

func runScan(ctx context.Context, opts *scanOptions, client *api.Client) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	typ, err := contentType(opts.contentType)
	if err != nil {
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
	if client == nil {
		client, err = cmdutil.NewClient(cfg)
		if err != nil {
			return err
		}
	}

	posts, err := client.ListPosts(ctx, typ, &api.ListPostsOptions{
		Search:  mapblock.TagBlock,
		Status:  opts.status,
		PerPage: opts.limit,
		Page:    opts.page,
	})
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", typ, err)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.stdout != nil {
		renderer.SetWriter(opts.stdout)
	} else {
		renderer.SetWriter(os.Stdout)
	}

	expander := mapblock.NewExpander(builder)

	headers := []string{"ID", "TITLE", "STATUS", "MAPS", "WARNINGS"}
	var rows [][]string

	for _, post := range posts {
		// Search also matches titles and text mentioning the tag
		document := post.Content.Source()
		if !mapblock.HasShortcode(document) {
			continue
		}

		results := expander.Blocks(document)
		warnings := 0
		for _, res := range results {
			warnings += len(res.Warnings)
		}

		rows = append(rows, []string{
			strconv.Itoa(post.ID),
			view.Truncate(post.Title.Source(), 50),
			post.Status,
			strconv.Itoa(len(results)),
			strconv.Itoa(warnings),
		})
	}

	if len(rows) == 0 {
		if opts.output == "json" {
			return renderer.RenderJSON([]any{})
		}
		renderer.RenderText("No maps found.")
		return nil
	}

	renderer.RenderTable(headers, rows)
	return nil
}
