package configcmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/cn-mapblock/api"
	"github.com/open-cli-collective/cn-mapblock/internal/cmd/cmdutil"
	"github.com/open-cli-collective/cn-mapblock/internal/config"
	"github.com/open-cli-collective/cn-mapblock/internal/view"
	"github.com/open-cli-collective/cn-mapblock/pkg/mapblock"
)

const testTimeout = 10 * time.Second

// NewCmdTest creates the config test command.
func NewCmdTest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test map settings and WordPress connectivity",
		Long: `Check that the map settings are usable and, when a WordPress site is
configured, that cnmap can connect with the stored application password.`,
		Example: `  # Test configuration
  cnmap config test`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			cfg, err := cmdutil.LoadConfig(cmdutil.ConfigPath(cmd))
			if err != nil {
				return err
			}
			return runTest(noColor, nil, cfg)
		},
	}

	return cmd
}

func runTest(noColor bool, client *api.Client, cfg *config.Config) error {
	return runTestTo(os.Stdout, noColor, client, cfg)
}

func runTestTo(w io.Writer, noColor bool, client *api.Client, cfg *config.Config) error {
	renderer := view.NewRenderer(view.FormatTable, noColor)
	renderer.SetWriter(w)
	dim := color.New(color.Faint)

	if cfg.BrowserKey(mapblock.GoogleMapsProvider) != "" {
		renderer.Success("Base layers: Google Maps (Roadmap, Satellite)")
	} else {
		renderer.Success("Base layers: Wikimedia")
	}
	if lat, lng := cfg.BaseCoordinates(); lat != "" {
		renderer.Success(fmt.Sprintf("Base coordinates: %s,%s", lat, lng))
	} else {
		_, _ = dim.Fprintln(w, "- No base coordinates; maps must give latitude and longitude")
	}

	if !cfg.HasSite() {
		_, _ = dim.Fprintln(w, "- No WordPress site configured")
		return nil
	}

	if client == nil {
		var err error
		client, err = cmdutil.NewClient(cfg)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "Testing connection to %s...\n", cfg.URL)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	user, err := client.GetCurrentUser(ctx)
	if err != nil {
		var apiErr *api.ErrorResponse
		if !errors.As(err, &apiErr) {
			renderer.Error(fmt.Sprintf("Connection failed: %v", err))
			fmt.Fprintln(w, "\nCheck your URL with: cnmap config show")
			fmt.Fprintln(w, "Reconfigure with: cnmap init")
			return fmt.Errorf("connection failed: %w", err)
		}

		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			renderer.Error("Authentication failed: 401 Unauthorized")
			fmt.Fprintln(w, "\nCheck your credentials with: cnmap config show")
			fmt.Fprintln(w, "Reconfigure with: cnmap init")
			return fmt.Errorf("authentication failed")
		case http.StatusForbidden:
			renderer.Error("Access denied: 403 Forbidden")
			fmt.Fprintln(w, "\nCheck your permissions.")
			return fmt.Errorf("access denied")
		default:
			renderer.Error(fmt.Sprintf("Unexpected response: %d", apiErr.StatusCode))
			return fmt.Errorf("unexpected status code: %d", apiErr.StatusCode)
		}
	}

	renderer.Success("Authentication successful")
	renderer.Success("REST API access verified")
	fmt.Fprintln(w)
	renderer.RenderKeyValue("Authenticated as", user.Name)

	return nil
}
