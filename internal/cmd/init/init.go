// Package init provides the init command for cnmap.
package init

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/cn-mapblock/api"
	"github.com/open-cli-collective/cn-mapblock/internal/cmd/cmdutil"
	"github.com/open-cli-collective/cn-mapblock/internal/config"
	"github.com/open-cli-collective/cn-mapblock/pkg/content"
	"github.com/open-cli-collective/cn-mapblock/pkg/leaflet"
)

const verifyTimeout = 10 * time.Second

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		url      string
		username string
		noVerify bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize cnmap configuration",
		Long: `Initialize cnmap with your map settings and, optionally, the WordPress
site to read posts from.

The Google Maps browser key enables the Roadmap and Satellite base layers.
Without one, maps use the Wikimedia tile layer. The base coordinates are
used for maps that give no latitude and longitude.

To read posts with --post and --page, create an application password
under Users > Profile > Application Passwords in the WordPress admin.

The configuration will be saved to ~/.config/cnmap/config.yml.`,
		Example: `  # Interactive setup
  cnmap init

  # Pre-populate the site URL
  cnmap init --url https://shops.example.com`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmdutil.ConfigPath(cmd), url, username, noVerify)
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "WordPress site URL (e.g., https://shops.example.com)")
	cmd.Flags().StringVar(&username, "username", "", "Your WordPress username")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip connection verification")

	return cmd
}

func runInit(configPath, prefillURL, prefillUsername string, noVerify bool) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{
		URL:         prefillURL,
		Username:    prefillUsername,
		PopupFormat: string(content.FormatHTML),
	}

	if err := newForm(cfg).Run(); err != nil {
		return err
	}

	// Normalize URL
	cfg.NormalizeURL()

	// Validate
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Verify connection unless skipped or no site configured
	if cfg.HasSite() && !noVerify {
		if err := cfg.ValidateSite(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		fmt.Print("Verifying connection... ")
		if err := verifyConnection(context.Background(), cfg); err != nil {
			fmt.Println("failed!")
			return fmt.Errorf("connection verification failed: %w", err)
		}
		fmt.Println("success!")
	}

	// Save configuration
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  cnmap render post.html")
	if cfg.HasSite() {
		fmt.Println("  cnmap scan")
		fmt.Println("  cnmap inspect --post <POST_ID>")
	}

	return nil
}

func newForm(cfg *config.Config) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Google Maps browser key (optional)").
				Description("Leave empty to use the Wikimedia tile layer").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.GoogleMapsKey),

			huh.NewInput().
				Title("Base latitude (optional)").
				Description("Center for maps that give no coordinates").
				Placeholder("40.0").
				Value(&cfg.BaseLatitude),

			huh.NewInput().
				Title("Base longitude (optional)").
				Placeholder("-75.0").
				Value(&cfg.BaseLongitude).
				Validate(func(s string) error {
					return validateBase(cfg.BaseLatitude, s)
				}),

			huh.NewSelect[string]().
				Title("Popup content format").
				Options(
					huh.NewOption("HTML", string(content.FormatHTML)),
					huh.NewOption("Markdown", string(content.FormatMarkdown)),
				).
				Value(&cfg.PopupFormat),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("WordPress URL (optional)").
				Description("Needed to render posts with --post and --page").
				Placeholder("https://shops.example.com").
				Value(&cfg.URL),

			huh.NewInput().
				Title("Username").
				Value(&cfg.Username).
				Validate(func(s string) error {
					if cfg.URL != "" && s == "" {
						return fmt.Errorf("username is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Application password").
				Description("Users > Profile > Application Passwords").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.AppPassword).
				Validate(func(s string) error {
					if cfg.URL != "" && s == "" {
						return fmt.Errorf("application password is required")
					}
					return nil
				}),
		),
	)
}

// validateBase checks the base coordinate pair entered in the form.
func validateBase(latitude, longitude string) error {
	if latitude == "" && longitude == "" {
		return nil
	}
	if _, err := leaflet.ParseCoordinates(latitude, longitude); err != nil {
		return err
	}
	return nil
}

func verifyConnection(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	client := api.NewClient(cfg.URL, cfg.Username, cfg.AppPassword)
	_, err := client.GetCurrentUser(ctx)
	if err == nil {
		return nil
	}

	var apiErr *api.ErrorResponse
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("authentication failed - check your username and application password")
	case http.StatusForbidden:
		return fmt.Errorf("access denied - check your permissions")
	default:
		return fmt.Errorf("unexpected status code: %d", apiErr.StatusCode)
	}
}
