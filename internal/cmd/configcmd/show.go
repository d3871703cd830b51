package configcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/cn-mapblock/internal/cmd/cmdutil"
	"github.com/open-cli-collective/cn-mapblock/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current cnmap configuration with source indicators.`,
		Example: `  # Show current config
  cnmap config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(cmdutil.ConfigPath(cmd), noColor)
		},
	}

	return cmd
}

func runShow(configPath string, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue string, envVars ...string) {
		_, _ = bold.Printf("%-16s", label+":")
		if value == "" {
			_, _ = dim.Println("-")
			return
		}

		fmt.Print(mask(label, value))

		// Determine source
		source := "config"
		if fileErr != nil {
			source = "-"
		}
		for _, envVar := range envVars {
			if v := os.Getenv(envVar); v != "" && v == value {
				source = envVar
				break
			}
		}
		if fileValue != value && source == "config" {
			source = "-"
		}

		_, _ = dim.Printf("  (source: %s)\n", source)
	}

	printField("URL", cfg.URL, fileCfg.URL, "CNMAP_URL")
	printField("Username", cfg.Username, fileCfg.Username, "CNMAP_USERNAME")
	printField("App Password", cfg.AppPassword, fileCfg.AppPassword, "CNMAP_APP_PASSWORD")
	printField("Browser Key", cfg.GoogleMapsKey, fileCfg.GoogleMapsKey, "CNMAP_BROWSER_KEY", "GOOGLE_MAPS_BROWSER_KEY")
	printField("Base Latitude", cfg.BaseLatitude, fileCfg.BaseLatitude, "CNMAP_BASE_LATITUDE")
	printField("Base Longitude", cfg.BaseLongitude, fileCfg.BaseLongitude, "CNMAP_BASE_LONGITUDE")
	printField("Popup Format", cfg.PopupFormat, fileCfg.PopupFormat)

	fmt.Println()
	_, _ = dim.Printf("Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Println("(file not found)")
	}

	return nil
}

// mask hides all but the ends of secret values.
func mask(label, value string) string {
	lower := strings.ToLower(label)
	if !strings.Contains(lower, "password") && !strings.Contains(lower, "key") {
		return value
	}
	if len(value) <= 8 {
		return strings.Repeat("*", len(value))
	}
	return value[:4] + strings.Repeat("*", len(value)-8) + value[len(value)-4:]
}
