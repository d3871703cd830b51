// Package config provides configuration management for cnmap.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/cn-mapblock/pkg/content"
	"github.com/open-cli-collective/cn-mapblock/pkg/leaflet"
	"github.com/open-cli-collective/cn-mapblock/pkg/mapblock"
)

// Config holds the cnmap configuration.
type Config struct {
	URL           string `yaml:"url,omitempty"`
	Username      string `yaml:"username,omitempty"`
	AppPassword   string `yaml:"app_password,omitempty"`
	GoogleMapsKey string `yaml:"browser_key,omitempty"`
	BaseLatitude  string `yaml:"base_latitude,omitempty"`
	BaseLongitude string `yaml:"base_longitude,omitempty"`
	PopupFormat   string `yaml:"popup_format,omitempty"`
	OutputFormat  string `yaml:"output_format,omitempty"`
}

var (
	_ mapblock.Settings  = (*Config)(nil)
	_ mapblock.GeoSource = (*Config)(nil)
)

// BrowserKey returns the configured key for provider. Only the Google Maps
// provider has one.
func (c *Config) BrowserKey(provider string) string {
	if provider != mapblock.GoogleMapsProvider {
		return ""
	}
	return c.GoogleMapsKey
}

// BaseCoordinates returns the directory's base coordinates.
func (c *Config) BaseCoordinates() (string, string) {
	return c.BaseLatitude, c.BaseLongitude
}

// Validate checks the settings used to render maps.
func (c *Config) Validate() error {
	if c.URL != "" && !strings.HasPrefix(c.URL, "https://") {
		return errors.New("url must use https")
	}

	if (c.BaseLatitude == "") != (c.BaseLongitude == "") {
		return errors.New("base_latitude and base_longitude must be set together")
	}
	if c.BaseLatitude != "" {
		if _, err := leaflet.ParseCoordinates(c.BaseLatitude, c.BaseLongitude); err != nil {
			return fmt.Errorf("invalid base coordinates: %w", err)
		}
	}

	if _, err := content.ParseFormat(c.PopupFormat); err != nil {
		return err
	}

	return nil
}

// ValidateSite checks that the fields needed to reach the WordPress site are
// present and valid.
func (c *Config) ValidateSite() error {
	if c.URL == "" {
		return errors.New("url is required")
	}
	if c.Username == "" {
		return errors.New("username is required")
	}
	if c.AppPassword == "" {
		return errors.New("app_password is required")
	}
	return c.Validate()
}

// HasSite reports whether a WordPress site is configured.
func (c *Config) HasSite() bool {
	return c.URL != ""
}

// NormalizeURL trims a trailing slash and any REST or admin path pasted
// along with the site URL.
func (c *Config) NormalizeURL() {
	c.URL = strings.TrimSuffix(c.URL, "/")
	for _, suffix := range []string{"/wp-json", "/wp-admin"} {
		if i := strings.Index(c.URL, suffix); i >= 0 {
			c.URL = c.URL[:i]
		}
	}
}

// EnvVars lists every environment variable LoadFromEnv reads.
var EnvVars = []string{
	"CNMAP_URL", "CNMAP_USERNAME", "CNMAP_APP_PASSWORD",
	"CNMAP_BROWSER_KEY", "GOOGLE_MAPS_BROWSER_KEY",
	"CNMAP_BASE_LATITUDE", "CNMAP_BASE_LONGITUDE",
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if url := os.Getenv("CNMAP_URL"); url != "" {
		c.URL = url
	}
	if username := os.Getenv("CNMAP_USERNAME"); username != "" {
		c.Username = username
	}
	if password := os.Getenv("CNMAP_APP_PASSWORD"); password != "" {
		c.AppPassword = password
	}
	if key := getEnvWithFallback("CNMAP_BROWSER_KEY", "GOOGLE_MAPS_BROWSER_KEY"); key != "" {
		c.GoogleMapsKey = key
	}
	if lat := os.Getenv("CNMAP_BASE_LATITUDE"); lat != "" {
		c.BaseLatitude = lat
	}
	if lng := os.Getenv("CNMAP_BASE_LONGITUDE"); lng != "" {
		c.BaseLongitude = lng
	}
}

// getEnvWithFallback returns the value of the primary env var, or the fallback if primary is empty.
func getEnvWithFallback(primary, fallback string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(fallback)
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "cnmap", "config.yml")
	}

	// Fall back to ~/.config/cnmap/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".cnmap", "config.yml")
	}

	return filepath.Join(home, ".config", "cnmap", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write with restricted permissions (user read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		// If file doesn't exist, start with empty config
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
