// Package cmdutil provides helpers shared by cnmap commands.
package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/cn-mapblock/api"
	"github.com/open-cli-collective/cn-mapblock/internal/config"
	"github.com/open-cli-collective/cn-mapblock/pkg/content"
	"github.com/open-cli-collective/cn-mapblock/pkg/mapblock"
)

// ConfigPath returns the --config flag value, or the default path.
func ConfigPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.DefaultConfigPath()
}

// LoadConfig loads and validates the configuration at path.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w (run 'cnmap init' to configure)", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'cnmap init' to configure)", err)
	}

	return cfg, nil
}

// NewClient creates a WordPress client for the configured site.
func NewClient(cfg *config.Config) (*api.Client, error) {
	if err := cfg.ValidateSite(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'cnmap init' to configure)", err)
	}
	return api.NewClient(cfg.URL, cfg.Username, cfg.AppPassword), nil
}

// NewBuilder creates a map builder that reads keys and base coordinates
// from cfg.
func NewBuilder(cfg *config.Config, opts ...mapblock.Option) (*mapblock.Builder, error) {
	format, err := content.ParseFormat(cfg.PopupFormat)
	if err != nil {
		return nil, err
	}
	opts = append([]mapblock.Option{mapblock.WithPopupRenderer(content.NewRenderer(format))}, opts...)
	return mapblock.NewBuilder(cfg, cfg, opts...), nil
}

// Source says where a document comes from. At most one of File, PostID and
// PageID is set; with none, the document is read from Stdin.
type Source struct {
	File   string
	PostID int
	PageID int
	Stdin  io.Reader // For testing; defaults to os.Stdin
}

// Remote reports whether the document is fetched from WordPress.
func (s Source) Remote() bool {
	return s.PostID != 0 || s.PageID != 0
}

// Validate checks that the source is unambiguous.
func (s Source) Validate() error {
	n := 0
	for _, set := range []bool{s.File != "", s.PostID != 0, s.PageID != 0} {
		if set {
			n++
		}
	}
	if n > 1 {
		return errors.New("only one of a file, --post or --page may be given")
	}
	if s.PostID < 0 || s.PageID < 0 {
		return errors.New("post and page ids must be positive")
	}
	return nil
}

// ReadDocument returns the raw document text. client is only used for
// remote sources.
func ReadDocument(ctx context.Context, s Source, client *api.Client) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	if s.Remote() {
		if client == nil {
			return "", errors.New("no WordPress client configured")
		}

		contentType, id := api.TypePost, s.PostID
		if s.PageID != 0 {
			contentType, id = api.TypePage, s.PageID
		}
		post, err := client.GetContent(ctx, contentType, id)
		if err != nil {
			return "", fmt.Errorf("failed to get content: %w", err)
		}
		return post.Content.Source(), nil
	}

	if s.File != "" && s.File != "-" {
		data, err := os.ReadFile(s.File)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), nil
	}

	stdin := s.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
