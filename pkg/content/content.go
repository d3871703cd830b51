// Package content prepares popup content for embedding in map markup.
package content

import (
	"bytes"
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Format is the authoring format of popup content.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name. An empty name means FormatHTML.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatHTML:
		return FormatHTML, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("invalid popup format %q: must be html or markdown", s)
	}
}

// mdParser is a pre-configured goldmark instance with GFM table extension.
var mdParser = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// popupPolicy allows user-generated content plus link targets and classes.
func popupPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("target").Matching(bluemonday.Paragraph).OnElements("a")
	p.AllowAttrs("class").Globally()
	return p
}

// Renderer turns raw popup content into sanitized HTML.
type Renderer struct {
	format Format
	policy *bluemonday.Policy
}

// NewRenderer creates a renderer for content authored in format.
func NewRenderer(format Format) *Renderer {
	if format == "" {
		format = FormatHTML
	}
	return &Renderer{
		format: format,
		policy: popupPolicy(),
	}
}

// Format returns the authoring format.
func (r *Renderer) Format() Format {
	return r.format
}

// Render converts raw to HTML (if authored as markdown) and sanitizes it.
func (r *Renderer) Render(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	html := raw
	if r.format == FormatMarkdown {
		var buf bytes.Buffer
		if err := mdParser.Convert([]byte(raw), &buf); err != nil {
			return "", fmt.Errorf("failed to convert markdown: %w", err)
		}
		html = buf.String()
	}

	return strings.TrimSpace(r.policy.Sanitize(html)), nil
}

// ToMarkdown converts popup HTML to markdown for terminal display.
func ToMarkdown(html string) (string, error) {
	if html == "" {
		return "", nil
	}

	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(markdown), nil
}
