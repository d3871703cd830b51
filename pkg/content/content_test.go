package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatHTML, false},
		{"html", FormatHTML, false},
		{"HTML", FormatHTML, false},
		{"markdown", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"rtf", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid popup format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderer_HTML(t *testing.T) {
	r := NewRenderer(FormatHTML)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "Hello", "Hello"},
		{"trims whitespace", "  Hello \n", "Hello"},
		{"empty", "", ""},
		{"keeps basic markup", "<strong>Open</strong> daily", "<strong>Open</strong> daily"},
		{"strips scripts", `<script>alert(1)</script>Hi`, "Hi"},
		{"strips event handlers", `<b onclick="x()">Hi</b>`, "<b>Hi</b>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRenderer_Markdown(t *testing.T) {
	r := NewRenderer(FormatMarkdown)
	assert.Equal(t, FormatMarkdown, r.Format())

	got, err := r.Render("**Main Street** shop")
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>Main Street</strong> shop</p>", got)
}

func TestRenderer_DefaultsToHTML(t *testing.T) {
	r := NewRenderer("")
	assert.Equal(t, FormatHTML, r.Format())

	got, err := r.Render("**not markdown**")
	require.NoError(t, err)
	assert.Equal(t, "**not markdown**", got)
}

func TestToMarkdown(t *testing.T) {
	got, err := ToMarkdown("<p><strong>Hello</strong> world</p>")
	require.NoError(t, err)
	assert.Equal(t, "**Hello** world", got)

	empty, err := ToMarkdown("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
