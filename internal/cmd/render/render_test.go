package render

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/cn-mapblock/api"
	"github.com/open-cli-collective/cn-mapblock/internal/config"
	"github.com/open-cli-collective/cn-mapblock/pkg/leaflet"
)

// isolate keeps the developer's own config and env out of a test.
func isolate(t *testing.T, cfg *config.Config) string {
	t.Helper()
	for _, key := range []string{
		"CNMAP_URL", "CNMAP_USERNAME", "CNMAP_APP_PASSWORD", "CNMAP_BROWSER_KEY",
		"GOOGLE_MAPS_BROWSER_KEY", "CNMAP_BASE_LATITUDE", "CNMAP_BASE_LONGITUDE",
	} {
		t.Setenv(key, "")
	}

	path := filepath.Join(t.TempDir(), "config.yml")
	if cfg != nil {
		require.NoError(t, cfg.Save(path))
	}
	return path
}

func TestRunRender_Stdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	opts := &renderOptions{
		configPath: isolate(t, nil),
		noColor:    true,
		stdout:     &stdout,
		stderr:     &stderr,
	}
	opts.source.Stdin = strings.NewReader(`<p>Before</p>
[cn-mapblock id="shops" latitude="40" longitude="-75"][mapmarker id="m1" latitude="40.1" longitude="-75.1"]Hello[/mapmarker][/cn-mapblock]
<p>After</p>`)

	err := runRender(context.Background(), opts, nil)
	require.NoError(t, err)

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "<p>Before</p>\n<div id=\"shops\""))
	assert.Contains(t, out, `L.tileLayer(`)
	assert.Contains(t, out, `setContent("Hello")`)
	assert.True(t, strings.HasSuffix(out, "<p>After</p>\n"))
	assert.NotContains(t, out, leaflet.LeafletJS)
	assert.Empty(t, stderr.String())
}

func TestRunRender_Warnings(t *testing.T) {
	var stdout, stderr bytes.Buffer
	opts := &renderOptions{
		configPath: isolate(t, nil),
		noColor:    true,
		stdout:     &stdout,
		stderr:     &stderr,
	}
	opts.source.Stdin = strings.NewReader(`[cn-mapblock latitude="40" longitude="-75"][mapmarker id="bad" latitude="200" longitude="0"/][/cn-mapblock]`)

	err := runRender(context.Background(), opts, nil)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "! marker bad dropped")
}

func TestRunRender_StandaloneWithKey(t *testing.T) {
	var stdout bytes.Buffer
	opts := &renderOptions{
		configPath: isolate(t, &config.Config{BaseLatitude: "40", BaseLongitude: "-75"}),
		standalone: true,
		browserKey: "ABC123",
		noColor:    true,
		stdout:     &stdout,
		stderr:     &bytes.Buffer{},
	}
	opts.source.Stdin = strings.NewReader(`[cn-mapblock][/cn-mapblock]`)

	err := runRender(context.Background(), opts, nil)
	require.NoError(t, err)

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, `<link rel="stylesheet" href="`+leaflet.LeafletCSS+`">`))
	assert.Contains(t, out, leaflet.GoogleMapsJS+"?key=ABC123")
	assert.Contains(t, out, "L.gridLayer.googleMutant(")
	assert.Contains(t, out, "L.map(")
}

func TestRunRender_StandaloneWithoutShortcode(t *testing.T) {
	var stdout bytes.Buffer
	opts := &renderOptions{
		configPath: isolate(t, nil),
		standalone: true,
		noColor:    true,
		stdout:     &stdout,
		stderr:     &bytes.Buffer{},
	}
	opts.source.Stdin = strings.NewReader(`<p>No maps here</p>`)

	err := runRender(context.Background(), opts, nil)
	require.NoError(t, err)
	assert.Equal(t, "<p>No maps here</p>\n", stdout.String())
}

func TestRunRender_MarkdownPopups(t *testing.T) {
	var stdout bytes.Buffer
	opts := &renderOptions{
		configPath:  isolate(t, nil),
		popupFormat: "markdown",
		noColor:     true,
		stdout:      &stdout,
		stderr:      &bytes.Buffer{},
	}
	opts.source.Stdin = strings.NewReader(`[cn-mapblock latitude=1 longitude=2 marker=false][mapmarker latitude=1 longitude=2]**Open**[/mapmarker][/cn-mapblock]`)

	err := runRender(context.Background(), opts, nil)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), `\u003cstrong\u003eOpen\u003c/strong\u003e`)
}

func TestRunRender_InvalidPopupFormat(t *testing.T) {
	opts := &renderOptions{
		configPath:  isolate(t, nil),
		popupFormat: "rst",
		stdout:      &bytes.Buffer{},
	}
	opts.source.Stdin = strings.NewReader("")

	err := runRender(context.Background(), opts, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid popup format")
}

func TestRunRender_OutFile(t *testing.T) {
	in := filepath.Join(t.TempDir(), "post.html")
	require.NoError(t, os.WriteFile(in, []byte(`[cn-mapblock id=m latitude=1 longitude=2/]`), 0644))
	out := filepath.Join(t.TempDir(), "map.html")

	var stdout bytes.Buffer
	opts := &renderOptions{
		configPath: isolate(t, nil),
		out:        out,
		noColor:    true,
		stdout:     &stdout,
		stderr:     &bytes.Buffer{},
	}
	opts.source.File = in

	err := runRender(context.Background(), opts, nil)
	require.NoError(t, err)
	assert.Equal(t, "✓ Wrote "+out+"\n", stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<div id="m"`)
}

func TestRunRender_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/posts/42", r.URL.Path)
		assert.Equal(t, "edit", r.URL.Query().Get("context"))
		w.Write([]byte(`{"id": 42, "content": {"raw": "[cn-mapblock id=\"p42\" latitude=\"1\" longitude=\"2\"][/cn-mapblock]"}}`))
	}))
	defer server.Close()

	var stdout bytes.Buffer
	opts := &renderOptions{
		configPath: isolate(t, nil),
		stdout:     &stdout,
		stderr:     &bytes.Buffer{},
	}
	opts.source.PostID = 42

	client := api.NewClient(server.URL, "editor", "pass")
	err := runRender(context.Background(), opts, client)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), `<div id="p42"`)
}

func TestRunRender_PostNeedsSite(t *testing.T) {
	opts := &renderOptions{
		configPath: isolate(t, nil),
		stdout:     &bytes.Buffer{},
	}
	opts.source.PostID = 42

	err := runRender(context.Background(), opts, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "url is required")
}

func TestNewCmdRender(t *testing.T) {
	cmd := NewCmdRender()
	assert.Equal(t, "render [file]", cmd.Use)

	for _, name := range []string{"post", "page", "standalone", "popup-format", "browser-key", "out"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
