package init

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/cn-mapblock/internal/config"
)

func TestVerifyConnection_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify the request
		assert.Equal(t, "/wp-json/wp/v2/users/me", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		// Verify basic auth is present
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok, "basic auth should be present")
		assert.Equal(t, "editor", user)
		assert.Equal(t, "abcd efgh", pass)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id": 1, "name": "Editor"}`))
	}))
	defer server.Close()

	cfg := &config.Config{
		URL:         server.URL,
		Username:    "editor",
		AppPassword: "abcd efgh",
	}

	err := verifyConnection(context.Background(), cfg)
	assert.NoError(t, err)
}

func TestVerifyConnection_NetworkError(t *testing.T) {
	cfg := &config.Config{
		URL:         "http://localhost:99999", // Non-existent server
		Username:    "editor",
		AppPassword: "pass",
	}

	err := verifyConnection(context.Background(), cfg)
	require.Error(t, err)
}

func TestVerifyConnection_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    bool
		errContain string
	}{
		{
			name:       "200 OK",
			statusCode: http.StatusOK,
			body:       `{"id": 1}`,
			wantErr:    false,
		},
		{
			name:       "401 Unauthorized",
			statusCode: http.StatusUnauthorized,
			body:       `{"code":"incorrect_password","message":"The provided password is an invalid application password.","data":{"status":401}}`,
			wantErr:    true,
			errContain: "username and application password",
		},
		{
			name:       "403 Forbidden",
			statusCode: http.StatusForbidden,
			wantErr:    true,
			errContain: "access denied",
		},
		{
			name:       "404 Not Found",
			statusCode: http.StatusNotFound,
			body:       `{"code":"rest_no_route","message":"No route was found matching the URL and request method.","data":{"status":404}}`,
			wantErr:    true,
			errContain: "unexpected status code: 404",
		},
		{
			name:       "502 Bad Gateway",
			statusCode: http.StatusBadGateway,
			wantErr:    true,
			errContain: "unexpected status code: 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			cfg := &config.Config{
				URL:         server.URL,
				Username:    "editor",
				AppPassword: "pass",
			}

			err := verifyConnection(context.Background(), cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBase(t *testing.T) {
	assert.NoError(t, validateBase("", ""))
	assert.NoError(t, validateBase("40", "-75"))
	assert.Error(t, validateBase("40", ""))
	assert.Error(t, validateBase("north", "-75"))
	assert.Error(t, validateBase("40", "-181"))
}

func TestConfigFilePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yml")

	cfg := config.Config{
		URL:           "https://shops.example.com",
		Username:      "editor",
		AppPassword:   "secret",
		GoogleMapsKey: "ABC123",
	}

	// Save should create the directory structure
	err := cfg.Save(configPath)
	require.NoError(t, err)

	// On Unix, permissions should be 0600 (user read/write only)
	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "config file should have 0600 permissions")
}

func TestNewCmdInit_Flags(t *testing.T) {
	cmd := NewCmdInit()

	// Verify command structure
	assert.Equal(t, "init", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	// Verify flags exist
	urlFlag := cmd.Flags().Lookup("url")
	require.NotNil(t, urlFlag)
	assert.Equal(t, "", urlFlag.DefValue)

	usernameFlag := cmd.Flags().Lookup("username")
	require.NotNil(t, usernameFlag)
	assert.Equal(t, "", usernameFlag.DefValue)

	noVerifyFlag := cmd.Flags().Lookup("no-verify")
	require.NotNil(t, noVerifyFlag)
	assert.Equal(t, "false", noVerifyFlag.DefValue)
}

func TestNewForm(t *testing.T) {
	cfg := &config.Config{}
	assert.NotNil(t, newForm(cfg))
}
