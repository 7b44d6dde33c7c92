package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"token_sign_key": "json-secret",
			"token_issuer": "timesheet-server",
			"token_duration": "2h",
			"cookie_secure": true
		},
		"storage": {
			"db": {
				"engine": "sqlite",
				"dsn": "timesheet.db"
			}
		},
		"server": {
			"http_address": "localhost:5000",
			"request_timeout": "45s",
			"cors_origins": ["http://localhost:3000"]
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "timesheet-server", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.True(t, cfg.App.CookieSecure)
	assert.Equal(t, "sqlite", cfg.Storage.DB.Engine)
	assert.Equal(t, "timesheet.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:5000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"app": {"token_duration": 3600000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"app": `)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)
	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))

	var parsed Duration
	require.NoError(t, parsed.UnmarshalJSON(data))
	assert.Equal(t, d, parsed)
}
