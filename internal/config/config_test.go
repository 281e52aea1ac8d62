package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api", cfg.API.BaseURL)
	assert.Equal(t, "http://localhost:8080/api/chat", cfg.Chat.BaseURL)
	assert.Equal(t, 5, cfg.Chat.PollInterval)
	assert.Equal(t, 10, cfg.Booking.LocationTimeout)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[api]
base_url = "https://api.ajeitai.com.br/api"
timeout = 3

[chat]
base_url = "https://chat.ajeitai.com.br/api/chat"
poll_interval = 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.ajeitai.com.br/api", cfg.API.BaseURL)
	assert.Equal(t, 3, cfg.API.Timeout)
	assert.Equal(t, 2, cfg.Chat.PollInterval)
	// секции, которых нет в файле, сохраняют значения по умолчанию
	assert.Equal(t, 10, cfg.Chat.Timeout)
	assert.Equal(t, "ajeitai", cfg.Identity.Realm)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[identity]
url = "http://keycloak.local"
realm = "file-realm"
client_id = "web"
`)
	t.Setenv("AJEITAI_IDENTITY_REALM", "env-realm")
	t.Setenv("AJEITAI_API_BASE_URL", "http://gateway-api:5000/api")
	t.Setenv("AJEITAI_IDENTITY_SCOPES", "openid,roles")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-realm", cfg.Identity.Realm)
	assert.Equal(t, "web", cfg.Identity.ClientID)
	assert.Equal(t, "http://gateway-api:5000/api", cfg.API.BaseURL)
	assert.Equal(t, []string{"openid", "roles"}, cfg.Identity.Scopes)
	assert.Equal(t, "http://keycloak.local/realms/env-realm", cfg.Identity.IssuerURL())
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, `
[api]
base_url = "not a url"
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_BrokenToml(t *testing.T) {
	path := writeConfig(t, `[server`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestValidate_PersistRequiresDatabase(t *testing.T) {
	cfg := Default()
	cfg.Session.Persist = true

	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg.Database.Host = "localhost"
	assert.NoError(t, cfg.Validate())
}

func TestDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "gw", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=gw sslmode=disable", db.DSN())
}

func TestPushDisabledWithoutKey(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.Push.Enabled())

	t.Setenv("AJEITAI_PUSH_VAPID_PUBLIC_KEY", "BEl62iUYgUivxIkv69yViEuiBIa")
	loaded, err := Load("")
	require.NoError(t, err)
	assert.True(t, loaded.Push.Enabled())
}
