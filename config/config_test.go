package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "local", cfg.Env)
	require.Equal(t, "0.0.0.0:8000", cfg.ApiServer.Address())
	require.Equal(t, 100, cfg.ApiServer.DefaultLimit)
	require.Equal(t, 1000, cfg.ApiServer.MaxLimit)
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, "users.db", cfg.Database.File)
	require.Equal(t, 24*time.Hour, cfg.Auth.AccessToken.Expiration)
}

func TestLoad_fileOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
env = "prod"

[api_server]
port = "9000"

[database]
driver = "mysql"
host = "db.internal"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "9000", cfg.ApiServer.Port)
	require.Equal(t, "mysql", cfg.Database.Driver)
	require.Equal(t, "db.internal", cfg.Database.Host)

	// Untouched sections keep their environment defaults.
	require.Equal(t, "0.0.0.0", cfg.ApiServer.Host)
	require.Equal(t, 100, cfg.ApiServer.DefaultLimit)
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	require.Error(t, err)
}

func TestDatabaseConfigs_ConnectionString(t *testing.T) {
	d := DatabaseConfigs{
		User:     "root",
		Password: "pw",
		Host:     "localhost",
		Port:     "3306",
		Database: "userhub",
	}
	require.Equal(t,
		"root:pw@tcp(localhost:3306)/userhub?charset=utf8mb4&parseTime=True&loc=Local",
		d.ConnectionString(),
	)
}
