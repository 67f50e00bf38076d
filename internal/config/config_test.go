package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, "admin", cfg.Auth.AdminPassword)
	assert.Equal(t, []string{"DS CŨ", "BHXH BB+HT", "KO KÝ HĐ"}, cfg.Import.SheetWhitelist)
	assert.Equal(t, 10, cfg.Import.MaxUploadSizeMB)
	assert.Equal(t, "8h", cfg.JWT.AccessTokenExpiration)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoadConfigFromFile(t *testing.T) {
	content := `
server:
  port: "9090"
jwt:
  secret: "file-secret"
auth:
  admin_username: "operator"
  admin_password: "s3cret"
import:
  sheet_whitelist:
    - "DS CŨ"
  max_upload_size_mb: 5
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, "operator", cfg.Auth.AdminUsername)
	assert.Equal(t, []string{"DS CŨ"}, cfg.Import.SheetWhitelist)
	assert.Equal(t, 5, cfg.Import.MaxUploadSizeMB)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("IMPORT_SHEET_WHITELIST", "Sheet A, Sheet B")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, []string{"Sheet A", "Sheet B"}, cfg.Import.SheetWhitelist)
}

func TestLoadConfigRejectsBadExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRATION", "soon")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
