package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"sightstory/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSecrets(t *testing.T, secrets map[string]string) {
	t.Helper()
	dir := t.TempDir()
	for name, value := range secrets {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(value), 0o600))
	}
	old := utils.SecretsDir
	utils.SecretsDir = dir
	t.Cleanup(func() { utils.SecretsDir = old })
}

func TestLoadConfig(t *testing.T) {
	writeSecrets(t, map[string]string{
		"db_password":     "pg",
		"jwt_secret":      "jwt",
		"password_pepper": "pepper",
	})
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_NAME=stories\n"), 0o600))

	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "")
	os.Unsetenv("DB_NAME")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("SHARED_STORY_CACHE_TTL", "30s")

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "stories", cfg.DBName)
	assert.Equal(t, "pg", cfg.DBPassword)
	assert.Equal(t, "jwt", cfg.JWTSecret)
	assert.Equal(t, "pepper", cfg.PasswordPepper)
	assert.Empty(t, cfg.RedisPassword)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 30*time.Second, cfg.SharedStoryCacheTTL)
	assert.Equal(t, "story_shares", cfg.ShareExchangeName)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.GetAllowedOrigins())
	assert.Equal(t, "postgres://app:pg@db:5432/stories?sslmode=disable", cfg.PostgresDSN())
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	writeSecrets(t, map[string]string{"db_password": "pg"})
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "stories")

	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingRequiredEnv(t *testing.T) {
	writeSecrets(t, map[string]string{"db_password": "pg", "jwt_secret": "j", "password_pepper": "p"})
	t.Setenv("DB_HOST", "")
	os.Unsetenv("DB_HOST")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "stories")

	_, err := LoadConfig("")
	assert.Error(t, err)
}
