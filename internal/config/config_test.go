package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.StatsCacheTTL)
	assert.Equal(t, "session_token", cfg.SessionCookie)
	assert.NotEmpty(t, cfg.WalletMasterSeed)
	assert.True(t, cfg.DB.Debug)
	assert.False(t, cfg.SecureCookie)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("WALLET_MASTER_SEED", "prod-seed")
	t.Setenv("STATS_CACHE_TTL", "1m")
	t.Setenv("DB_PORT", "6432")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, time.Minute, cfg.StatsCacheTTL)
	assert.Equal(t, 6432, cfg.DB.Port)
	assert.True(t, cfg.SecureCookie)
}

func TestLoadRejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "change-me")
	t.Setenv("WALLET_MASTER_SEED", "seed")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidSessionTTL(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("SESSION_TTL", "0s")

	_, err := Load()
	assert.Error(t, err)
}
