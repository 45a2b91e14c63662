package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("MIGRATIONS_ENABLED", "false")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.MigrationsEnabled)
	assert.Equal(t, "0 9 1 * *", cfg.DigestCron)
}

func TestNewConfig_MissingRequired(t *testing.T) {
	t.Setenv("DB_CONN", "")
	t.Setenv("JWT_SECRET", " ")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_CONN")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewConfig_InvalidValues(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")
	_, err := NewConfig()
	assert.ErrorContains(t, err, "TOKEN_TTL")

	t.Setenv("TOKEN_TTL", "-1h")
	_, err = NewConfig()
	assert.ErrorContains(t, err, "TOKEN_TTL")

	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("MIGRATIONS_ENABLED", "maybe")
	_, err = NewConfig()
	assert.ErrorContains(t, err, "MIGRATIONS_ENABLED")
}
