package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	// getEnv treats empty as unset, so blanking the vars restores the
	// fallbacks even when the developer's shell exports them.
	for _, key := range []string{"PORT", "JWT_EXPIRY", "RESET_TOKEN_EXPIRY", "STORAGE_BUCKET", "STORAGE_USE_SSL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTExpiry)
	assert.Equal(t, time.Hour, cfg.ResetTokenExpiry)
	assert.Equal(t, "hho-uploads", cfg.StorageBucket)
	assert.False(t, cfg.StorageUseSSL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRY", "30m")
	t.Setenv("STORAGE_USE_SSL", "true")
	t.Setenv("DB_HOST", "db.internal")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiry)
	assert.True(t, cfg.StorageUseSSL)
	assert.Contains(t, cfg.DSN(), "host=db.internal")
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "not-a-duration")

	cfg := Load()
	assert.Equal(t, time.Hour, cfg.JWTExpiry)
}
