package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "APP_PORT", "JWT_SECRET", "JWT_ACCESS_EXPIRY", "CATALOG_SEED_FILE", "CORS_ALLOWED_ORIGIN"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 24*60, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "*", cfg.Catalog.AllowedOrigin)
	assert.Empty(t, cfg.Catalog.SeedFile)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("JWT_ACCESS_EXPIRY", "15")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CATALOG_SEED_FILE", "  ./seed.yaml ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 15, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, "./seed.yaml", cfg.Catalog.SeedFile)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "non-positive expiry", env: map[string]string{"JWT_ACCESS_EXPIRY": "0"}},
		{name: "default secret in production", env: map[string]string{"APP_ENV": "production", "JWT_SECRET": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
