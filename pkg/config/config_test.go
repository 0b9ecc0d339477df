package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templeops/temple-stock-api/pkg/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoadPortFromEnv(t *testing.T) {
	t.Setenv("DB_PORT", "5433")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 5433, cfg.DB.Port)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

// A malformed numeric setting must fail startup instead of collapsing to 0.
func TestLoadRejectsMalformedPort(t *testing.T) {
	t.Setenv("DB_PORT", "fivefourthreetwo")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
}

func TestDSNEncodesCredentials(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "temple", Password: "p@ss/word",
		DBName: "temple_stock", SSLMode: "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%2Fword")
	assert.Contains(t, dsn, "sslmode=disable")
}
