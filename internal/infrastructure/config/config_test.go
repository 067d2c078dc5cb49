package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"DEVLINK_APP_NAME":                os.Getenv("DEVLINK_APP_NAME"),
		"DEVLINK_APP_ENV":                 os.Getenv("DEVLINK_APP_ENV"),
		"DEVLINK_APP_PORT":                os.Getenv("DEVLINK_APP_PORT"),
		"DEVLINK_DATABASE_HOST":           os.Getenv("DEVLINK_DATABASE_HOST"),
		"DEVLINK_DATABASE_PORT":           os.Getenv("DEVLINK_DATABASE_PORT"),
		"DEVLINK_DATABASE_USER":           os.Getenv("DEVLINK_DATABASE_USER"),
		"DEVLINK_DATABASE_PASSWORD":       os.Getenv("DEVLINK_DATABASE_PASSWORD"),
		"DEVLINK_DATABASE_DBNAME":         os.Getenv("DEVLINK_DATABASE_DBNAME"),
		"DEVLINK_DATABASE_SSLMODE":        os.Getenv("DEVLINK_DATABASE_SSLMODE"),
		"DEVLINK_DATABASE_MAX_OPEN_CONNS": os.Getenv("DEVLINK_DATABASE_MAX_OPEN_CONNS"),
		"DEVLINK_DATABASE_MAX_IDLE_CONNS": os.Getenv("DEVLINK_DATABASE_MAX_IDLE_CONNS"),
		"DEVLINK_JWT_SECRET":              os.Getenv("DEVLINK_JWT_SECRET"),
		"DEVLINK_JWT_TOKEN_LIFETIME":      os.Getenv("DEVLINK_JWT_TOKEN_LIFETIME"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "devlink-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "devlink", cfg.Database.DBName)
		assert.Equal(t, time.Hour, cfg.JWT.TokenLifetime)
		assert.Equal(t, "devlink-backend", cfg.JWT.Issuer)
	})

	t.Run("loads values from environment variables with DEVLINK prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("DEVLINK_APP_NAME", "test-app")
		os.Setenv("DEVLINK_APP_PORT", "9000")
		os.Setenv("DEVLINK_DATABASE_HOST", "testdb.local")
		os.Setenv("DEVLINK_DATABASE_PORT", "5433")
		os.Setenv("DEVLINK_JWT_TOKEN_LIFETIME", "30m")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, 30*time.Minute, cfg.JWT.TokenLifetime)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("DEVLINK_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("DEVLINK_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("zero MaxOpenConns uses default", func(t *testing.T) {
		clearEnv()
		os.Setenv("DEVLINK_DATABASE_MAX_OPEN_CONNS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	originalEnv := map[string]string{
		"DEVLINK_APP_ENV":           os.Getenv("DEVLINK_APP_ENV"),
		"DEVLINK_JWT_SECRET":        os.Getenv("DEVLINK_JWT_SECRET"),
		"DEVLINK_DATABASE_PASSWORD": os.Getenv("DEVLINK_DATABASE_PASSWORD"),
		"DEVLINK_DATABASE_SSLMODE":  os.Getenv("DEVLINK_DATABASE_SSLMODE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("requires jwt secret in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("DEVLINK_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret is required")
	})

	t.Run("requires long jwt secret in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("DEVLINK_APP_ENV", "production")
		os.Setenv("DEVLINK_JWT_SECRET", "short")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})

	t.Run("accepts complete production configuration", func(t *testing.T) {
		clearEnv()
		os.Setenv("DEVLINK_APP_ENV", "production")
		os.Setenv("DEVLINK_JWT_SECRET", "a-production-secret-of-sufficient-length")
		os.Setenv("DEVLINK_DATABASE_PASSWORD", "secret")
		os.Setenv("DEVLINK_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "devlink",
		Password: "p@ss/word",
		DBName:   "devlink",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()

	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss/word")
}
