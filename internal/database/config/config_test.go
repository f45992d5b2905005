package config

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festy23/sales_dashboard/pkg/retry"
)

var dbEnvKeys = []string{
	"DB_DRIVER", "DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"DB_PORT", "DB_SSLMODE", "DB_TIMEZONE", "DB_SQLITE_PATH",
}

// setupEnvVars clears the database env vars, applies envVars and returns a restore function.
func setupEnvVars(t *testing.T, envVars map[string]string) func() {
	t.Helper()
	originalEnv := make(map[string]string)
	for _, key := range dbEnvKeys {
		originalEnv[key] = os.Getenv(key)
		os.Unsetenv(key)
	}
	for key, value := range envVars {
		os.Setenv(key, value)
	}
	return func() {
		for key := range envVars {
			os.Unsetenv(key)
		}
		for key, value := range originalEnv {
			if value != "" {
				os.Setenv(key, value)
			}
		}
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		restore := setupEnvVars(t, map[string]string{})
		defer restore()

		cfg := LoadConfigFromEnv()
		expected := Config{
			Driver:     DriverPostgres,
			Host:       "localhost",
			User:       "postgres",
			Password:   "postgres",
			DBName:     "sales_dashboard",
			Port:       "5432",
			SSLMode:    "disable",
			TimeZone:   "UTC",
			SQLitePath: "vendas.db",
		}
		assert.Equal(t, expected, cfg)
	})

	t.Run("custom values", func(t *testing.T) {
		restore := setupEnvVars(t, map[string]string{
			"DB_DRIVER":      "sqlite",
			"DB_HOST":        "db.internal",
			"DB_USER":        "sales",
			"DB_PASSWORD":    "s3cret",
			"DB_NAME":        "dashboard",
			"DB_PORT":        "5433",
			"DB_SSLMODE":     "require",
			"DB_TIMEZONE":    "America/Sao_Paulo",
			"DB_SQLITE_PATH": "/var/lib/sales/vendas.db",
		})
		defer restore()

		cfg := LoadConfigFromEnv()
		assert.Equal(t, DriverSQLite, cfg.Driver)
		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, "sales", cfg.User)
		assert.Equal(t, "s3cret", cfg.Password)
		assert.Equal(t, "dashboard", cfg.DBName)
		assert.Equal(t, "5433", cfg.Port)
		assert.Equal(t, "require", cfg.SSLMode)
		assert.Equal(t, "America/Sao_Paulo", cfg.TimeZone)
		assert.Equal(t, "/var/lib/sales/vendas.db", cfg.SQLitePath)
	})
}

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected string
	}{
		{
			name: "postgres config",
			config: Config{
				Driver:   DriverPostgres,
				Host:     "localhost",
				User:     "postgres",
				Password: "postgres",
				DBName:   "sales_dashboard",
				Port:     "5432",
				SSLMode:  "disable",
				TimeZone: "UTC",
			},
			expected: "host=localhost user=postgres password=postgres dbname=sales_dashboard port=5432 sslmode=disable TimeZone=UTC",
		},
		{
			name:     "sqlite config",
			config:   Config{Driver: DriverSQLite, SQLitePath: "vendas.db"},
			expected: "vendas.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildDSN(tt.config))
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantError bool
	}{
		{"valid postgres", Config{Driver: DriverPostgres, Host: "localhost", DBName: "db"}, false},
		{"postgres without host", Config{Driver: DriverPostgres, DBName: "db"}, true},
		{"valid sqlite", Config{Driver: DriverSQLite, SQLitePath: "vendas.db"}, false},
		{"sqlite without path", Config{Driver: DriverSQLite}, true},
		{"unknown driver", Config{Driver: "mysql"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeError(t *testing.T) {
	t.Run("password in error message", func(t *testing.T) {
		err := fmt.Errorf("connection failed: host=localhost user=test password=secret123 dbname=test")
		result := SanitizeError(err, Config{Password: "secret123"})

		require.NotNil(t, result)
		assert.Contains(t, result.Error(), "failed to connect to database")
		assert.Contains(t, result.Error(), "password=***")
		assert.NotContains(t, result.Error(), "secret123")
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, SanitizeError(nil, Config{Password: "secret"}))
	})

	t.Run("empty password leaves message intact", func(t *testing.T) {
		result := SanitizeError(fmt.Errorf("unable to open database file"), Config{})
		require.NotNil(t, result)
		assert.Contains(t, result.Error(), "unable to open database file")
	})
}

func TestLoadRetryConfigFromEnv(t *testing.T) {
	keys := []string{"DB_RETRY_MAX_ATTEMPTS", "DB_RETRY_INITIAL_DELAY", "DB_RETRY_MAX_DELAY", "DB_RETRY_MULTIPLIER"}
	for _, key := range keys {
		original := os.Getenv(key)
		defer func(key, original string) {
			if original != "" {
				os.Setenv(key, original)
			} else {
				os.Unsetenv(key)
			}
		}(key, original)
	}

	os.Setenv("DB_RETRY_MAX_ATTEMPTS", "3")
	os.Setenv("DB_RETRY_INITIAL_DELAY", "250ms")
	os.Setenv("DB_RETRY_MAX_DELAY", "2s")
	os.Setenv("DB_RETRY_MULTIPLIER", "1.5")

	cfg := LoadRetryConfigFromEnv()
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.InitialDelay)
	assert.Equal(t, 2*time.Second, cfg.MaxDelay)
	assert.Equal(t, 1.5, cfg.Multiplier)
	assert.NotEmpty(t, cfg.RetryableErrors)
}

func TestLoadRetryConfigFromEnv_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("DB_RETRY_MAX_ATTEMPTS", "many")
	t.Setenv("DB_RETRY_INITIAL_DELAY", "soon")
	t.Setenv("DB_RETRY_MAX_DELAY", "")
	t.Setenv("DB_RETRY_MULTIPLIER", "x2")

	defaults := retry.PostgresConfig()
	cfg := LoadRetryConfigFromEnv()

	assert.Equal(t, defaults.MaxAttempts, cfg.MaxAttempts)
	assert.Equal(t, defaults.InitialDelay, cfg.InitialDelay)
	assert.Equal(t, defaults.MaxDelay, cfg.MaxDelay)
	assert.Equal(t, defaults.Multiplier, cfg.Multiplier)
}
