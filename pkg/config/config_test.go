package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DATABASE_URL", "AI_PROVIDER", "ADMIN_PIN", "ADMIN_SESSION_TTL", "DAY_WATCH_INTERVAL", "TIMEZONE"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "household.db", cfg.DBURL)
	assert.Equal(t, "auto", cfg.AIProvider)
	assert.Equal(t, "012295", cfg.AdminPIN)
	assert.Equal(t, 12*time.Hour, cfg.AdminSessionTTL)
	assert.Equal(t, time.Minute, cfg.DayWatchInterval)
	assert.Equal(t, time.Local, cfg.Location)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("AI_PROVIDER", "ollama")
	t.Setenv("ADMIN_SESSION_TTL", "30m")
	t.Setenv("DAY_WATCH_INTERVAL", "not-a-duration")
	t.Setenv("TIMEZONE", "Asia/Hong_Kong")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "ollama", cfg.AIProvider)
	assert.Equal(t, 30*time.Minute, cfg.AdminSessionTTL)
	assert.Equal(t, time.Minute, cfg.DayWatchInterval)
	assert.Equal(t, "Asia/Hong_Kong", cfg.Location.String())
}

func TestValidateRejectsBadPIN(t *testing.T) {
	for _, pin := range []string{"12345", "1234567", "12a456"} {
		cfg := &Config{DBDriver: "sqlite", AIProvider: "auto", AdminPIN: pin, DayWatchInterval: time.Minute}
		assert.Error(t, cfg.Validate(), pin)
	}
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := &Config{DBDriver: "mysql", AIProvider: "auto", AdminPIN: "123456", DayWatchInterval: time.Minute}
	assert.Error(t, cfg.Validate())
}
