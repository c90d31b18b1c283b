package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("LATE_CUTOFF", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("APP_TIMEZONE", "UTC")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 9*time.Hour, cfg.Attendance.LateCutoff)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "payroll_system", cfg.Database.DBName)
	assert.Equal(t, "admin@payroll.com", cfg.Seed.AdminEmail)
	assert.Empty(t, cfg.CORS.AllowOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Asia/Jakarta")
	t.Setenv("LATE_CUTOFF", "08:30:00")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", cfg.Attendance.Location.String())
	assert.Equal(t, 8*time.Hour+30*time.Minute, cfg.Attendance.LateCutoff)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowOrigins)
	assert.Contains(t, cfg.Database.DSN(), "port=6543")
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("LATE_CUTOFF", "9am")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("LATE_CUTOFF", "")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "")
	_, err = Load()
	assert.Error(t, err)
}
