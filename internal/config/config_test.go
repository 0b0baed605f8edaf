package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HRMS_DATABASE__URI", "mongodb://localhost:27017")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "hrms_db", cfg.Database.Name)
	assert.Equal(t, DefaultCORSAllowedOrigins, cfg.Server.CORSAllowedOrigins)
	assert.False(t, cfg.JobsEnabled())

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, 100*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	assert.False(t, cfg.Observability.NewRelicEnabled())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("HRMS_PRIMARY__ENV", "production")
	t.Setenv("HRMS_SERVER__PORT", "9090")
	t.Setenv("HRMS_SERVER__READ_TIMEOUT", "15")
	t.Setenv("HRMS_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("HRMS_DATABASE__URI", "mongodb://db:27017")
	t.Setenv("HRMS_DATABASE__NAME", "hr")
	t.Setenv("HRMS_REDIS__ADDRESS", "redis:6379")
	t.Setenv("HRMS_INTEGRATION__RESEND_API_KEY", "re_test")
	t.Setenv("HRMS_OBSERVABILITY__LOGGING__LEVEL", "warn")
	t.Setenv("HRMS_OBSERVABILITY__LOGGING__SLOW_QUERY_THRESHOLD", "250ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "hr", cfg.Database.Name)
	assert.True(t, cfg.JobsEnabled())

	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
	assert.Equal(t, "warn", cfg.Observability.GetLogLevel())
	assert.Equal(t, 250*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
}

func TestLoadConfig_MissingDatabaseURI(t *testing.T) {
	t.Setenv("HRMS_DATABASE__URI", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("HRMS_DATABASE__URI", "mongodb://localhost:27017")
	t.Setenv("HRMS_OBSERVABILITY__LOGGING__LEVEL", "verbose")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestObservabilityConfig_HealthCheckEnabled(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.True(t, cfg.HealthCheckEnabled("database"))
	assert.True(t, cfg.HealthCheckEnabled("redis"))
	assert.False(t, cfg.HealthCheckEnabled("queue"))

	cfg.HealthChecks.Enabled = false
	assert.False(t, cfg.HealthCheckEnabled("database"))
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.read_timeout", envKey("HRMS_SERVER__READ_TIMEOUT"))
	assert.Equal(t, "observability.new_relic.license_key", envKey("HRMS_OBSERVABILITY__NEW_RELIC__LICENSE_KEY"))
}

func TestDefaults_DoNotShareSlices(t *testing.T) {
	want := append([]string(nil), DefaultCORSAllowedOrigins...)

	cfg := Defaults()
	cfg.Server.CORSAllowedOrigins[0] = "https://changed.example.com"
	cfg.Observability.HealthChecks.Checks[0] = "changed"

	assert.Equal(t, want, DefaultCORSAllowedOrigins)
	assert.Equal(t, want, Defaults().Server.CORSAllowedOrigins)
	assert.Equal(t, []string{"database", "redis"}, Defaults().Observability.HealthChecks.Checks)
}

func TestLoadConfig_OverrideKeepsDefaultOrigins(t *testing.T) {
	want := append([]string(nil), DefaultCORSAllowedOrigins...)

	t.Setenv("HRMS_DATABASE__URI", "mongodb://localhost:27017")
	t.Setenv("HRMS_SERVER__CORS_ALLOWED_ORIGINS", "https://x.example.com,https://y.example.com")

	_, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, want, DefaultCORSAllowedOrigins)
}
