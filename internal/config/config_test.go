package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/hackathon/starter-api/internal/config"
)

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"DATABASE_URL", "CORS_ORIGINS", "NEXT_PUBLIC_API_URL", "HTTP_PORT", "LOG_LEVEL", "DB_PING_RATE", "READ_TIMEOUT"} {
		unsetEnv(t, k)
	}

	cfg, err := config.FromEnv("local")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Zero(t, cfg.DBPingRate)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Nil(t, cfg.NextPublicAPIURL)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgresql://u:p@localhost:5432/app")
	t.Setenv("CORS_ORIGINS", " https://a.example.com , ,https://b.example.com ")
	t.Setenv("NEXT_PUBLIC_API_URL", "http://localhost:8000")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_PING_RATE", "5")
	t.Setenv("READ_TIMEOUT", "not-a-duration")

	cfg, err := config.FromEnv("dev")
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "postgresql://u:p@localhost:5432/app", cfg.DatabaseURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
	require.NotNil(t, cfg.NextPublicAPIURL)
	assert.Equal(t, "http://localhost:8000", *cfg.NextPublicAPIURL)
	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 5, cfg.DBPingRate)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout, "invalid durations fall back to the default")
}

func TestFromEnv_EmptyCORSAllowsAll(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := config.FromEnv("local")
	require.NoError(t, err)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestFromEnv_EmptyAPIURLIsNotNull(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_API_URL", "")

	cfg, err := config.FromEnv("local")
	require.NoError(t, err)
	require.NotNil(t, cfg.NextPublicAPIURL)
	assert.Equal(t, "", *cfg.NextPublicAPIURL)
}

func TestFromEnv_BadLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	_, err := config.FromEnv("local")
	assert.Error(t, err)
}

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{" , ,", nil},
		{"a", []string{"a"}},
		{" a ,b,, c ", []string{"a", "b", "c"}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, config.SplitCSV(tc.in), "input %q", tc.in)
	}
}

func TestLoad_DotEnvFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("DATABASE_URL=postgres://from-dotenv/app\nHTTP_PORT=7000\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.staging"),
		[]byte("HTTP_PORT=7100\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("APP_ENV", "Staging")
	t.Setenv("NEXT_PUBLIC_API_URL", "from-env")
	unsetEnv(t, "DATABASE_URL")
	unsetEnv(t, "HTTP_PORT")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.AppEnv)
	assert.Equal(t, "postgres://from-dotenv/app", cfg.DatabaseURL)
	assert.Equal(t, "7100", cfg.HTTPPort, ".env.<APP_ENV> wins over .env")
	assert.Equal(t, "from-env", *cfg.NextPublicAPIURL)
}
