package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("FAQ_TEST_KEY", "")
	require.Equal(t, "fallback", GetEnv("FAQ_TEST_KEY", "fallback"))

	t.Setenv("FAQ_TEST_KEY", "set")
	require.Equal(t, "set", GetEnv("FAQ_TEST_KEY", "fallback"))
}

func TestGetEnvIntAndDuration(t *testing.T) {
	t.Setenv("FAQ_TEST_INT", "nope")
	require.Equal(t, 7, GetEnvInt("FAQ_TEST_INT", 7))
	t.Setenv("FAQ_TEST_INT", "9100")
	require.Equal(t, 9100, GetEnvInt("FAQ_TEST_INT", 7))

	t.Setenv("FAQ_TEST_DUR", "-1s")
	require.Equal(t, time.Minute, GetEnvDuration("FAQ_TEST_DUR", time.Minute))
	t.Setenv("FAQ_TEST_DUR", "30s")
	require.Equal(t, 30*time.Second, GetEnvDuration("FAQ_TEST_DUR", time.Minute))
}

func TestLoadFAQConfig(t *testing.T) {
	t.Setenv("FAQ_SOURCE", "postgres")
	t.Setenv("FAQ_DATA_FILE", "")
	t.Setenv("FAQ_CACHE_TTL", "")
	t.Setenv("METRICS_PORT", "")

	cfg := LoadFAQConfig()
	require.Equal(t, SourceFile, cfg.Source)
	require.Empty(t, cfg.DataFile)
	require.Equal(t, 5*time.Minute, cfg.CacheTTL)
	require.Zero(t, cfg.MetricsPort)

	t.Setenv("FAQ_SOURCE", "mysql")
	t.Setenv("FAQ_TITLE", "Help")
	cfg = LoadFAQConfig()
	require.Equal(t, SourceMySQL, cfg.Source)
	require.Equal(t, "Help", cfg.Title)
}
