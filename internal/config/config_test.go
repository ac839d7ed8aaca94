package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Defaults fill what the file omits", func(t *testing.T) {
		// Given: a config file with only the redis host
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("redis:\n  host: cache\n"), 0o600))

		// When: loading it
		conf := MustLoad(path)

		// Then: the host is read and everything else falls back to defaults
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, 500*time.Millisecond, conf.Bot.ThinkingTime)
		assert.Equal(t, 24*time.Hour, conf.Redis.SessionTTL)
		assert.False(t, conf.Telemetry.Enabled())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("bot:\n  thinking-time: 1s\n"), 0o600))
		t.Setenv("BOT_THINKING_TIME", "250ms")

		conf := MustLoad(path)

		assert.Equal(t, 250*time.Millisecond, conf.Bot.ThinkingTime)
	})

	t.Run("Missing file panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
