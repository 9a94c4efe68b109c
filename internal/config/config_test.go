package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Fills defaults", func(t *testing.T) {
		// Given: a config with only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)

		// Then: everything else has its default
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 1000, conf.Episodes)
		assert.Equal(t, uint64(0), conf.Seed)
		assert.Equal(t, "random", conf.Player.Kind)
		assert.Equal(t, "random", conf.Opponent.Kind)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads agents and redis", func(t *testing.T) {
		path := writeConfig(t, `
seed: 42
episodes: 10
player:
  name: henry
  kind: greedy
  value-table: henry
  default-value: 0.5
opponent:
  kind: first-empty-o
redis:
  enabled: true
  host: redis
  port: "6380"
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), conf.Seed)
		assert.Equal(t, 10, conf.Episodes)
		assert.Equal(t, Agent{Name: "henry", Kind: "greedy", ValueTable: "henry", DefaultValue: 0.5}, conf.Player)
		assert.Equal(t, "first-empty-o", conf.Opponent.DisplayName())
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Rejects a greedy agent without redis", func(t *testing.T) {
		path := writeConfig(t, "player:\n  kind: greedy\n  value-table: henry\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrGreedyNeedsRedis)
	})

	t.Run("Rejects a greedy agent without a table", func(t *testing.T) {
		path := writeConfig(t, "opponent:\n  kind: greedy\nredis:\n  enabled: true\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrGreedyNeedsTable)
	})

	t.Run("Rejects an unknown kind", func(t *testing.T) {
		path := writeConfig(t, "player:\n  kind: minimax\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownAgentKind)
	})

	t.Run("Rejects non positive episodes", func(t *testing.T) {
		path := writeConfig(t, "episodes: -1\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidEpisodes)
	})

	t.Run("Fails on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
