package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "studentdir.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	t.Run("loads from -config", func(t *testing.T) {
		clearEnv(t)
		path := writeTempJSON(t, map[string]any{
			"api_base_url":    "http://directory.example:9000",
			"request_timeout": "10s",
		})
		withArgs(t, "-config", path)

		cfg := &Config{LogLevel: "info"}
		parseJson(cfg)

		assert.Equal(t, "http://directory.example:9000", cfg.APIBaseURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "info", cfg.LogLevel, "absent keys keep earlier values")
	})

	t.Run("loads from CONFIG_PATH", func(t *testing.T) {
		clearEnv(t)
		path := writeTempJSON(t, map[string]any{"log_file": "dir.log"})
		t.Setenv("CONFIG_PATH", path)
		withArgs(t)

		cfg := &Config{}
		parseJson(cfg)
		assert.Equal(t, "dir.log", cfg.LogFile)
	})

	t.Run("no file, no changes", func(t *testing.T) {
		clearEnv(t)
		withArgs(t)

		cfg := &Config{APIBaseURL: "http://defaults:1234", RequestTimeout: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "http://defaults:1234", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		clearEnv(t)
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		withArgs(t, "-c", bad)

		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		clearEnv(t)
		withArgs(t, "-c", filepath.Join(t.TempDir(), "absent.json"))

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
