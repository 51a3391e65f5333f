package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	p := writeFile(t, "lvtext.yaml", `
log:
  level: debug
batch:
  workers: 8
finder:
  strategy: bruteforce
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format, "unset keys keep defaults")
	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.Equal(t, "bruteforce", cfg.Finder.Strategy)
}

func TestLoad_TOML(t *testing.T) {
	p := writeFile(t, "lvtext.toml", `
[log]
format = "json"

[rle]
max_decoded_len = 4096
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 4096, cfg.RLE.MaxDecodedLen)
	assert.Equal(t, 4, cfg.Batch.Workers)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeFile(t, "lvtext.yml", "batch:\n  workers: 2\n")
	t.Setenv("LVTEXT_BATCH_WORKERS", " 16 ")
	t.Setenv("LVTEXT_LOG_LEVEL", "WARN")
	t.Setenv("LVTEXT_BATCH_OUTPUT", "")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Batch.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Batch.Output, "blank env is ignored")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("UnsupportedExtension", func(t *testing.T) {
		p := writeFile(t, "lvtext.ini", "x=1")
		_, err := Load(p)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("BadEnvInt", func(t *testing.T) {
		t.Setenv("LVTEXT_RLE_MAX_DECODED_LEN", "lots")
		_, err := Load("")
		assert.Error(t, err)
	})
	t.Run("ValidationFails", func(t *testing.T) {
		t.Setenv("LVTEXT_FINDER_STRATEGY", "magic")
		_, err := Load("")
		assert.ErrorContains(t, err, "Strategy")
	})
	t.Run("ZeroWorkers", func(t *testing.T) {
		p := writeFile(t, "lvtext.yaml", "batch:\n  workers: 0\n")
		_, err := Load(p)
		assert.Error(t, err)
	})
}

func TestApplyEnv_Lookup(t *testing.T) {
	env := map[string]string{"LVTEXT_LOG_FORMAT": "JSON"}
	cfg := Default()
	require.NoError(t, applyEnv(&cfg, func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}))
	assert.Equal(t, "json", cfg.Log.Format)
}
