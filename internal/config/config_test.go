package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"port": 9090, "api_key": "k", "data_dir": "/tmp/booster"}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "k", cfg.APIKey)
	assert.Equal(t, "/tmp/booster", cfg.DataDir)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `{broken`))
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("BOOSTER_DATA_DIR", "/tmp/data")

	cfg := FromEnv()
	assert.Equal(t, 8088, cfg.Port)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "/tmp/data", cfg.DataDir)
}

func TestFromEnv_BadPortIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	cfg := FromEnv()
	assert.Equal(t, 0, cfg.Port)
}

func TestValidate(t *testing.T) {
	cfg := Config{Port: 8080}
	assert.NoError(t, cfg.Validate())

	cfg = Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	file := writeConfig(t, `{}`)
	cfg = Config{DataDir: file}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "from-flag"}
	merged := cfg.MergeWithDefaults(Config{Port: 8080, APIKey: "from-env", Model: "gemini-1.5-flash"})

	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "from-flag", merged.APIKey)
	assert.Equal(t, "gemini-1.5-flash", merged.Model)
}
