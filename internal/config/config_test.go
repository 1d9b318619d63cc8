package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(path string, env map[string]string) *configService {
	return &configService{
		filePath: path,
		getenv:   func(k string) string { return env[k] },
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cs := newTestService(filepath.Join(t.TempDir(), "config.toml"), nil)

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPathMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[api]
base_url = "http://localhost:9999"
timeout = "3s"

[browse]
default_manufacturer = "Honda"
stale_policy = "last-issued"
`), 0o600))

	cfg, err := newTestService(path, nil).LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout.Duration)
	assert.Equal(t, 30*time.Second, cfg.API.BreakerCooldown.Duration)
	assert.Equal(t, "Honda", cfg.Browse.DefaultManufacturer)
	assert.Equal(t, 2022, cfg.Browse.DefaultYear)
	assert.Equal(t, 10, cfg.Browse.PageSize)
	assert.Equal(t, PolicyLastIssued, cfg.Browse.StalePolicy)
}

func TestEnvOverrides(t *testing.T) {
	cs := newTestService(filepath.Join(t.TempDir(), "missing.toml"), map[string]string{
		"CARHUB_API_KEY": "from-env",
		"CARHUB_API_URL": "http://env.example",
	})

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.API.Key)
	assert.Equal(t, "http://env.example", cfg.API.BaseURL)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad policy", "[browse]\nstale_policy = \"newest\"\n"},
		{"zero page size", "[browse]\npage_size = 0\n"},
		{"bad duration", "[api]\ntimeout = \"soon\"\n"},
		{"not toml", "this is = = not toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o600))

			_, err := newTestService(path, nil).LoadFromPath(path)
			assert.Error(t, err)
		})
	}
}

func TestValidateWrapsSentinel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Browse.StalePolicy = "random"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cs := newTestService(path, nil)

	cfg := DefaultConfig()
	cfg.Browse.DefaultYear = 2018
	cfg.API.Timeout = Duration{1500 * time.Millisecond}
	require.NoError(t, cs.SaveToPath(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
