package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berochitiri/procsnipe/model"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.RefreshInterval())
	assert.Equal(t, 100*time.Millisecond, cfg.PollTimeout())
	assert.Equal(t, 150*time.Millisecond, cfg.Debounce())
	assert.Equal(t, model.DefaultIndicators, cfg.Indicators)
	assert.Equal(t, 5*time.Second, cfg.Monitor.Interval())
	assert.Equal(t, 60*time.Second, cfg.Monitor.Cooldown())
	assert.Equal(t, 80.0, cfg.Monitor.CPUThreshold)

	_, err = os.Stat(path)
	assert.NoError(t, err, "defaults are written on first load")
}

func TestLoadConfigKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"refresh_interval_ms": 2500, "indicators": ["blender"]}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2500*time.Millisecond, cfg.RefreshInterval())
	assert.Equal(t, 150*time.Millisecond, cfg.Debounce())
	assert.Equal(t, []string{"blender"}, cfg.Indicators)
	assert.NotNil(t, cfg.Monitor.Webhooks)
}

func TestLoadConfigZeroDebounceDisables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"debounce_ms": 0, "poll_timeout_ms": -3}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Zero(t, cfg.Debounce())
	assert.Equal(t, 100*time.Millisecond, cfg.PollTimeout())
}

func TestLoadConfigMalformedIsNotOverwritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	cfg, err := LoadConfig(path)
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, time.Second, cfg.RefreshInterval())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{not json`, string(data))
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := Default()
	cfg.Monitor.Webhooks["ops"] = "https://example.invalid/hook"
	cfg.Monitor.ActiveWebhook = "ops"
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.invalid/hook", loaded.Monitor.WebhookURL())
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvRefreshMS, "250")
	t.Setenv(EnvPollMS, "nope")
	t.Setenv(EnvDebounceMS, "0")

	cfg := Default()
	ApplyEnv(cfg)
	assert.Equal(t, 250*time.Millisecond, cfg.RefreshInterval())
	assert.Equal(t, 100*time.Millisecond, cfg.PollTimeout())
	assert.Zero(t, cfg.Debounce())
}

func TestPathHonoursEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/procsnipe-test.json")
	assert.Equal(t, "/tmp/procsnipe-test.json", Path())
}

func TestWebhookURLWithoutActive(t *testing.T) {
	m := MonitorConfig{Webhooks: map[string]string{"a": "u"}}
	assert.Empty(t, m.WebhookURL())
}
