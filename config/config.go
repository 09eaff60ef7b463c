package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/berochitiri/procsnipe/model"
)

const (
	EnvConfigPath = "PROCSNIPE_CONFIG"
	EnvRefreshMS  = "PROCSNIPE_REFRESH_MS"
	EnvPollMS     = "PROCSNIPE_POLL_MS"
	EnvDebounceMS = "PROCSNIPE_DEBOUNCE_MS"
)

// DefaultPath is ~/.procsnipe/config.json.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".procsnipe", "config.json")
}

// Path returns the config location, honouring PROCSNIPE_CONFIG.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath()
}

// Load reads .env if present, then the config file at Path, then applies
// environment overrides. The returned config is always usable; a non-nil
// error explains why defaults were used.
func Load() (*Config, error) {
	// a missing .env is normal
	_ = godotenv.Load()

	cfg, err := LoadConfig(Path())
	ApplyEnv(cfg)
	return cfg, err
}

// LoadConfig reads path. A missing file is created with the defaults.
// A malformed file is left untouched and the defaults are returned with
// the parse error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := defaultConfig()
		if err := SaveConfig(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides timing fields from the environment. Unparseable
// values are ignored.
func ApplyEnv(cfg *Config) {
	if v, ok := envInt(EnvRefreshMS); ok {
		cfg.RefreshIntervalMS = v
	}
	if v, ok := envInt(EnvPollMS); ok {
		cfg.PollTimeoutMS = v
	}
	if v, ok := envInt(EnvDebounceMS); ok {
		cfg.DebounceMS = v
	}
	cfg.normalize()
}

func envInt(key string) (int, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func defaultConfig() *Config {
	return &Config{
		RefreshIntervalMS: 1000,
		PollTimeoutMS:     100,
		DebounceMS:        150,
		Indicators:        append([]string(nil), model.DefaultIndicators...),
		Monitor: MonitorConfig{
			IntervalSeconds: 5,
			CPUThreshold:    80,
			CooldownSeconds: 60,
			ActiveWebhook:   "",
			Webhooks:        map[string]string{},
		},
	}
}

// Default returns a fresh copy of the built-in configuration.
func Default() *Config {
	return defaultConfig()
}

// normalize replaces out-of-range values with defaults. A zero debounce is
// valid and disables debouncing.
func (c *Config) normalize() {
	def := defaultConfig()
	if c.RefreshIntervalMS <= 0 {
		c.RefreshIntervalMS = def.RefreshIntervalMS
	}
	if c.PollTimeoutMS <= 0 {
		c.PollTimeoutMS = def.PollTimeoutMS
	}
	if c.DebounceMS < 0 {
		c.DebounceMS = def.DebounceMS
	}
	if c.Indicators == nil {
		c.Indicators = def.Indicators
	}
	if c.Monitor.IntervalSeconds <= 0 {
		c.Monitor.IntervalSeconds = def.Monitor.IntervalSeconds
	}
	if c.Monitor.CPUThreshold <= 0 {
		c.Monitor.CPUThreshold = def.Monitor.CPUThreshold
	}
	if c.Monitor.CooldownSeconds < 0 {
		c.Monitor.CooldownSeconds = def.Monitor.CooldownSeconds
	}
	if c.Monitor.Webhooks == nil {
		c.Monitor.Webhooks = map[string]string{}
	}
}
