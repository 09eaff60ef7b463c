package config

import "time"

type Config struct {
	RefreshIntervalMS int           `json:"refresh_interval_ms"`
	PollTimeoutMS     int           `json:"poll_timeout_ms"`
	DebounceMS        int           `json:"debounce_ms"`
	Indicators        []string      `json:"indicators"`
	Monitor           MonitorConfig `json:"monitor"`
}

// MonitorConfig drives the background monitor started with --tray.
type MonitorConfig struct {
	IntervalSeconds int               `json:"interval_seconds"`
	CPUThreshold    float64           `json:"cpu_threshold"`
	CooldownSeconds int               `json:"cooldown_seconds"`
	ActiveWebhook   string            `json:"active_webhook"`
	Webhooks        map[string]string `json:"webhooks"`
}

func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalMS) * time.Millisecond
}

func (c *Config) PollTimeout() time.Duration {
	return time.Duration(c.PollTimeoutMS) * time.Millisecond
}

func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

func (m *MonitorConfig) Interval() time.Duration {
	return time.Duration(m.IntervalSeconds) * time.Second
}

func (m *MonitorConfig) Cooldown() time.Duration {
	return time.Duration(m.CooldownSeconds) * time.Second
}

// WebhookURL returns the URL of the active webhook, or "" when none is set.
func (m *MonitorConfig) WebhookURL() string {
	if m.ActiveWebhook == "" {
		return ""
	}
	return m.Webhooks[m.ActiveWebhook]
}
