// Package alert delivers background monitor notifications.
package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Notifier delivers a single notification.
type Notifier interface {
	Notify(ctx context.Context, msg string) error
}

// Console writes notifications as lines to W.
type Console struct {
	W io.Writer
}

func (c Console) Notify(_ context.Context, msg string) error {
	_, err := fmt.Fprintln(c.W, msg)
	return err
}

// Discord posts notifications to a Discord webhook. An empty URL makes it a
// no-op.
type Discord struct {
	URL    string
	Client *http.Client
}

func NewDiscord(url string) *Discord {
	return &Discord{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (d *Discord) Notify(ctx context.Context, msg string) error {
	if d.URL == "" {
		return nil
	}

	body, err := json.Marshal(map[string]string{"content": msg})
	if err != nil {
		return fmt.Errorf("encode discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("post discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("discord webhook returned %d", resp.StatusCode)
	}
	return nil
}

// Multi sends to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, msg string) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
