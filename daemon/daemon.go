// Package daemon runs the background monitor: a slow enumeration loop that
// notifies about CPU hogs and running games instead of drawing a list.
package daemon

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/berochitiri/procsnipe/alert"
	"github.com/berochitiri/procsnipe/config"
	"github.com/berochitiri/procsnipe/model"
	"github.com/berochitiri/procsnipe/proc"
)

// HighCPU is a process above the configured CPU threshold.
type HighCPU struct {
	PID  int32
	Name string
	CPU  float64
}

// Report is the outcome of one Check.
type Report struct {
	High     []HighCPU
	Game     string
	Notified []string
}

type Daemon struct {
	source   proc.Enumerator
	notifier alert.Notifier
	logger   *log.Logger
	cfgPath  string
	now      func() time.Time

	mu         sync.Mutex
	cfg        *config.Config
	classifier *model.Classifier
	reloaded   chan struct{}

	lastAlert  time.Time
	alerted    bool
	gameActive bool
}

// New creates a daemon over source. cfgPath is watched for changes when
// non-empty.
func New(source proc.Enumerator, cfg *config.Config, cfgPath string, notifier alert.Notifier, logger *log.Logger) *Daemon {
	return &Daemon{
		source:     source,
		notifier:   notifier,
		logger:     logger,
		cfgPath:    cfgPath,
		now:        time.Now,
		cfg:        cfg,
		classifier: model.NewClassifier(cfg.Indicators),
		reloaded:   make(chan struct{}, 1),
	}
}

// Run checks the process table right away and then every monitor interval
// until ctx is done.
func (d *Daemon) Run(ctx context.Context) error {
	if d.cfgPath != "" {
		go d.watchConfig(ctx)
	}

	interval := d.config().Monitor.Interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.logger.Printf("monitoring every %v", interval)

	if _, err := d.Check(ctx); err != nil {
		d.logger.Printf("check failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-d.reloaded:
			if next := d.config().Monitor.Interval(); next != interval {
				d.logger.Printf("interval updated: %v -> %v", interval, next)
				interval = next
				ticker.Reset(interval)
			}

		case <-ticker.C:
			if _, err := d.Check(ctx); err != nil {
				d.logger.Printf("check failed: %v", err)
			}
		}
	}
}

// Check enumerates once and sends whatever notifications are due.
func (d *Daemon) Check(ctx context.Context) (Report, error) {
	var rep Report

	raw, err := d.source.Enumerate(ctx)
	if err != nil {
		return rep, fmt.Errorf("enumerate: %w", err)
	}

	cfg := d.config()
	classifier := d.currentClassifier()

	for _, p := range raw {
		if p.CPUPercent > cfg.Monitor.CPUThreshold {
			rep.High = append(rep.High, HighCPU{PID: p.PID, Name: p.Name, CPU: p.CPUPercent})
		}
		if rep.Game == "" && classifier.Classify(p.Name) {
			rep.Game = p.Name
		}
	}
	sort.SliceStable(rep.High, func(i, j int) bool {
		return rep.High[i].CPU > rep.High[j].CPU
	})

	now := d.now()
	if len(rep.High) > 0 && (!d.alerted || now.Sub(d.lastAlert) >= cfg.Monitor.Cooldown()) {
		top := rep.High[0]
		rep.Notified = append(rep.Notified, d.send(ctx, fmt.Sprintf("⚠️  High CPU: %s (%.1f%%)", top.Name, top.CPU)))
		d.lastAlert = now
		d.alerted = true
	}

	if rep.Game != "" && !d.gameActive {
		rep.Notified = append(rep.Notified, d.send(ctx, fmt.Sprintf("🎮 Game detected: %s", rep.Game)))
	}
	d.gameActive = rep.Game != ""

	return rep, nil
}

func (d *Daemon) send(ctx context.Context, msg string) string {
	if err := d.notifier.Notify(ctx, msg); err != nil {
		d.logger.Printf("notify: %v", err)
	}
	return msg
}

func (d *Daemon) config() *config.Config {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cfg
}

func (d *Daemon) currentClassifier() *model.Classifier {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.classifier
}

// Reload swaps in cfg and wakes Run so it can pick up a new interval.
func (d *Daemon) Reload(cfg *config.Config) {
	d.mu.Lock()
	d.cfg = cfg
	d.classifier = model.NewClassifier(cfg.Indicators)
	d.mu.Unlock()

	select {
	case d.reloaded <- struct{}{}:
	default:
	}
}

// watchConfig watches the directory rather than the file so that editors
// replacing the file by rename are noticed too.
func (d *Daemon) watchConfig(ctx context.Context) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		d.logger.Printf("config watch disabled: %v", err)
		return
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(d.cfgPath)); err != nil {
		d.logger.Printf("config watch disabled: %v", err)
		return
	}

	target := filepath.Clean(d.cfgPath)
	for {
		select {
		case <-ctx.Done():
			return

		case e, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != target || !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				continue
			}
			cfg, err := config.LoadConfig(d.cfgPath)
			if err != nil {
				d.logger.Printf("config reload failed: %v", err)
				continue
			}
			config.ApplyEnv(cfg)
			d.Reload(cfg)
			d.logger.Println("config reloaded")

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			d.logger.Printf("config watch: %v", err)
		}
	}
}
