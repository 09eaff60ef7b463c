package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/berochitiri/procsnipe/config"
	"github.com/berochitiri/procsnipe/model"
	"github.com/berochitiri/procsnipe/monitor"
	"github.com/berochitiri/procsnipe/proc"
)

var (
	// ErrNotTerminal means the interactive mode was started without a TTY.
	ErrNotTerminal = errors.New("not a terminal")
	// ErrLoopPanic wraps a panic raised inside the interactive loop.
	ErrLoopPanic = errors.New("interactive loop panicked")
)

// Engine owns the terminal session around one interactive run.
type Engine struct {
	source proc.Source
	cfg    *config.Config
	logger *log.Logger
}

func NewEngine(source proc.Source, cfg *config.Config, logger *log.Logger) *Engine {
	return &Engine{source: source, cfg: cfg, logger: logger}
}

// Run takes over the terminal until the user quits. The terminal state
// saved on entry is restored on every exit path, including panics.
func (e *Engine) Run(ctx context.Context) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("%w: stdin", ErrNotTerminal)
	}
	saved, err := term.GetState(fd)
	if err != nil {
		return fmt.Errorf("save terminal state: %w", err)
	}

	pipeline := monitor.NewPipeline(e.source, model.NewClassifier(e.cfg.Indicators), e.cfg.RefreshInterval())
	loop := monitor.NewLoop(pipeline, e.source, monitor.LoopOptions{
		Debounce: e.cfg.Debounce(),
		Logger:   e.logger,
	})
	if err := loop.Tick(ctx); err != nil {
		return err
	}

	m := NewModel(ctx, loop, Options{
		PollTimeout:  e.cfg.PollTimeout(),
		Summary:      proc.Summary,
		SummaryEvery: e.cfg.RefreshInterval(),
	})
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	return guard(func() error {
		final, err := program.Run()
		if err != nil {
			return fmt.Errorf("run interactive loop: %w", err)
		}
		if fm, ok := final.(Model); ok {
			return fm.Err()
		}
		return nil
	}, func() {
		if err := term.Restore(fd, saved); err != nil {
			e.logger.Printf("restore terminal: %v", err)
		}
	})
}

// guard runs fn and always runs release afterwards. A panic in fn becomes
// an ErrLoopPanic error once release has run.
func guard(fn func() error, release func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrLoopPanic, r)
		}
		release()
	}()
	return fn()
}
