package monitor

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/berochitiri/procsnipe/model"
	"github.com/berochitiri/procsnipe/proc"
)

// DefaultDebounce is the minimum gap between two accepted non-navigation
// key presses.
const DefaultDebounce = 150 * time.Millisecond

// LoopOptions tune a Loop. Nil Keys, Logger and Now pick the defaults.
// Debounce is used as given: zero or negative disables debouncing.
type LoopOptions struct {
	Debounce time.Duration
	Keys     *KeyMap
	Logger   *log.Logger
	Now      func() time.Time
}

// Loop is the interaction state machine: it owns the view state, the
// cursor and the current view, and is driven by Tick and Dispatch from a
// single goroutine.
type Loop struct {
	pipeline *Pipeline
	killer   proc.Terminator
	keys     KeyMap
	logger   *log.Logger
	now      func() time.Time

	state  model.ViewState
	search textinput.Model
	sel    Selection
	view   []model.ProcessRecord

	debounce time.Duration
	lastKey  time.Time
	anyKey   bool

	status string
}

// NewLoop creates a loop in normal mode, sorted by CPU.
func NewLoop(p *Pipeline, killer proc.Terminator, opts LoopOptions) *Loop {
	ti := textinput.New()
	ti.Prompt = "search: "
	ti.Focus()

	l := &Loop{
		pipeline: p,
		killer:   killer,
		keys:     DefaultKeyMap(),
		logger:   opts.Logger,
		now:      opts.Now,
		state:    model.DefaultViewState(),
		search:   ti,
		sel:      NewSelection(),
		debounce: opts.Debounce,
	}
	if opts.Keys != nil {
		l.keys = *opts.Keys
	}
	if l.now == nil {
		l.now = time.Now
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard, "", 0)
	}
	if l.debounce < 0 {
		l.debounce = 0
	}
	return l
}

// Tick refreshes the view (rate limited by the pipeline) and re-validates
// the cursor against it. An enumeration error is fatal to the loop.
func (l *Loop) Tick(ctx context.Context) error {
	view, err := l.pipeline.Refresh(ctx, l.state)
	if err != nil {
		return fmt.Errorf("refresh processes: %w", err)
	}
	l.view = view
	l.sel.Reconcile(len(l.view))
	return nil
}

// Dispatch handles one key event and reports whether the loop should quit.
func (l *Loop) Dispatch(ev KeyEvent) bool {
	if ev.Kind != KeyPress {
		return false
	}

	now := l.now()
	if !l.keys.IsNavigation(ev.Msg) && l.anyKey && now.Sub(l.lastKey) < l.debounce {
		return false
	}
	l.lastKey = now
	l.anyKey = true

	switch l.state.Mode {
	case model.SearchMode:
		l.handleSearch(ev.Msg)
	case model.HelpMode:
		l.handleHelp(ev.Msg)
	default:
		return l.handleNormal(ev.Msg)
	}
	return false
}

func (l *Loop) handleNormal(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, l.keys.Quit):
		return true
	case key.Matches(msg, l.keys.Help):
		l.state.Mode = model.HelpMode
	case key.Matches(msg, l.keys.Search):
		l.state.Mode = model.SearchMode
		l.search.Reset()
		l.state.Query = ""
	case key.Matches(msg, l.keys.Down):
		l.sel.Next(len(l.view))
	case key.Matches(msg, l.keys.Up):
		l.sel.Previous(len(l.view))
	case key.Matches(msg, l.keys.Kill):
		l.killSelected()
	case key.Matches(msg, l.keys.Filter):
		l.state.FlaggedOnly = !l.state.FlaggedOnly
	case key.Matches(msg, l.keys.Sort):
		l.state.SortKey = l.state.SortKey.Next()
	}
	return false
}

func (l *Loop) handleSearch(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, l.keys.Cancel):
		l.state.Mode = model.NormalMode
		l.search.Reset()
		l.state.Query = ""
		return
	case key.Matches(msg, l.keys.Confirm):
		l.state.Mode = model.NormalMode
		return
	case key.Matches(msg, l.keys.Backspace), msg.Type == tea.KeyRunes:
	case msg.Type == tea.KeySpace:
		// some backends report space without its rune
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}
	default:
		return
	}
	l.search, _ = l.search.Update(msg)
	l.state.Query = l.search.Value()
}

func (l *Loop) handleHelp(msg tea.KeyMsg) {
	if key.Matches(msg, l.keys.Help, l.keys.Cancel) {
		l.state.Mode = model.NormalMode
	}
}

func (l *Loop) killSelected() {
	rec, ok := l.Selected()
	if !ok {
		return
	}
	if l.killer.Terminate(rec.PID) {
		l.logger.Printf("killed %s (PID %d)", rec.Name, rec.PID)
		l.status = fmt.Sprintf("sent kill to %s (PID %d)", rec.Name, rec.PID)
		l.pipeline.Force()
		return
	}
	l.logger.Printf("could not kill %s (PID %d)", rec.Name, rec.PID)
	l.status = fmt.Sprintf("could not kill %s (PID %d)", rec.Name, rec.PID)
}

// State returns the current view state.
func (l *Loop) State() model.ViewState {
	return l.state
}

// View returns the list as of the last Tick.
func (l *Loop) View() []model.ProcessRecord {
	return l.view
}

// Cursor returns the selected index into View.
func (l *Loop) Cursor() (int, bool) {
	return l.sel.Selected()
}

// Selected returns the record under the cursor.
func (l *Loop) Selected() (model.ProcessRecord, bool) {
	idx, ok := l.sel.Selected()
	if !ok || idx < 0 || idx >= len(l.view) {
		return model.ProcessRecord{}, false
	}
	return l.view[idx], true
}

// SearchView renders the search prompt with its cursor.
func (l *Loop) SearchView() string {
	return l.search.View()
}

// Status is the outcome of the last kill attempt, if any.
func (l *Loop) Status() string {
	return l.status
}

// Total is the number of processes in the last enumeration.
func (l *Loop) Total() int {
	return l.pipeline.Total()
}

// Keys returns the bindings in use.
func (l *Loop) Keys() KeyMap {
	return l.keys
}
