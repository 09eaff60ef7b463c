package monitor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyKind distinguishes presses from the repeat and release events some
// input backends report.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

// KeyEvent is one keyboard event as seen by the loop.
type KeyEvent struct {
	Msg  tea.KeyMsg
	Kind KeyKind
}

// Press wraps msg as a press event.
func Press(msg tea.KeyMsg) KeyEvent {
	return KeyEvent{Msg: msg, Kind: KeyPress}
}

// KeyMap defines the key bindings of the process list.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Actions
	Kill   key.Binding
	Filter key.Binding
	Sort   key.Binding
	Search key.Binding

	// Search and help
	Confirm   key.Binding
	Cancel    key.Binding
	Backspace key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Kill: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "kill selected"),
		),
		Filter: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "games only"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle sort"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// IsNavigation reports whether msg moves the cursor. Navigation keys are
// never debounced.
func (k KeyMap) IsNavigation(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Up, k.Down)
}

// ShortHelp returns key bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the help panel.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Cancel, k.Confirm},
		{k.Up, k.Down},
		{k.Kill, k.Filter, k.Sort},
		{k.Help, k.Quit},
	}
}
