package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/berochitiri/procsnipe/monitor"
	"github.com/berochitiri/procsnipe/proc"
)

const (
	nameWidth = 32
	// room for the color escapes wrapped around a styled name
	nameSlack = 16
	// rows taken by the header box, footer box, list border and table header
	chromeHeight = 10
)

type tickMsg time.Time

// SummaryFunc reads the machine-wide numbers shown in the header.
type SummaryFunc func(ctx context.Context) (proc.SystemSummary, error)

// Options configure a Model.
type Options struct {
	PollTimeout  time.Duration
	Summary      SummaryFunc
	SummaryEvery time.Duration
}

// Model adapts a monitor.Loop to bubbletea. Ticks drive refreshes, key
// messages drive dispatch, and bubbletea renders after every update, all
// on one goroutine.
type Model struct {
	ctx   context.Context
	loop  *monitor.Loop
	table table.Model
	help  help.Model

	poll         time.Duration
	summaryFn    SummaryFunc
	summaryEvery time.Duration
	summaryAt    time.Time
	summary      proc.SystemSummary
	hasSummary   bool

	width  int
	height int
	err    error
}

func NewModel(ctx context.Context, loop *monitor.Loop, opts Options) Model {
	columns := []table.Column{
		{Title: "PID", Width: 8},
		{Title: "NAME", Width: nameWidth + nameSlack},
		{Title: "CPU", Width: 8},
		{Title: "MEMORY", Width: 11},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color("14"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("238")).
		Bold(true)
	t.SetStyles(s)

	if opts.PollTimeout <= 0 {
		opts.PollTimeout = 100 * time.Millisecond
	}
	if opts.SummaryEvery <= 0 {
		opts.SummaryEvery = time.Second
	}

	m := Model{
		ctx:          ctx,
		loop:         loop,
		table:        t,
		help:         help.New(),
		poll:         opts.PollTimeout,
		summaryFn:    opts.Summary,
		summaryEvery: opts.SummaryEvery,
	}
	m.syncTable()
	return m
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.poll)
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Err is the error that stopped the loop, if any.
func (m Model) Err() error {
	return m.err
}
