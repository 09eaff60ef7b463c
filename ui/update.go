package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/berochitiri/procsnipe/model"
	"github.com/berochitiri/procsnipe/monitor"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loop.Dispatch(monitor.Press(msg)) {
			return m, tea.Quit
		}
		// rebuild from the cached snapshot so the frame matches the new state
		if err := m.loop.Tick(m.ctx); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.syncTable()
		return m, nil

	case tickMsg:
		if err := m.loop.Tick(m.ctx); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.refreshSummary(time.Time(msg))
		m.syncTable()
		return m, tickCmd(m.poll)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-chromeHeight, 3))
		return m, nil
	}
	return m, nil
}

func (m *Model) refreshSummary(now time.Time) {
	if m.summaryFn == nil || (m.hasSummary && now.Sub(m.summaryAt) < m.summaryEvery) {
		return
	}
	s, err := m.summaryFn(m.ctx)
	if err != nil {
		return
	}
	m.summary = s
	m.summaryAt = now
	m.hasSummary = true
}

// syncTable copies the loop's view and cursor into the table widget.
func (m *Model) syncTable() {
	m.table.SetRows(buildRows(m.loop.View()))
	if idx, ok := m.loop.Cursor(); ok {
		m.table.SetCursor(idx)
	} else {
		m.table.SetCursor(0)
	}
}

func buildRows(view []model.ProcessRecord) []table.Row {
	rows := make([]table.Row, 0, len(view))
	for _, r := range view {
		name := Truncate(r.Name, nameWidth)
		switch {
		case r.Flagged:
			name = flaggedStyle.Render(name)
		case r.CPUPercent > 50:
			name = highCPUStyle.Render(name)
		case r.CPUPercent > 20:
			name = medCPUStyle.Render(name)
		}

		rows = append(rows, table.Row{
			fmt.Sprintf("%d", r.PID),
			name,
			FormatCPU(r.CPUPercent),
			FormatMemory(r.MemoryBytes),
		})
	}
	return rows
}
