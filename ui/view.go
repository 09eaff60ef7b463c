package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/berochitiri/procsnipe/model"
)

func (m Model) View() string {
	state := m.loop.State()

	var body string
	if state.Mode == model.HelpMode {
		body = m.renderHelp()
	} else {
		body = listBoxStyle.Render(m.table.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(state),
		body,
		m.renderFooter(state),
	)
}

func (m Model) renderHeader(state model.ViewState) string {
	sep := separatorStyle.Render(" | ")

	filter := "all"
	if state.FlaggedOnly {
		filter = "games only"
	}

	parts := []string{
		brandStyle.Render("🎯 procsnipe"),
		countStyle.Render(fmt.Sprintf("processes: %d/%d", len(m.loop.View()), m.loop.Total())),
		sortStyle.Render("sort: " + state.SortKey.String()),
		filterStyle.Render(filter),
	}
	if state.Query != "" && state.Mode != model.SearchMode {
		parts = append(parts, filterStyle.Render(fmt.Sprintf("search: %q", state.Query)))
	}
	if m.hasSummary {
		s := m.summary
		line := fmt.Sprintf("mem %s/%s", FormatMemory(s.MemUsed), FormatMemory(s.MemTotal))
		if s.HasLoadAvgs {
			line += fmt.Sprintf("  load %.2f %.2f %.2f", s.Load1, s.Load5, s.Load15)
		}
		if s.UptimeSecs > 0 {
			line += "  up " + FormatUptime(s.UptimeSecs)
		}
		parts = append(parts, summaryStyle.Render(line))
	}

	style := headerBoxStyle
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	return style.Render(strings.Join(parts, sep))
}

func (m Model) renderFooter(state model.ViewState) string {
	var text string
	switch state.Mode {
	case model.SearchMode:
		text = m.loop.SearchView()
	case model.HelpMode:
		text = "viewing help"
	default:
		text = m.help.ShortHelpView(m.loop.Keys().ShortHelp())
		if st := m.loop.Status(); st != "" {
			text += separatorStyle.Render(" | ") + statusStyle.Render(st)
		}
	}

	style := footerBoxStyle
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	return style.Render(text)
}

func (m Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🎯 procsnipe controls"))
	b.WriteString("\n\n")

	keys := m.loop.Keys()
	for _, group := range keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			line := fmt.Sprintf("  %s %s",
				keybindStyle.Render(lipgloss.NewStyle().Width(8).Render(h.Key)),
				keybindDescStyle.Render(h.Desc))
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(keybindDescStyle.Render("Killing system processes can make the machine unstable."))
	b.WriteString("\n")
	b.WriteString(separatorStyle.Render("press ? or esc to close"))

	style := helpBoxStyle
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(b.String())
}
