package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	header := headerStyle.Render("corevm heap inspector")
	content := m.renderRows()
	status := m.renderStatus()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		status,
	)
}

func (m Model) renderRows() string {
	var b strings.Builder
	for i, row := range heapRows {
		line := fmt.Sprintf("%-18s %s", row.name, countStyle.Render(fmt.Sprintf("%d", row.count(m.agent.Heap))))
		if i == m.cursor {
			line = selectedRowStyle.Render(line)
		} else {
			line = rowStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return paneStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderStatus() string {
	if m.status != "" {
		line := m.status
		if m.hasGC {
			line = gcFlashStyle.Render(line)
		} else {
			line = statusStyle.Render(line)
		}
		return line
	}

	help := statusStyle.Render("↑/↓: navigate │ a: alloc │ g: gc │ ?: help │ q: quit")
	return help
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, line := range [][2]string{
		{"↑/k ↓/j", "move the cursor"},
		{"a", "allocate one object of the selected kind"},
		{"g", "run a gc cycle"},
		{"?", "toggle this help"},
		{"q / ctrl+c", "quit"},
	} {
		b.WriteString(fmt.Sprintf("%-14s %s\n", line[0], line[1]))
	}
	return paneStyle.Render(b.String())
}
