package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(heapRows)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Alloc):
			heapRows[m.cursor].alloc(m.agent.Heap)
			m.status = fmt.Sprintf("allocated one %s object", heapRows[m.cursor].name)
			return m, nil

		case key.Matches(msg, m.keys.GC):
			stats := m.agent.RunGC()
			m.lastGC = stats
			m.hasGC = true
			m.status = fmt.Sprintf("gc cycle %d complete", stats.Cycle)
			return m, nil
		}
	}

	return m, nil
}
