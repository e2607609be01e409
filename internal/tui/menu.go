package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ulan/internal/ui"
)

type menuItem struct {
	label   string
	enabled bool
	action  tea.Cmd
}

type menuModel struct {
	items    []menuItem
	selected int
}

func newMenuModel() menuModel {
	return menuModel{
		items: []menuItem{
			{label: "New Game", enabled: true, action: newGameCmd},
			{label: "Load Game"},
			{label: "Settings"},
			{label: "Quit", enabled: true, action: tea.Quit},
		},
	}
}

func (m menuModel) Init() tea.Cmd { return nil }

func (m menuModel) Update(msg tea.Msg) (screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "n":
		return m, newGameCmd
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.selected = m.step(-1)
	case "down", "j":
		m.selected = m.step(1)
	case "enter", " ":
		item := m.items[m.selected]
		if item.enabled {
			return m, item.action
		}
	}
	return m, nil
}

// step moves the cursor by dir, skipping disabled entries.
func (m menuModel) step(dir int) int {
	i := m.selected
	for range m.items {
		i += dir
		if i < 0 || i >= len(m.items) {
			return m.selected
		}
		if m.items[i].enabled {
			return i
		}
	}
	return m.selected
}

func (m menuModel) View() string {
	var b strings.Builder
	b.WriteString(ui.Title.Render("ULAN") + "\n")
	b.WriteString(ui.Subtitle.Render("Realm of 1001 Gods") + "\n\n")
	for i, item := range m.items {
		label := "  " + item.label
		switch {
		case !item.enabled:
			label = ui.Disabled.Render(label)
		case i == m.selected:
			label = ui.SelectedRow.Render("> " + item.label)
		}
		b.WriteString(label + "\n")
	}
	b.WriteString("\n" + ui.Flavor.Render("The gods await your arrival...") + "\n")
	b.WriteString(ui.Muted.Render("[N] New Game  [Q] Quit"))
	return ui.Panel.Width(60).Align(lipgloss.Center).Render(b.String())
}
