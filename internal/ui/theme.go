package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Ulan theme (CLI + TUI).
// Gold and cyan follow the title screen; the rest are status colors.

const (
	IconTemple  = "🏛️"
	IconSparkle = "✨"
	IconDice    = "🎲"
	IconFlame   = "🔥"
	IconScroll  = "📜"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cCyan    = lipgloss.Color("51")  // cyan
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Subtitle = lipgloss.NewStyle().Foreground(cCyan)
	H2       = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted    = lipgloss.NewStyle().Foreground(cMuted)
	Flavor   = lipgloss.NewStyle().Italic(true).Foreground(cMuted)
	Key      = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good     = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn     = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad      = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold     = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.DoubleBorder()).BorderForeground(cGold).Padding(1, 2)
	ActiveTab   = lipgloss.NewStyle().Bold(true).Foreground(cGold).Underline(true).Padding(0, 1)
	InactiveTab = lipgloss.NewStyle().Foreground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
	Disabled    = lipgloss.NewStyle().Foreground(cMuted).Strikethrough(true)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Budget renders points remaining: green when exactly spent, red when overspent.
func Budget(remaining int) string {
	switch {
	case remaining == 0:
		return Good.Render("0")
	case remaining < 0:
		return Bad.Render(fmt.Sprint(remaining))
	default:
		return Warn.Render(fmt.Sprint(remaining))
	}
}

// Gauge draws a filled/empty bar of width cells for value in [min, max].
func Gauge(value, min, max, width int) string {
	if width <= 0 {
		width = 1
	}
	span := max - min + 1
	if span <= 0 {
		span = 1
	}
	filled := (value - min + 1) * width / span
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return Gold.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}
