package tui

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ulan/internal/character"
	"ulan/internal/ui"
)

type tab int

const (
	tabName tab = iota
	tabAttributes
	tabFervor
	tabCount
)

func (t tab) String() string {
	switch t {
	case tabName:
		return "Name"
	case tabAttributes:
		return "Attributes"
	case tabFervor:
		return "Divine Fervor"
	default:
		return "?"
	}
}

type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeWarn
)

type creationModel struct {
	sheet *character.Sheet
	rng   *rand.Rand

	tab      tab
	selected int
	name     textinput.Model
	showHelp bool

	notice      string
	noticeLevel noticeLevel
}

func newCreationModel(rng *rand.Rand) creationModel {
	ti := textinput.New()
	ti.Placeholder = "Enter your name..."
	ti.CharLimit = character.MaxNameLength
	ti.Width = character.MaxNameLength
	ti.Focus()

	return creationModel{
		sheet: character.NewSheet(),
		rng:   rng,
		tab:   tabName,
		name:  ti,
	}
}

func (m creationModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m creationModel) Update(msg tea.Msg) (screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.tab == tabName {
			var cmd tea.Cmd
			m.name, cmd = m.name.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.String() {
	case "esc":
		return m, popScreenCmd
	case "tab":
		m.notice = ""
		return m.switchTab((m.tab + 1) % tabCount)
	case "shift+tab":
		m.notice = ""
		return m.switchTab((m.tab + tabCount - 1) % tabCount)
	case "enter", "ctrl+s":
		return m.submit()
	}

	switch m.tab {
	case tabName:
		return m.updateName(key)
	case tabAttributes:
		return m.updateAttributes(key)
	case tabFervor:
		return m.updateFervor(key)
	}
	return m, nil
}

func (m creationModel) switchTab(t tab) (screen, tea.Cmd) {
	m.tab = t
	if t == tabName {
		cmd := m.name.Focus()
		return m, cmd
	}
	m.name.Blur()
	return m, nil
}

func (m creationModel) updateName(key tea.KeyMsg) (screen, tea.Cmd) {
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(key)
	m.sheet.SetName(m.name.Value())
	if m.noticeLevel == noticeWarn && strings.TrimSpace(m.name.Value()) != "" {
		m.notice = ""
	}
	return m, cmd
}

func (m creationModel) updateAttributes(key tea.KeyMsg) (screen, tea.Cmd) {
	stat := character.AllStats[m.selected]
	switch key.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(character.AllStats)-1 {
			m.selected++
		}
	case "+", "=", "right", "l":
		if !m.sheet.Increase(stat) {
			m.setNotice(noticeWarn, increaseRefusal(m.sheet, stat))
		} else {
			m.notice = ""
		}
	case "-", "left", "h":
		if !m.sheet.Decrease(stat) {
			m.setNotice(noticeWarn, fmt.Sprintf("%s cannot go below %d.", stat.Label(), character.MinScore))
		} else {
			m.notice = ""
		}
	case "r":
		m.sheet.Randomize(m.rng)
		log.Printf("randomized: %v", m.sheet.Scores())
		m.setNotice(noticeInfo, "The gods cast the bones.")
	case "x":
		m.sheet.ResetScores()
		m.setNotice(noticeInfo, "Attributes reset.")
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func increaseRefusal(s *character.Sheet, stat character.Stat) string {
	v := s.Value(stat)
	if v >= character.MaxScore {
		return fmt.Sprintf("%s is already at %d.", stat.Label(), character.MaxScore)
	}
	return fmt.Sprintf("Raising %s to %d needs %d points (%d left).", stat.Label(), v+1, character.MarginalCost(v), s.PointsRemaining())
}

func (m creationModel) updateFervor(key tea.KeyMsg) (screen, tea.Cmd) {
	switch key.String() {
	case "+", "=", "right", "l", "up", "k":
		m.sheet.IncreaseFervor()
	case "-", "left", "h", "down", "j":
		m.sheet.DecreaseFervor()
	case "home", "g":
		m.sheet.SetFervorMin()
	case "end", "G":
		m.sheet.SetFervorMax()
	}
	return m, nil
}

// submit tries to finalize and sends the player to whichever tab needs fixing.
func (m creationModel) submit() (screen, tea.Cmd) {
	m.sheet.SetName(m.name.Value())
	c, err := m.sheet.Finalize()

	var missing character.MissingNameError
	var unspent character.UnspentPointsError
	switch {
	case errors.As(err, &missing):
		m.setNotice(noticeWarn, "You must enter a name!")
		return m.switchTab(tabName)
	case errors.As(err, &unspent):
		m.setNotice(noticeWarn, unspentNotice(unspent.Remaining))
		return m.switchTab(tabAttributes)
	case err != nil:
		m.setNotice(noticeWarn, err.Error())
		return m, nil
	}

	m.setNotice(noticeInfo, fmt.Sprintf("Welcome, %s!", c.Name))
	return m, func() tea.Msg { return finishedMsg{char: c} }
}

func unspentNotice(remaining int) string {
	if remaining < 0 {
		return fmt.Sprintf("You have overspent by %d points.", -remaining)
	}
	if remaining == 1 {
		return "You still have 1 point to spend."
	}
	return fmt.Sprintf("You still have %d points to spend.", remaining)
}

func (m *creationModel) setNotice(level noticeLevel, text string) {
	m.noticeLevel = level
	m.notice = text
}

func (m creationModel) View() string {
	var b strings.Builder
	b.WriteString(ui.Title.Render("ULAN - CHARACTER CREATION") + "\n")
	b.WriteString(ui.Subtitle.Render("Realm of 1001 Gods") + "\n\n")
	b.WriteString(m.renderTabs() + "\n\n")

	switch m.tab {
	case tabName:
		b.WriteString(m.renderName())
	case tabAttributes:
		b.WriteString(m.renderAttributes())
	case tabFervor:
		b.WriteString(m.renderFervor())
	}

	b.WriteString("\n\n" + m.renderFooter())
	return ui.Panel.Width(70).Render(b.String())
}

func (m creationModel) renderTabs() string {
	var tabs []string
	for t := tab(0); t < tabCount; t++ {
		if t == m.tab {
			tabs = append(tabs, ui.ActiveTab.Render(t.String()))
		} else {
			tabs = append(tabs, ui.InactiveTab.Render(t.String()))
		}
	}
	return strings.Join(tabs, ui.Muted.Render("│"))
}

func (m creationModel) renderName() string {
	lines := []string{
		"What shall the mortals call you?",
		"",
		m.name.View(),
		"",
		ui.Flavor.Render("Your name echoes through the realm. Choose one that"),
		ui.Flavor.Render("strikes fear into your enemies and inspires your allies."),
	}
	return strings.Join(lines, "\n")
}

func (m creationModel) renderAttributes() string {
	s := m.sheet
	lines := []string{
		fmt.Sprintf("%s  %s",
			ui.LabelValue("Spent", fmt.Sprintf("%d/%d", s.PointsSpent(), character.PointBudget)),
			ui.Key.Render("Remaining:")+" "+ui.Budget(s.PointsRemaining())),
		"",
	}
	for i, st := range character.AllStats {
		v := s.Value(st)
		minus := ui.Muted.Render("[-]")
		if s.CanDecrease(st) {
			minus = ui.Key.Render("[-]")
		}
		plus := ui.Muted.Render("[+]")
		if s.CanIncrease(st) {
			plus = ui.Key.Render("[+]")
		}
		row := fmt.Sprintf("%s %-13s %2d  cost %d", st.Abbrev(), st.Label(), v, character.StatCost(v))
		if i == m.selected {
			row = ui.SelectedRow.Render("> " + row)
		} else {
			row = "  " + row
		}
		lines = append(lines, fmt.Sprintf("%s  %s %s", row, minus, plus))
	}
	if m.showHelp {
		lines = append(lines, "", renderCostHelp())
	}
	return strings.Join(lines, "\n")
}

// renderCostHelp lists each score with its total and step cost.
func renderCostHelp() string {
	lines := []string{ui.H2.Render("Score  Total  Step")}
	for _, row := range character.CostTable() {
		step := "-"
		if row.Marginal > 0 {
			step = fmt.Sprintf("+%d", row.Marginal)
		}
		lines = append(lines, fmt.Sprintf("%5d  %5d  %4s", row.Value, row.Cost, step))
	}
	return strings.Join(lines, "\n")
}

func (m creationModel) renderFervor() string {
	f := m.sheet.DivineFervor()
	lines := []string{
		ui.Heading(ui.IconFlame, "Divine Fervor"),
		"",
		fmt.Sprintf("%s %2d/%d", ui.Gauge(f, character.MinFervor, character.MaxFervor, 20), f, character.MaxFervor),
		"",
		ui.Flavor.Render("How fiercely do the gods burn within you?"),
	}
	return strings.Join(lines, "\n")
}

func (m creationModel) renderFooter() string {
	var keys string
	switch m.tab {
	case tabName:
		keys = "[TAB] Next  [ENTER] Begin Your Journey  [ESC] Return to Menu"
	case tabAttributes:
		keys = "[↑/↓] Select  [+/-] Adjust  [R] Randomize  [X] Reset  [?] Costs  [TAB] Next  [ENTER] Begin  [ESC] Menu"
	case tabFervor:
		keys = "[+/-] Adjust  [HOME/END] Min/Max  [TAB] Next  [ENTER] Begin  [ESC] Menu"
	}
	out := ui.Muted.Render(keys)
	if m.notice == "" {
		return out
	}
	if m.noticeLevel == noticeWarn {
		return ui.Warn.Render(ui.IconWarn+" "+m.notice) + "\n" + out
	}
	return ui.Good.Render(ui.IconInfo+" "+m.notice) + "\n" + out
}
