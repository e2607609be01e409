package tui

import (
	"log"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"

	"ulan/internal/character"
)

// screen is one entry of the navigation stack.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (screen, tea.Cmd)
	View() string
}

type newGameMsg struct{}

type popScreenMsg struct{}

type finishedMsg struct {
	char character.Character
}

func newGameCmd() tea.Msg   { return newGameMsg{} }
func popScreenCmd() tea.Msg { return popScreenMsg{} }

// appModel owns the screen stack and the creation result.
type appModel struct {
	rng *rand.Rand

	width  int
	height int

	stack  []screen
	result *character.Character
}

func newAppModel(rng *rand.Rand) appModel {
	return appModel{
		rng:   rng,
		stack: []screen{newMenuModel()},
	}
}

func (m appModel) Init() tea.Cmd {
	return m.top().Init()
}

func (m appModel) top() screen {
	return m.stack[len(m.stack)-1]
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			log.Printf("quit requested")
			return m, tea.Quit
		}
	case newGameMsg:
		log.Printf("character creation started")
		s := newCreationModel(m.rng)
		m.stack = append(m.stack, s)
		return m, s.Init()
	case popScreenMsg:
		if len(m.stack) <= 1 {
			return m, tea.Quit
		}
		log.Printf("screen closed, draft discarded")
		m.stack = m.stack[:len(m.stack)-1]
		return m, nil
	case finishedMsg:
		c := msg.char
		m.result = &c
		log.Printf("character finalized: %s", c.Name)
		return m, tea.Quit
	}

	next, cmd := m.top().Update(msg)
	m.stack[len(m.stack)-1] = next
	return m, cmd
}

func (m appModel) View() string {
	return m.top().View()
}
