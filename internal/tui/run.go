package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"

	"ulan/internal/character"
)

type Options struct {
	Rand      *rand.Rand
	LogFile   string
	AltScreen bool
	Input     io.Reader
	Output    io.Writer
}

// Run starts the title menu and returns the finalized character, or nil if
// the player quit before finishing.
func Run(ctx context.Context, opts Options) (*character.Character, error) {
	if opts.LogFile != "" {
		f, err := tea.LogToFile(opts.LogFile, "ulan")
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	rng := opts.Rand
	if rng == nil {
		rng = character.NewRand(0)
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(newAppModel(rng), progOpts...)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run tui: %w", err)
	}
	m, ok := final.(appModel)
	if !ok {
		return nil, nil
	}
	return m.result, nil
}
