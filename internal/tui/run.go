package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/sports/internal/lifecycle"
	"github.com/idilsaglam/sports/internal/resources"
	"github.com/idilsaglam/sports/internal/store/statefile"
)

// Options tune the interactive screen.
type Options struct {
	Mouse bool // pointer drag and swipe
	Fresh bool // ignore any saved snapshot
}

// Run creates the screen (restoring from state unless Fresh), runs it until
// quit, then saves its state back to the file.
func Run(data *resources.Data, state *statefile.File, opt Options, progOpts ...tea.ProgramOption) error {
	s := NewScreen(data, opt.Mouse)

	var saved lifecycle.Bundle
	if !opt.Fresh && !state.Empty() {
		saved = state
	}
	if err := lifecycle.Start(s, saved); err != nil {
		return fmt.Errorf("restore state from %s: %w", state.Path(), err)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if opt.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	opts = append(opts, progOpts...)

	if _, err := tea.NewProgram(s, opts...).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	if err := s.OnSaveState(state); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	if err := state.Save(); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}
