package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"gitbuddy/internal/engine"
)

// RunPet opens the interactive pet screen.
func RunPet(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newPetModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

// RunFocus opens a standalone focus timer for the given length; the
// session is recorded when it completes or is finished early.
func RunFocus(ctx context.Context, svc *engine.Service, out io.Writer, minutes int) error {
	m := newFocusModel(ctx, svc, minutes)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
