package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitbuddy/internal/engine"
	"gitbuddy/internal/ui"
)

// focusModel is the standalone countdown screen behind 'gitbuddy
// focus'. It owns its session value outright; nothing else can touch
// the timer.
type focusModel struct {
	ctx context.Context
	svc *engine.Service

	session *engine.FocusSession
	result  *engine.ActionResult
	saved   bool
	err     error
}

func newFocusModel(ctx context.Context, svc *engine.Service, minutes int) focusModel {
	return focusModel{
		ctx:     ctx,
		svc:     svc,
		session: engine.NewFocusSession(time.Now(), minutes),
	}
}

func (m focusModel) Init() tea.Cmd {
	return tickCmd()
}

func (m focusModel) finishCmd(minutes int) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.FinishFocus(m.ctx, minutes)
		return focusDoneMsg{res: res, minutes: minutes, err: err}
	}
}

func (m focusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		if !m.saved && m.session.Done(now) {
			m.saved = true
			return m, m.finishCmd(m.session.Minutes(now))
		}
		if m.saved {
			return m, nil
		}
		return m, tickCmd()

	case focusDoneMsg:
		m.err = msg.err
		m.result = msg.res
		return m, tea.Quit

	case tea.KeyMsg:
		now := time.Now()
		switch msg.String() {
		case "ctrl+c", "q":
			// Abandon without recording.
			return m, tea.Quit
		case "f", "enter":
			if m.saved {
				return m, nil
			}
			minutes := m.session.Minutes(now)
			if minutes < 1 {
				return m, tea.Quit
			}
			m.saved = true
			return m, m.finishCmd(minutes)
		case " ", "p":
			if m.session.Paused() {
				m.session.Resume(now)
			} else {
				m.session.Pause(now)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m focusModel) View() string {
	if m.err != nil {
		return "Focus save failed: " + m.err.Error() + "\n"
	}
	if m.result != nil {
		return fmt.Sprintf("%s Focus recorded: +%d XP\n", ui.IconTarget, m.result.XPGained)
	}

	now := time.Now()
	state := ui.Good.Render("focusing")
	if m.session.Paused() {
		state = ui.Warn.Render("paused")
	}

	lines := []string{
		ui.Heading(ui.IconTarget, "Focus Session"),
		"",
		fmt.Sprintf("  %s  %s remaining", state, m.session.Remaining(now).Round(time.Second)),
		"  " + ui.ProgressBar(int(m.session.Elapsed(now).Seconds()), int(m.session.Target().Seconds()), 30),
		"",
		ui.Muted.Render("  space pause/resume · f finish early · q abandon"),
	}
	return strings.Join(lines, "\n") + "\n"
}
