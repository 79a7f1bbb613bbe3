package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitbuddy/internal/engine"
	"gitbuddy/internal/storage"
	"gitbuddy/internal/ui"
)

type petModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	pet    *storage.PetState
	health *engine.RepoHealth

	// lastInput drives the idle clock: one minute without a keypress
	// and the pet falls asleep.
	lastInput time.Time
	focus     *engine.FocusSession

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	res *engine.ScanResult
	err error
}

type actionMsg struct {
	kind string
	res  *engine.ActionResult
	err  error
}

type focusDoneMsg struct {
	res     *engine.ActionResult
	minutes int
	err     error
}

type tickMsg time.Time

func newPetModel(ctx context.Context, svc *engine.Service) petModel {
	return petModel{
		ctx:       ctx,
		svc:       svc,
		lastInput: time.Now(),
		loading:   true,
		lastLog:   "Waking up…",
	}
}

func (m petModel) Init() tea.Cmd {
	return tea.Batch(m.scanCmd(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m petModel) scanCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Scan(m.ctx)
		return loadedMsg{res: res, err: err}
	}
}

func (m petModel) actionCmd(kind string) tea.Cmd {
	return func() tea.Msg {
		var res *engine.ActionResult
		var err error
		switch kind {
		case "feed":
			res, err = m.svc.Feed(m.ctx)
		case "play":
			res, err = m.svc.Play(m.ctx)
		case "commit":
			var cr *engine.CommitResult
			cr, err = m.svc.SmartCommit(m.ctx, "")
			if cr != nil {
				res = &cr.ActionResult
			}
		}
		return actionMsg{kind: kind, res: res, err: err}
	}
}

func (m petModel) finishFocusCmd(minutes int) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.FinishFocus(m.ctx, minutes)
		return focusDoneMsg{res: res, minutes: minutes, err: err}
	}
}

func (m petModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		if m.focus != nil && !m.focus.Paused() && m.focus.Done(now) {
			minutes := m.focus.Minutes(now)
			m.focus = nil
			m.lastLog = "Focus complete!"
			return m, tea.Batch(m.finishFocusCmd(minutes), tickCmd())
		}
		return m, tickCmd()

	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.lastLog = "Scan failed: " + msg.err.Error()
			return m, nil
		}
		m.pet = msg.res.Pet
		m.health = &msg.res.Health
		m.lastLog = m.describeResult("Scanned", &msg.res.ActionResult)
		return m, nil

	case actionMsg:
		if msg.err != nil {
			if line := engine.PetSpeak(msg.err); line != "" {
				m.lastLog = line
			} else {
				m.lastLog = "Failed: " + msg.err.Error()
			}
			return m, nil
		}
		m.pet = msg.res.Pet
		m.lastLog = m.describeResult(titleCase(msg.kind), msg.res)
		return m, nil

	case focusDoneMsg:
		if msg.err != nil {
			m.lastLog = "Focus save failed: " + msg.err.Error()
			return m, nil
		}
		m.pet = msg.res.Pet
		m.lastLog = m.describeResult(fmt.Sprintf("Focused %dm", msg.minutes), msg.res)
		return m, nil

	case tea.KeyMsg:
		m.lastInput = time.Now()
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "s", "r":
			m.loading = true
			m.lastLog = "Scanning…"
			return m, m.scanCmd()
		case "f":
			return m, m.actionCmd("feed")
		case "p":
			return m, m.actionCmd("play")
		case "c":
			return m, m.actionCmd("commit")
		case "F":
			now := time.Now()
			if m.focus == nil {
				m.focus = engine.NewFocusSession(now, 25)
				m.lastLog = "Focus started (25m). F to finish early, space to pause."
				return m, nil
			}
			minutes := m.focus.Minutes(now)
			m.focus = nil
			if minutes < 1 {
				m.lastLog = "Focus abandoned (under a minute)."
				return m, nil
			}
			return m, m.finishFocusCmd(minutes)
		case " ":
			if m.focus == nil {
				return m, nil
			}
			now := time.Now()
			if m.focus.Paused() {
				m.focus.Resume(now)
				m.lastLog = "Focus resumed."
			} else {
				m.focus.Pause(now)
				m.lastLog = "Focus paused."
			}
			return m, nil
		}
	}
	return m, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (m petModel) describeResult(prefix string, res *engine.ActionResult) string {
	parts := []string{fmt.Sprintf("%s: +%d XP", prefix, res.XPGained)}
	if res.LeveledUp {
		parts = append(parts, ui.BadgeLevelUp)
	}
	for _, def := range res.NewAchievements {
		parts = append(parts, def.Icon+" "+def.Name)
	}
	if res.ChallengeDone != nil {
		parts = append(parts, "challenge done: "+res.ChallengeDone.Name)
	}
	return strings.Join(parts, "  ")
}

func (m petModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading || m.pet == nil {
		return "Waking up your pet…\n"
	}

	idle := time.Since(m.lastInput)
	mood := engine.MoodFor(m.pet.HP, idle)

	sections := []string{ui.RenderPet(m.pet, mood)}

	if m.focus != nil {
		now := time.Now()
		state := "focusing"
		if m.focus.Paused() {
			state = "paused"
		}
		sections = append(sections, fmt.Sprintf("%s %s  %s left  %s",
			ui.IconTarget,
			ui.H2.Render(state),
			m.focus.Remaining(now).Round(time.Second),
			ui.ProgressBar(int(m.focus.Elapsed(now).Seconds()), int(m.focus.Target().Seconds()), 24),
		))
	}

	if m.health != nil {
		sections = append(sections, ui.RenderHealth(*m.health))
	}
	sections = append(sections, ui.RenderChallenge(m.pet.DailyChallenge))

	help := ui.Muted.Render("f feed · p play · c commit · s scan · F focus · space pause · q quit")
	sections = append(sections, help, m.lastLog)

	return strings.Join(sections, "\n") + "\n"
}
