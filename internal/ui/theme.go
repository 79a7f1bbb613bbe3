package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitbuddy/internal/engine"
)

// Gitbuddy theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconPaw      = "🐾"
	IconSparkle  = "✨"
	IconHeart    = "❤️"
	IconFood     = "🍖"
	IconTrophy   = "🏆"
	IconBolt     = "⚡"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconScope    = "🩺"
	IconTarget   = "🎯"
	IconFire     = "🔥"
	IconZzz      = "💤"
	IconCalendar = "📅"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
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

// StatusText renders a health check tier in its color.
func StatusText(status engine.CheckStatus) string {
	switch status {
	case engine.StatusGreat:
		return Good.Render("great")
	case engine.StatusOK:
		return H2.Render("ok")
	case engine.StatusWarning:
		return Warn.Render("warning")
	case engine.StatusBad:
		return Bad.Render("bad")
	default:
		return Muted.Render(string(status))
	}
}

// MoodText renders a mood in a fitting color.
func MoodText(mood engine.Mood) string {
	switch mood {
	case engine.MoodExcited:
		return Gold.Render("excited")
	case engine.MoodHappy:
		return Good.Render("happy")
	case engine.MoodNeutral:
		return H2.Render("neutral")
	case engine.MoodSad:
		return Warn.Render("sad")
	case engine.MoodSick:
		return Bad.Render("sick")
	case engine.MoodSleeping:
		return Muted.Render("sleeping " + IconZzz)
	default:
		return Muted.Render(string(mood))
	}
}

// ProgressBar renders a fixed-width [####----] bar.
func ProgressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// HPBar renders HP with a color matching its tier.
func HPBar(hp int, width int) string {
	bar := ProgressBar(hp, 100, width)
	switch {
	case hp >= 70:
		return Good.Render(bar)
	case hp >= 40:
		return Warn.Render(bar)
	default:
		return Bad.Render(bar)
	}
}
