package ui

import (
	"fmt"
	"strings"
	"time"

	"gitbuddy/internal/engine"
	"gitbuddy/internal/storage"
)

// RenderPet renders the pet card: art, name, level, HP and XP bars.
func RenderPet(p *storage.PetState, mood engine.Mood) string {
	progress := engine.ProgressForXP(p.XP)
	var xpLine string
	if p.Level >= engine.MaxLevel {
		xpLine = fmt.Sprintf("XP %d %s max level", p.XP, Gold.Render("★"))
	} else {
		xpLine = fmt.Sprintf("XP %d %s %d to next", p.XP, ProgressBar(progress.Current, progress.Max, 20), engine.XPToNextLevel(p.XP))
	}

	lines := []string{
		PetArt(mood, p.Level),
		"",
		fmt.Sprintf("%s  lvl %d  %s", Title.Render(p.Name), p.Level, MoodText(mood)),
		fmt.Sprintf("%s HP %3d %s", IconHeart, p.HP, HPBar(p.HP, 20)),
		xpLine,
		"",
		Muted.Render(MoodLine(mood, p.Name)),
	}
	return Panel.Render(strings.Join(lines, "\n"))
}

// RenderHealth renders the health report with the per-check breakdown.
func RenderHealth(h engine.RepoHealth) string {
	if !h.IsRepo {
		return Panel.Render(Bad.Render("No git repository here.") + "\n" + Muted.Render("Run me inside a repo so I have something to live in."))
	}

	var b strings.Builder
	b.WriteString(Heading(IconScope, fmt.Sprintf("Repo Health: %.0f/100", h.TotalScore)))
	b.WriteString("\n")
	for _, c := range h.Checks {
		b.WriteString(fmt.Sprintf("  %-17s %-8s %s %s\n",
			c.Name,
			StatusText(c.Status),
			ProgressBar(int(c.Score), int(c.Weight*100), 10),
			Muted.Render(c.Value),
		))
	}
	streak := fmt.Sprintf("%d day streak", h.Streak)
	if h.Streak >= 3 {
		streak += " " + IconFire
	}
	b.WriteString(fmt.Sprintf("  %s %d commits, %s\n", Muted.Render("history:"), h.CommitCount, streak))
	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderAchievements lists the catalog with earned markers.
func RenderAchievements(p *storage.PetState) string {
	var b strings.Builder
	catalog := engine.AchievementCatalog()
	earned := 0
	for _, def := range catalog {
		if p.HasAchievement(def.ID) {
			earned++
		}
	}
	b.WriteString(Heading(IconTrophy, fmt.Sprintf("Achievements (%d/%d)", earned, len(catalog))))
	b.WriteString("\n")
	for _, def := range catalog {
		if p.HasAchievement(def.ID) {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", def.Icon, Good.Render(def.Name), Muted.Render(def.Description)))
		} else {
			b.WriteString(fmt.Sprintf("  🔒 %s %s\n", Dim.Render(def.Name), Muted.Render(def.Description)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderChallenge renders today's challenge with its progress bar.
func RenderChallenge(state *storage.DailyChallengeState) string {
	if state == nil {
		return Muted.Render("No challenge today.")
	}
	def, ok := engine.ChallengeByID(state.ChallengeID)
	if !ok {
		return Muted.Render("No challenge today.")
	}

	status := Warn.Render(fmt.Sprintf("%d/%d", state.Progress, def.Goal))
	if state.Completed {
		status = Good.Render("done!")
	}
	return fmt.Sprintf("%s\n  %s %s %s %s\n  %s",
		Heading(IconTarget, "Daily Challenge"),
		def.Name,
		ProgressBar(state.Progress, def.Goal, 12),
		status,
		Gold.Render(fmt.Sprintf("+%d XP", def.XPReward)),
		Muted.Render(def.Description),
	)
}

// Heatmap intensity glyphs, low to high.
var heatGlyphs = []string{"·", "░", "▒", "▓", "█"}

// RenderHeatmap renders a 12-week activity grid from per-day event
// counts, newest week on the right.
func RenderHeatmap(counts map[string]int, now time.Time) string {
	const weeks = 12

	// Align the right edge to the end of the current week (Saturday).
	end := now
	for end.Weekday() != time.Saturday {
		end = end.AddDate(0, 0, 1)
	}
	start := end.AddDate(0, 0, -weeks*7+1)

	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}

	dayNames := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	var b strings.Builder
	b.WriteString(Heading(IconCalendar, "Activity (12 weeks)"))
	b.WriteString("\n")
	for dow := 0; dow < 7; dow++ {
		b.WriteString(Muted.Render(dayNames[dow]) + " ")
		for w := 0; w < weeks; w++ {
			day := start.AddDate(0, 0, w*7+dow)
			if day.After(now) {
				b.WriteString(" ")
				continue
			}
			n := counts[day.Format(storage.DayFormat)]
			b.WriteString(heatGlyph(n, max))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func heatGlyph(n, max int) string {
	if n == 0 {
		return Dim.Render(heatGlyphs[0])
	}
	if max <= 0 {
		max = 1
	}
	idx := 1 + (n-1)*(len(heatGlyphs)-2)/max
	if idx >= len(heatGlyphs) {
		idx = len(heatGlyphs) - 1
	}
	return Good.Render(heatGlyphs[idx])
}

// RenderStats renders the lifetime counters panel.
func RenderStats(p *storage.PetState) string {
	rows := []struct {
		label string
		value string
	}{
		{"Age", fmt.Sprintf("%d days", int(time.Since(p.CreatedAt).Hours()/24))},
		{"Feeds", fmt.Sprintf("%d", p.TotalFeeds)},
		{"Plays", fmt.Sprintf("%d", p.TotalPlays)},
		{"Scans", fmt.Sprintf("%d", p.TotalScans)},
		{"Smart commits", fmt.Sprintf("%d", p.TotalSmartCommits)},
		{"Clean trees", fmt.Sprintf("%d", p.CleanTreeCount)},
		{"Longest streak", fmt.Sprintf("%d days", p.LongestStreak)},
		{"Focus sessions", fmt.Sprintf("%d (%d min total)", p.Focus.Count, p.Focus.TotalMinutes)},
	}
	var b strings.Builder
	b.WriteString(Heading(IconSparkle, "Stats"))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n", Key.Render(r.label+":"), r.value))
	}
	if p.Focus.Best != nil {
		b.WriteString(fmt.Sprintf("  %s %d min on %s\n", Key.Render("Best focus:"), p.Focus.Best.Minutes, p.Focus.Best.Date))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderNewAchievements renders the unlock banner for freshly earned
// achievements.
func RenderNewAchievements(defs []engine.AchievementDef) string {
	if len(defs) == 0 {
		return ""
	}
	var lines []string
	for _, def := range defs {
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			IconTrophy, Gold.Render("Achievement unlocked:"), def.Icon+" "+def.Name,
			Muted.Render(fmt.Sprintf("(+%d XP)", def.XPReward))))
	}
	return strings.Join(lines, "\n")
}
