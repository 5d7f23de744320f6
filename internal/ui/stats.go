package ui

import (
	"fmt"
	"strings"

	"moodpet/internal/pet"
)

const historyLines = 5

func makeBar(value int) string {
	filled := value / 20
	var bar strings.Builder
	for i := 0; i < 5; i++ {
		if i < filled {
			bar.WriteString("█")
		} else {
			bar.WriteString("░")
		}
	}
	return bar.String()
}

// RenderStatsPanel returns the compact stats shown next to the stage.
func RenderStatsPanel(s pet.Snapshot) string {
	mood := string(s.Mood)
	if mood == "" {
		mood = string(pet.MoodNormal)
	}
	moodDisplay := strings.ToUpper(mood[:1]) + mood[1:]

	stats := []struct {
		name, value string
	}{
		{"Mood", pet.GetMoodEmoji(s.Mood) + " " + moodDisplay},
		{"Happiness", fmt.Sprintf("%s %3d%%", makeBar(s.Stats.Happiness), s.Stats.Happiness)},
		{"Energy", fmt.Sprintf("%s %3d%%", makeBar(s.Stats.Energy), s.Stats.Energy)},
		{"Health", fmt.Sprintf("%s %3d%%", makeBar(s.Stats.Health), s.Stats.Health)},
		{"Color", s.Color},
	}

	var lines []string
	for _, stat := range stats {
		lines = append(lines, fmt.Sprintf("%-10s %s", stat.name+":", stat.value))
	}
	if s.Message != "" {
		lines = append(lines, "", s.Message)
	}

	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}

// RenderDetails returns the full status card with the recent mood history.
func RenderDetails(id string, s pet.Snapshot, history []pet.LogEntry) string {
	attention := "No"
	if pet.NeedsAttention(s.Stats) {
		attention = "Yes"
	}
	shortID := id
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	var b strings.Builder
	b.WriteString("╔════════════════════════════════════╗\n")
	b.WriteString(fmt.Sprintf("║  %-34s║\n", "moodpet "+shortID))
	b.WriteString("╠════════════════════════════════════╣\n")
	b.WriteString(fmt.Sprintf("║  Status:  %-25s║\n", string(s.Mood)))
	b.WriteString(fmt.Sprintf("║  Color:   %-25s║\n", truncate(s.Color, 25)))
	b.WriteString(fmt.Sprintf("║  Average: %-25s║\n", fmt.Sprintf("%.1f", s.Stats.Average())))
	b.WriteString(fmt.Sprintf("║  Needs attention: %-17s║\n", attention))
	b.WriteString("║                                    ║\n")
	b.WriteString(fmt.Sprintf("║  Happiness: [%s] %3d%%           ║\n", makeBar(s.Stats.Happiness), s.Stats.Happiness))
	b.WriteString(fmt.Sprintf("║  Energy:    [%s] %3d%%           ║\n", makeBar(s.Stats.Energy), s.Stats.Energy))
	b.WriteString(fmt.Sprintf("║  Health:    [%s] %3d%%           ║\n", makeBar(s.Stats.Health), s.Stats.Health))
	b.WriteString("║                                    ║\n")
	b.WriteString("║  Recent moods:                     ║\n")

	start := 0
	if len(history) > historyLines {
		start = len(history) - historyLines
	}
	for _, entry := range history[start:] {
		line := fmt.Sprintf("%s %s → %s (%s)",
			entry.Time.Format("15:04"), orDash(entry.OldMood), entry.NewMood, entry.Cause)
		b.WriteString(fmt.Sprintf("║   %-33s║\n", truncate(line, 33)))
	}
	b.WriteString("╚════════════════════════════════════╝\n")
	b.WriteString("\nPress any key to close...")

	return b.String()
}

func orDash(m pet.Mood) string {
	if m == "" {
		return "-"
	}
	return string(m)
}

// truncate cuts s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
