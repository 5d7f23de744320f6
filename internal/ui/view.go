package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"moodpet/internal/pet"
	"moodpet/internal/scene"
	"moodpet/internal/stage"
)

const (
	panelWidth    = 32
	defaultStageW = 48
	defaultStageH = 18
	minStageW     = 20
	minStageH     = 8
	chromeRows    = 11 // title, menu and help around the stage
)

var gameStyles = struct {
	title   lipgloss.Style
	menu    lipgloss.Style
	menuBox lipgloss.Style
	stats   lipgloss.Style
	anim    lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(panelWidth).
		Padding(1, 2),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	anim: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true).
		Padding(0, 2),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}
	if m.mode == modeDetails {
		return RenderDetails(m.engine.ID(), m.Snapshot, m.engine.History())
	}

	title := gameStyles.title.Render(fmt.Sprintf("moodpet %s", pet.GetStatusWithLabel(m.Snapshot)))

	side := RenderStatsPanel(m.Snapshot)
	if m.Animation.Type != AnimNone {
		side = lipgloss.JoinVertical(lipgloss.Left, side, gameStyles.anim.Render(GetAnimationFrame(m.Animation)))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderStage(), side)

	sections := []string{
		title,
		body,
		"",
	}
	switch m.mode {
	case modePicker:
		sections = append(sections, m.renderPicker())
	case modeCustom:
		sections = append(sections, gameStyles.menuBox.Render(m.input.View()))
	default:
		sections = append(sections, m.renderMenu())
	}

	sections = append(sections, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// stageSize fits the stage into the terminal, leaving room for the panel.
func (m Model) stageSize() (int, int) {
	if m.Width == 0 || m.Height == 0 {
		return defaultStageW, defaultStageH
	}
	w := max(m.Width-panelWidth, minStageW)
	h := max(m.Height-chromeRows, minStageH)
	return w, h
}

func (m Model) renderStage() string {
	w, h := m.stageSize()
	sc := scene.Build(scene.FromSnapshot(m.Snapshot, m.Elapsed, m.Stars))
	return stage.Render(sc, w, h)
}

func (m Model) renderMenu() string {
	var menuItems []string

	for i, choice := range menuChoices {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		icon := quitEmoji
		if i < len(menuActions) {
			if def := pet.GetActionDefinition(menuActions[i]); def != nil {
				icon = def.Emoji
			}
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s %s", cursor, icon, choice))
	}

	return gameStyles.menuBox.Render(strings.Join(menuItems, "\n"))
}

func (m Model) renderPicker() string {
	var swatches []string
	for i, c := range m.Palette {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("██")
		if i == m.ColorIdx {
			swatch = "[" + swatch + "]"
		} else {
			swatch = " " + swatch + " "
		}
		swatches = append(swatches, swatch)
	}

	selected := ""
	if len(m.Palette) > 0 {
		selected = m.Palette[m.ColorIdx]
	}

	return gameStyles.menuBox.Render(lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.menu.Render("Pick a color: "+selected),
		strings.Join(swatches, ""),
	))
}
