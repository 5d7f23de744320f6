package ui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"moodpet/internal/pet"
	"moodpet/internal/scene"
)

// Engine is the part of *pet.Engine the widget drives.
type Engine interface {
	ID() string
	Snapshot() pet.Snapshot
	Apply(a pet.Action, color string) pet.Transition
	Subscribe() (<-chan pet.Snapshot, func())
	History() []pet.LogEntry
	Dispose()
}

// Options configures the widget.
type Options struct {
	FrameInterval time.Duration
	Palette       []string
	Stars         []scene.Node
	Logger        *slog.Logger
}

// DefaultFrameInterval is the render tick when none is configured.
const DefaultFrameInterval = 70 * time.Millisecond

type mode int

const (
	modeMenu mode = iota
	modePicker
	modeCustom
	modeDetails
)

// Menu entries, in display order
const (
	choicePet = iota
	choiceJump
	choiceDance
	choiceRecolor
	choiceQuit
)

var menuChoices = []string{"Pet", "Jump", "Dance", "Recolor", "Quit"}

// menuActions lines up with the first entries of menuChoices.
var menuActions = []pet.Action{pet.ActionPet, pet.ActionJump, pet.ActionDance, pet.ActionRecolor}

const quitEmoji = "👋"

// Model is the widget state
type Model struct {
	engine      Engine
	updates     <-chan pet.Snapshot
	unsubscribe func()
	logger      *slog.Logger

	Snapshot  pet.Snapshot
	Stars     []scene.Node
	Palette   []string
	Interval  time.Duration
	Start     time.Time
	Elapsed   float64 // seconds since mount, drives the scene
	Width     int
	Height    int
	Choice    int
	ColorIdx  int
	Animation Animation
	Quitting  bool

	mode  mode
	keys  keyMap
	help  help.Model
	input textinput.Model
}

type frameMsg time.Time
type snapshotMsg pet.Snapshot
type animTickMsg struct {
	started time.Time
}

// NewModel subscribes to the engine and returns the widget.
func NewModel(e Engine, opts Options) Model {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "#rrggbb"
	ti.Prompt = "color: "
	ti.CharLimit = 32

	updates, unsubscribe := e.Subscribe()
	snap := e.Snapshot()

	return Model{
		engine:      e,
		updates:     updates,
		unsubscribe: unsubscribe,
		logger:      opts.Logger,
		Snapshot:    snap,
		Stars:       opts.Stars,
		Palette:     opts.Palette,
		Interval:    opts.FrameInterval,
		Start:       pet.TimeNow(),
		ColorIdx:    paletteIndex(opts.Palette, snap.Color),
		keys:        newKeyMap(),
		help:        help.New(),
		input:       ti,
	}
}

func paletteIndex(palette []string, color string) int {
	for i, c := range palette {
		if strings.EqualFold(c, color) {
			return i
		}
	}
	return 0
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		frameTick(m.Interval),
		waitForSnapshot(m.updates),
	)
}

func frameTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// waitForSnapshot blocks on the engine's channel. It yields nothing once the
// channel is closed, which ends the subscription loop.
func waitForSnapshot(ch <-chan pet.Snapshot) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg(s)
	}
}

func animTick(start time.Time) tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(t time.Time) tea.Msg {
		return animTickMsg{started: start}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		if m.Quitting {
			return m, nil
		}
		m.Elapsed = time.Time(msg).Sub(m.Start).Seconds()
		return m, frameTick(m.Interval)

	case snapshotMsg:
		m.Snapshot = pet.Snapshot(msg)
		return m, waitForSnapshot(m.updates)

	case animTickMsg:
		// Drop ticks that belong to an older animation (e.g., if a new action started)
		if m.Animation.Type == AnimNone || !m.Animation.StartTime.Equal(msg.started) {
			return m, nil
		}

		m.Animation.Frame++
		if IsAnimationComplete(m.Animation) {
			m.Animation = Animation{}
			return m, nil
		}
		return m, animTick(m.Animation.StartTime)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Force) {
			return m.quit()
		}
		switch m.mode {
		case modeCustom:
			return m.updateCustom(msg)
		case modePicker:
			return m.updatePicker(msg)
		case modeDetails:
			return m.updateDetails(msg)
		default:
			return m.updateMenu(msg)
		}
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		if m.Choice > 0 {
			m.Choice--
		}
	case key.Matches(msg, m.keys.Down):
		if m.Choice < len(menuChoices)-1 {
			m.Choice++
		}
	case key.Matches(msg, m.keys.Pet):
		return m.perform(pet.ActionPet)
	case key.Matches(msg, m.keys.Jump):
		return m.perform(pet.ActionJump)
	case key.Matches(msg, m.keys.Dance):
		return m.perform(pet.ActionDance)
	case key.Matches(msg, m.keys.Recolor):
		m.mode = modePicker
	case key.Matches(msg, m.keys.Details):
		m.mode = modeDetails
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Select):
		switch m.Choice {
		case choicePet:
			return m.perform(pet.ActionPet)
		case choiceJump:
			return m.perform(pet.ActionJump)
		case choiceDance:
			return m.perform(pet.ActionDance)
		case choiceRecolor:
			m.mode = modePicker
		case choiceQuit:
			return m.quit()
		}
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = modeMenu
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Left):
		if len(m.Palette) > 0 {
			m.ColorIdx = (m.ColorIdx - 1 + len(m.Palette)) % len(m.Palette)
		}
	case key.Matches(msg, m.keys.Right):
		if len(m.Palette) > 0 {
			m.ColorIdx = (m.ColorIdx + 1) % len(m.Palette)
		}
	case key.Matches(msg, m.keys.Custom):
		m.mode = modeCustom
		m.input.SetValue("")
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Select):
		if len(m.Palette) == 0 {
			return m, nil
		}
		m.mode = modeMenu
		return m.recolor(m.Palette[m.ColorIdx])
	}
	return m, nil
}

func (m Model) updateCustom(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.input.Blur()
		m.mode = modePicker
		return m, nil
	case tea.KeyEnter:
		color := strings.TrimSpace(m.input.Value())
		if color == "" {
			return m, nil
		}
		m.input.Blur()
		m.mode = modeMenu
		return m.recolor(color)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateDetails(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}
	m.mode = modeMenu
	return m, nil
}

// perform runs an action on the engine and starts its animation unless the
// pet refused.
func (m Model) perform(a pet.Action) (tea.Model, tea.Cmd) {
	return m.afterAction(m.engine.Apply(a, ""))
}

func (m Model) recolor(color string) (tea.Model, tea.Cmd) {
	tr := m.engine.Apply(pet.ActionRecolor, color)
	m.ColorIdx = paletteIndex(m.Palette, color)
	return m.afterAction(tr)
}

// afterAction animates only actions the engine actually applied.
func (m Model) afterAction(tr pet.Transition) (tea.Model, tea.Cmd) {
	m.Snapshot = m.engine.Snapshot()

	if !tr.Performed {
		m.logger.Debug("ui: action refused", "action", tr.Cause, "energy", tr.After.Stats.Energy)
		return m, nil
	}

	m.Animation = Animation{
		Type:      AnimationFor(pet.Action(tr.Cause)),
		StartTime: pet.TimeNow(),
	}
	return m, animTick(m.Animation.StartTime)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Quitting = true
	m.unsubscribe()
	m.engine.Dispose()
	return m, tea.Quit
}
