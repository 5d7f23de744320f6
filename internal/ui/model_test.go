package ui

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodpet/internal/pet"
	"moodpet/internal/scene"
)

var testPalette = []string{"#ff6b6b", "#4ecdc4", "#45b7d1"}

func newTestModel(t *testing.T) (Model, *pet.Engine) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := pet.New(pet.DefaultColor, pet.Config{
		Clock:  clock.NewMock(),
		Rand:   rand.New(rand.NewSource(1)),
		Logger: logger,
	})
	t.Cleanup(e.Dispose)

	m := NewModel(e, Options{
		Palette: testPalette,
		Stars:   scene.NewStarField(5, rand.New(rand.NewSource(2))),
		Logger:  logger,
	})
	return m, e
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestNewModel(t *testing.T) {
	m, e := newTestModel(t)

	assert.Equal(t, e.Snapshot(), m.Snapshot)
	assert.Equal(t, 0, m.ColorIdx)
	assert.Equal(t, DefaultFrameInterval, m.Interval)
	assert.Len(t, m.Stars, 5)
	assert.NotNil(t, m.Init())
}

func TestShortcutKeysRunActions(t *testing.T) {
	m, e := newTestModel(t)

	m, cmd := update(t, m, runes("p"))
	require.NotNil(t, cmd)
	assert.Equal(t, AnimPet, m.Animation.Type)
	assert.Equal(t, pet.MoodHappy, m.Snapshot.Mood)
	assert.Equal(t, 90, e.Snapshot().Stats.Happiness)

	m, _ = update(t, m, runes("j"))
	assert.Equal(t, AnimJump, m.Animation.Type)
	assert.Equal(t, 68, m.Snapshot.Stats.Energy)

	m, _ = update(t, m, runes("d"))
	assert.Equal(t, AnimDance, m.Animation.Type)
	assert.Equal(t, 43, m.Snapshot.Stats.Energy)
	assert.Equal(t, pet.MoodExcited, m.Snapshot.Mood)
}

func TestBlockedActionPlaysNoAnimation(t *testing.T) {
	m, e := newTestModel(t)
	for i := 0; i < 6; i++ {
		e.Jump()
	}
	require.Equal(t, 8, e.Snapshot().Stats.Energy)

	m, cmd := update(t, m, runes("j"))
	assert.Nil(t, cmd)
	assert.Equal(t, AnimNone, m.Animation.Type)
	assert.Equal(t, pet.TooTiredMessage, m.Snapshot.Message)
	assert.Contains(t, m.View(), pet.TooTiredMessage)
}

// drainingEngine spends energy on other jumps right before each action is
// applied, as a decay tick landing between the key press and the apply would.
type drainingEngine struct {
	*pet.Engine
	drain int
}

func (d drainingEngine) Apply(a pet.Action, color string) pet.Transition {
	for i := 0; i < d.drain; i++ {
		d.Engine.Apply(pet.ActionJump, "")
	}
	return d.Engine.Apply(a, color)
}

func TestBlockedDecidedByAppliedTransition(t *testing.T) {
	_, e := newTestModel(t)
	m := NewModel(drainingEngine{Engine: e, drain: 6}, Options{
		Palette: testPalette,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.Equal(t, 80, m.Snapshot.Stats.Energy, "the widget starts out rested")

	m, cmd := update(t, m, runes("j"))
	assert.Nil(t, cmd)
	assert.Equal(t, AnimNone, m.Animation.Type)
	assert.Equal(t, pet.TooTiredMessage, m.Snapshot.Message)
	assert.Equal(t, 8, m.Snapshot.Stats.Energy)
}

func TestMenuNavigation(t *testing.T) {
	m, e := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Choice, "cursor stops at the top")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, choiceDance, m.Choice)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 55, e.Snapshot().Stats.Energy)
	assert.Equal(t, AnimDance, m.Animation.Type)

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, choiceQuit, m.Choice, "cursor stops at the bottom")
}

func TestRecolorPicker(t *testing.T) {
	m, e := newTestModel(t)

	m, _ = update(t, m, runes("r"))
	require.Equal(t, modePicker, m.mode)
	assert.Contains(t, m.View(), "Pick a color")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, m.ColorIdx, "left wraps around")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 1, m.ColorIdx)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, modeMenu, m.mode)
	assert.Equal(t, "#4ecdc4", e.Snapshot().Color)
	assert.Equal(t, pet.MoodHappy, m.Snapshot.Mood)
	assert.Equal(t, AnimRecolor, m.Animation.Type)
}

func TestRecolorPickerEscape(t *testing.T) {
	m, e := newTestModel(t)

	m, _ = update(t, m, runes("r"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeMenu, m.mode)
	assert.Equal(t, uint64(0), e.Snapshot().Version)
}

func TestCustomColorInput(t *testing.T) {
	m, e := newTestModel(t)

	m, _ = update(t, m, runes("r"))
	m, _ = update(t, m, runes("i"))
	require.Equal(t, modeCustom, m.mode)

	// Shortcut keys are plain text while typing.
	m, _ = update(t, m, runes("q"))
	require.False(t, m.Quitting)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})

	m, _ = update(t, m, runes("#abcdef"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeMenu, m.mode)
	assert.Equal(t, "#abcdef", e.Snapshot().Color)
}

func TestCustomColorEmptyIsIgnored(t *testing.T) {
	m, e := newTestModel(t)

	m, _ = update(t, m, runes("r"))
	m, _ = update(t, m, runes("i"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeCustom, m.mode)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modePicker, m.mode)
	assert.Equal(t, pet.DefaultColor, e.Snapshot().Color)
}

func TestDetailsOverlay(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, runes("p"))
	m, _ = update(t, m, runes("s"))
	require.Equal(t, modeDetails, m.mode)

	view := m.View()
	assert.Contains(t, view, "Recent moods")
	assert.Contains(t, view, "normal → happy (pet)")

	m, _ = update(t, m, runes("x"))
	assert.Equal(t, modeMenu, m.mode)
}

func TestQuitDisposesEngine(t *testing.T) {
	m, e := newTestModel(t)

	m, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.Quitting)
	assert.True(t, e.Disposed())
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "Thanks for playing!\n", m.View())
}

func TestCtrlCQuitsFromAnyMode(t *testing.T) {
	m, e := newTestModel(t)

	m, _ = update(t, m, runes("r"))
	m, _ = update(t, m, runes("i"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.Quitting)
	assert.True(t, e.Disposed())
}

func TestFrameTickAdvancesTime(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, frameMsg(m.Start.Add(2500*time.Millisecond)))
	assert.NotNil(t, cmd)
	assert.InDelta(t, 2.5, m.Elapsed, 1e-9)
}

func TestSnapshotSubscription(t *testing.T) {
	m, e := newTestModel(t)

	e.Pet()
	msg := waitForSnapshot(m.updates)()
	snap, ok := msg.(snapshotMsg)
	require.True(t, ok)
	assert.Equal(t, pet.MoodHappy, snap.Mood)

	m, cmd := update(t, m, snap)
	assert.NotNil(t, cmd)
	assert.Equal(t, pet.MoodHappy, m.Snapshot.Mood)

	e.Dispose()
	assert.Nil(t, waitForSnapshot(m.updates)(), "closed channel ends the loop")
	assert.Nil(t, waitForSnapshot(nil))
}

func TestStaleAnimationTicksAreDropped(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, runes("p"))
	current := m.Animation.StartTime

	m, cmd := update(t, m, animTickMsg{started: current.Add(-time.Second)})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Animation.Frame)

	for i := 0; i < AnimationTotalFrames(AnimPet); i++ {
		m, _ = update(t, m, animTickMsg{started: current})
	}
	assert.Equal(t, AnimNone, m.Animation.Type)
}

func TestWindowSizeShapesStage(t *testing.T) {
	m, _ := newTestModel(t)

	w, h := m.stageSize()
	assert.Equal(t, defaultStageW, w)
	assert.Equal(t, defaultStageH, h)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	w, h = m.stageSize()
	assert.Equal(t, 100-panelWidth, w)
	assert.Equal(t, 40-chromeRows, h)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})
	w, h = m.stageSize()
	assert.Equal(t, minStageW, w)
	assert.Equal(t, minStageH, h)
}

func TestViewShowsMenuAndStats(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	for _, want := range []string{"> 💕 Pet", "🌈 Recolor", "👋 Quit", "Happiness", "Hi! I'm ready"} {
		assert.Contains(t, view, want)
	}
}
