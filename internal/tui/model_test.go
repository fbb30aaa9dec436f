package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardgameodds/fief/internal/models"
	"github.com/boardgameodds/fief/internal/simulator"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func fixedRun(r simulator.Result, err error) RunFunc {
	return func(a, b models.Army) (simulator.Result, error) {
		return r, err
	}
}

func TestAdjustMenAndKnights(t *testing.T) {
	m := NewModel(models.DefaultAttacker(), models.DefaultDefender(), nil)

	m = press(t, m, "right", "right")
	assert.Equal(t, 7, m.A.MenAtArms)

	m = press(t, m, "down", "left", "left", "left", "left")
	assert.Equal(t, 0, m.A.Knights, "knights clamp at zero")

	for i := 0; i < 20; i++ {
		m = press(t, m, "right")
	}
	assert.Equal(t, models.MaxKnights, m.A.Knights, "knights clamp at the maximum")
}

func TestAdjustEnumsStayInDomain(t *testing.T) {
	m := NewModel(models.DefaultAttacker(), models.DefaultDefender(), nil)

	// Army B structure: 4 fields for A, then men, knights, structure
	m = press(t, m, "down", "down", "down", "down", "down", "down")
	m = press(t, m, "right", "right", "right")
	assert.Equal(t, models.FortifiedCity, m.B.Structure)

	m = press(t, m, "left", "left", "left", "left")
	assert.Equal(t, models.NoStructure, m.B.Structure)

	m = press(t, m, "down", "right", "right", "right")
	assert.Equal(t, models.DArc, m.B.Leader)
	assert.Equal(t, models.DefaultAttacker(), m.A, "army A untouched")
}

func TestCursorWraps(t *testing.T) {
	m := NewModel(models.DefaultAttacker(), models.DefaultDefender(), nil)

	m = press(t, m, "up", "right")
	assert.Equal(t, models.LordOrTitledLady, m.B.Leader, "up from the first field selects B's leader")

	m = press(t, m, "down", "right")
	assert.Equal(t, 6, m.A.MenAtArms)
}

func TestEnterRunsSimulation(t *testing.T) {
	want := simulator.Result{WinRateA: 0.5, TieRate: 0.25, WinRateB: 0.25}
	var gotA, gotB models.Army
	run := func(a, b models.Army) (simulator.Result, error) {
		gotA, gotB = a, b
		return want, nil
	}

	m := NewModel(models.DefaultAttacker(), models.DefaultDefender(), run)
	m = press(t, m, "right")

	next, cmd := m.Update(key("enter"))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Simulating")

	next, _ = m.Update(cmd())
	m = next.(Model)

	got, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, 6, gotA.MenAtArms)
	assert.Equal(t, models.DefaultDefender(), gotB)

	view := m.View()
	assert.Contains(t, view, "A wins 50.0%")
	assert.Contains(t, view, "Tie 25.0%")
	assert.Contains(t, view, "B wins 25.0%")
}

func TestEditingClearsResult(t *testing.T) {
	m := NewModel(models.DefaultAttacker(), models.DefaultDefender(), fixedRun(simulator.Result{TieRate: 1}, nil))

	next, cmd := m.Update(key("enter"))
	next, _ = next.Update(cmd())
	m = next.(Model)
	_, ok := m.Result()
	require.True(t, ok)

	// Bumping knights at the maximum changes nothing and keeps the result
	m.A.Knights = models.MaxKnights
	m = press(t, m, "down", "right")
	_, ok = m.Result()
	assert.True(t, ok)

	m = press(t, m, "left")
	_, ok = m.Result()
	assert.False(t, ok)
}

func TestRunErrorIsShown(t *testing.T) {
	m := NewModel(models.DefaultAttacker(), models.DefaultDefender(), fixedRun(simulator.Result{}, errors.New("boom")))

	next, cmd := m.Update(key("enter"))
	next, _ = next.Update(cmd())
	m = next.(Model)

	assert.EqualError(t, m.Err(), "boom")
	assert.Contains(t, m.View(), "boom")
	_, ok := m.Result()
	assert.False(t, ok)
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		m := NewModel(models.DefaultAttacker(), models.DefaultDefender(), nil)

		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = key(k)
		}

		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, k)
		assert.Equal(t, tea.Quit(), cmd(), k)
	}
}

func TestViewShowsBothArmies(t *testing.T) {
	m := NewModel(models.DefaultAttacker(), models.DefaultDefender(), nil)
	view := m.View()

	assert.Contains(t, view, "Army A")
	assert.Contains(t, view, "Army B")
	assert.Contains(t, view, "stronghold")
	assert.Contains(t, view, "none_or_lady")
}
