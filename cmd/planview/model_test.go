package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/goleak"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cognate/internal/action"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func stubTurns(n int) []turn {
	turns := make([]turn, n)
	for i := range turns {
		turns[i] = turn{Agent: "bandit_A", Timestamp: i + 1, Action: action.NewMoveAction("bandit_A", "end", true)}
	}
	return turns
}

func TestModelAdvancesAndRewindsCursor(t *testing.T) {
	m := newModel(stubTurns(3))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	mm := next.(model)
	assert.Equal(t, 1, mm.cursor)

	next, _ = mm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	mm = next.(model)
	assert.Equal(t, 2, mm.cursor)

	next, _ = mm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	mm = next.(model)
	assert.Equal(t, 1, mm.cursor)
}

func TestModelCursorNeverExceedsTurnCount(t *testing.T) {
	m := newModel(stubTurns(1))

	for i := 0; i < 5; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
		m = next.(model)
	}
	assert.Equal(t, 1, m.cursor)
}

func TestModelQuitOnQ(t *testing.T) {
	m := newModel(stubTurns(2))
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	mm := next.(model)
	require.True(t, mm.quitting)
	require.NotNil(t, cmd)
}

func TestModelViewRendersWithoutPanicOnEmptyTurns(t *testing.T) {
	m := newModel(nil)
	assert.NotEmpty(t, m.View())
}
