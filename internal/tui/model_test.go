package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/droptrack/internal/binding"
	"github.com/verte-zerg/droptrack/internal/dispatch"
	"github.com/verte-zerg/droptrack/internal/model"
	"github.com/verte-zerg/droptrack/internal/tracker"
)

type memBackend map[string]string

func (m memBackend) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memBackend) Set(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func (m memBackend) Delete(_ context.Context, key string) error {
	delete(m, key)
	return nil
}

func newTestModel(t *testing.T) (*Model, *binding.Store) {
	t.Helper()
	bindings := binding.NewStore(memBackend{}, nil)
	log := tracker.NewLog()
	state := dispatch.NewState(bindings, tracker.NewEngine(log, "", nil), log)
	return NewModel(state, bindings, nil), bindings
}

func press(m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeySymbol(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, "ArrowRight"},
		{tea.KeyMsg{Type: tea.KeyLeft}, "ArrowLeft"},
		{tea.KeyMsg{Type: tea.KeyF4}, "F4"},
		{tea.KeyMsg{Type: tea.KeyF12}, "F12"},
		{tea.KeyMsg{Type: tea.KeyEnter}, "Enter"},
		{tea.KeyMsg{Type: tea.KeyEsc}, "Escape"},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, " "},
		{runes("7"), "7"},
		{runes("f"), "f"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, "alt+x"},
		{tea.KeyMsg{Type: tea.KeyCtrlA}, "ctrl+a"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, keySymbol(tc.msg))
	}
}

func TestTrackingKeys(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.state.Engine.Current())
	assert.Equal(t, "ArrowRight", m.state.LastKey)

	press(m, runes("1"))
	assert.Equal(t, 3, m.state.Engine.Current())
	assert.Contains(t, m.View(), "10(B) 3 (C)")
	assert.Contains(t, m.View(), "img/3.png")

	press(m, tea.KeyMsg{Type: tea.KeyF7})
	assert.Equal(t, 0, m.state.Engine.Current())
	assert.Equal(t, model.StyleReset, m.state.Log.Entries()[0].Style)

	press(m, tea.KeyMsg{Type: tea.KeyF4})
	assert.Equal(t, 0, m.state.Log.Len())
	assert.Contains(t, m.View(), "(log empty)")

	press(m, tea.KeyMsg{Type: tea.KeyF9})
	assert.False(t, m.state.LogVisible)
	assert.NotContains(t, m.View(), "(log empty)")
}

func TestEditorSuppressesTracking(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlB})
	require.True(t, m.editing)

	press(m, tea.KeyMsg{Type: tea.KeyRight}, runes("5"))
	assert.Equal(t, 0, m.state.Engine.Current())
	assert.Equal(t, 0, m.state.Log.Len())
	assert.Empty(t, m.state.LastKey)
	assert.Contains(t, m.View(), "Editing key bindings")
}

func TestEditorCommitsOnBlur(t *testing.T) {
	m, bindings := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlB})
	m.inputs[0].SetValue("d")
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "d", bindings.Get(model.ActionAdvance))
	assert.Equal(t, 1, m.focusIndex)

	m.inputs[1].SetValue("a")
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.editing)
	assert.Equal(t, "a", bindings.Get(model.ActionRegress))

	press(m, runes("d"))
	assert.Equal(t, 1, m.state.Engine.Current())
	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.state.Engine.Current(), "old trigger no longer bound")
	press(m, runes("a"))
	assert.Equal(t, 0, m.state.Engine.Current())
}

func TestEditorTypingGoesToField(t *testing.T) {
	m, bindings := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlB}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, len(model.Actions)-1, m.focusIndex)

	press(m, runes("x"))
	assert.Equal(t, "0x", m.inputs[m.focusIndex].Value())

	press(m, tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.False(t, m.editing)
	assert.Equal(t, "0x", bindings.Get(model.ActionHighlight))
}

func TestEditorWithUnavailableStoreShowsDefault(t *testing.T) {
	bindings := binding.NewStore(nil, nil)
	log := tracker.NewLog()
	m := NewModel(dispatch.NewState(bindings, tracker.NewEngine(log, "", nil), log), bindings, nil)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlB})
	m.inputs[0].SetValue("d")
	press(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, "ArrowRight", m.inputs[0].Value())
}

func TestFocusWarning(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.BlurMsg{})
	assert.Contains(t, m.View(), "Terminal not focused")

	m.Update(tea.FocusMsg{})
	assert.NotContains(t, m.View(), "Terminal not focused")
}

func TestHighlightRendersMarker(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("4"), runes("0"))

	assert.True(t, m.state.Log.Entries()[0].Highlighted)
	assert.Contains(t, m.View(), "◀")

	press(m, runes("0"))
	assert.NotContains(t, m.View(), "◀")
}

func TestLogTrimmedToHeight(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	for i := 0; i < 40; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Contains(t, m.View(), "older")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestFitAndPad(t *testing.T) {
	assert.Equal(t, "abc", fit("abc", 5))
	assert.Equal(t, "abcd…", fit("abcdefgh", 5))
	assert.Equal(t, "ab   ", pad("ab", 5))
	assert.Equal(t, "abcdef", pad("abcdef", 3))
}
