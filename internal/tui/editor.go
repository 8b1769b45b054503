package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/droptrack/internal/model"
)

const labelWidth = 15

func (m *Model) initInputs() {
	m.inputs = make([]textinput.Model, len(model.Actions))
	for i := range model.Actions {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = 32
		input.Width = 20
		m.inputs[i] = input
	}
	m.refreshInputs()
}

// refreshInputs reloads every field from the binding store.
func (m *Model) refreshInputs() {
	for i, action := range model.Actions {
		m.inputs[i].SetValue(m.bindings.Get(action))
	}
}

func (m *Model) startEditing() tea.Cmd {
	m.editing = true
	m.focusIndex = 0
	m.refreshInputs()
	return m.inputs[m.focusIndex].Focus()
}

func (m *Model) stopEditing() {
	m.commit(m.focusIndex)
	m.inputs[m.focusIndex].Blur()
	m.editing = false
}

// commit stores the field's value, then shows whatever the store now holds.
func (m *Model) commit(i int) {
	action := model.Actions[i]
	value := m.inputs[i].Value()
	if value != m.bindings.Get(action) {
		m.bindings.Set(action, value)
	}
	m.inputs[i].SetValue(m.bindings.Get(action))
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	m.commit(m.focusIndex)
	m.inputs[m.focusIndex].Blur()
	n := len(m.inputs)
	m.focusIndex = (m.focusIndex + delta + n) % n
	return m.inputs[m.focusIndex].Focus()
}

func (m *Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.Done):
		m.stopEditing()
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m *Model) renderEditor() string {
	lines := make([]string, 0, len(m.inputs))
	for i, action := range model.Actions {
		label := labelStyle.Render(pad(action.Label(), labelWidth))
		if i == m.focusIndex {
			label = titleStyle.Render(pad(action.Label(), labelWidth))
		}
		lines = append(lines, label+m.inputs[i].View())
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}
