// Package tui provides the Bubble Tea tracker interface.
package tui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/droptrack/internal/binding"
	"github.com/verte-zerg/droptrack/internal/dispatch"
	"github.com/verte-zerg/droptrack/internal/model"
	"github.com/verte-zerg/droptrack/internal/tracker"
)

// Model implements the Bubble Tea tracker UI.
type Model struct {
	state    *dispatch.State
	bindings *binding.Store
	logger   *slog.Logger

	keys keyMap
	help help.Model

	editing    bool
	inputs     []textinput.Model
	focusIndex int

	windowFocused bool

	width  int
	height int
}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	numberStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	entryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	resetStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	markStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#4A3A10"))
	cardStyle    = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

// NewModel constructs a tracker TUI model.
func NewModel(state *dispatch.State, bindings *binding.Store, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Model{
		state:         state,
		bindings:      bindings,
		logger:        logger,
		keys:          newKeyMap(),
		help:          help.New(),
		windowFocused: true,
	}
	m.initInputs()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.FocusMsg:
		m.windowFocused = true
		return m, nil
	case tea.BlurMsg:
		m.windowFocused = false
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if !m.editing && key.Matches(msg, m.keys.Edit) {
			return m, m.startEditing()
		}
		m.state.HandleKey(keySymbol(msg), m.editing)
		if m.editing {
			return m.updateEditor(msg)
		}
		return m, nil
	default:
		if m.editing {
			var cmd tea.Cmd
			m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		titleStyle.Render("droptrack"),
		lipgloss.JoinHorizontal(lipgloss.Top, m.renderItem(), m.renderCounters()),
		m.renderLastKey(),
	}
	if w := m.renderWarnings(); w != "" {
		sections = append(sections, w)
	}
	if m.editing {
		sections = append(sections, m.renderEditor())
	}
	if m.state.LogVisible {
		sections = append(sections, m.renderLog(m.logRows(sections)))
	}
	sections = append(sections, m.renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderItem() string {
	e := m.state.Engine
	body := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Item"),
		valueStyle.Render(strconv.Itoa(e.Current())),
		mutedStyle.Render(fit(e.ImagePath(), 24)),
	)
	return cardStyle.Render(body)
}

func (m *Model) renderCounters() string {
	c := m.state.Engine.Counters()
	rows := [][2]string{
		{"Bomb", strconv.Itoa(c.Bomb)},
		{"Fiver", strconv.Itoa(c.Fiver)},
		{"Clock", tracker.ClockLine(c)},
		{"Fairy", tracker.FairyLine(c)},
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, labelStyle.Render(pad(row[0], 6))+valueStyle.Render(row[1]))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderLastKey() string {
	last := m.state.LastKey
	if last == "" {
		last = "-"
	}
	return labelStyle.Render("Last key: ") + valueStyle.Render(fit(last, 32))
}

func (m *Model) renderWarnings() string {
	var lines []string
	if !m.windowFocused {
		lines = append(lines, warningStyle.Render("Terminal not focused: key presses are not reaching the tracker."))
	}
	if m.editing {
		lines = append(lines, warningStyle.Render("Editing key bindings: presses are not tracked until you leave the editor."))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderLog(rows int) string {
	entries := m.state.Log.Entries()
	if len(entries) == 0 {
		return mutedStyle.Render("(log empty)")
	}
	shown := entries
	if rows > 0 && len(entries) > rows {
		shown = entries[:rows-1]
	}
	lines := make([]string, 0, len(shown)+1)
	for _, entry := range shown {
		lines = append(lines, renderEntry(entry))
	}
	if len(shown) < len(entries) {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("… %d older", len(entries)-len(shown))))
	}
	return strings.Join(lines, "\n")
}

// logRows returns how many log lines fit below the other sections, or 0
// when the height is unknown.
func (m *Model) logRows(above []string) int {
	if m.height == 0 {
		return 0
	}
	used := 1
	for _, s := range above {
		used += lipgloss.Height(s)
	}
	rows := m.height - used
	if rows < 2 {
		rows = 2
	}
	return rows
}

func renderEntry(entry model.LogEntry) string {
	base := entryStyle
	if entry.Style == model.StyleReset {
		base = resetStyle
	}
	var b strings.Builder
	for _, part := range entry.Parts {
		style := base
		if part.Number && entry.Style != model.StyleReset {
			style = numberStyle
		}
		if entry.Highlighted {
			style = style.Inherit(markStyle)
		}
		b.WriteString(style.Render(part.Text))
	}
	if entry.Highlighted {
		b.WriteString(markStyle.Render(" ◀"))
	}
	return b.String()
}

func (m *Model) renderHelp() string {
	if m.editing {
		return m.help.View(editingKeys{m.keys})
	}
	return m.help.View(trackingKeys{m.keys})
}
