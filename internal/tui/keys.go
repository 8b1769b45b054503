package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyNames maps Bubble Tea key names to the browser-style names triggers
// are stored with.
var keyNames = map[string]string{
	"right":     "ArrowRight",
	"left":      "ArrowLeft",
	"up":        "ArrowUp",
	"down":      "ArrowDown",
	"enter":     "Enter",
	"esc":       "Escape",
	"backspace": "Backspace",
	"tab":       "Tab",
	"shift+tab": "Shift+Tab",
	"home":      "Home",
	"end":       "End",
	"pgup":      "PageUp",
	"pgdown":    "PageDown",
	"delete":    "Delete",
	"insert":    "Insert",
}

// keySymbol converts a key press to the symbol compared against triggers.
func keySymbol(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyRunes:
		if !msg.Alt {
			return string(msg.Runes)
		}
	case tea.KeySpace:
		return " "
	}
	s := msg.String()
	if name, ok := keyNames[s]; ok {
		return name
	}
	if n, ok := functionKey(s); ok {
		return "F" + strconv.Itoa(n)
	}
	return s
}

func functionKey(s string) (int, bool) {
	rest, ok := strings.CutPrefix(s, "f")
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > 20 {
		return 0, false
	}
	return n, true
}

// keyMap holds the fixed control keys. They are checked before any
// user-configured trigger.
type keyMap struct {
	Quit key.Binding
	Edit key.Binding
	Next key.Binding
	Prev key.Binding
	Done key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Edit: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "edit keys")),
		Next: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Done: key.NewBinding(key.WithKeys("esc", "enter", "ctrl+b"), key.WithHelp("esc", "done")),
	}
}

// trackingKeys is the help.KeyMap shown while tracking.
type trackingKeys struct{ keyMap }

func (k trackingKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Quit}
}

func (k trackingKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// editingKeys is the help.KeyMap shown in the binding editor.
type editingKeys struct{ keyMap }

func (k editingKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Done, k.Quit}
}

func (k editingKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
