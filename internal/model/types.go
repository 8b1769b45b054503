// Package model defines shared data structures.
package model

import (
	"strings"
	"time"
)

// Action names a logical tracker command. The value doubles as the
// persisted key for the action's trigger.
type Action string

// The six tracker actions, declared in dispatch priority order.
const (
	ActionAdvance      Action = "advanceCountKey"
	ActionRegress      Action = "regressCountKey"
	ActionClearLog     Action = "clearLogKey"
	ActionResetCounter Action = "resetCounterKey"
	ActionToggleLog    Action = "toggleLogKey"
	ActionHighlight    Action = "highlightKey"
)

// Actions lists every action in dispatch priority order.
var Actions = []Action{
	ActionAdvance,
	ActionRegress,
	ActionClearLog,
	ActionResetCounter,
	ActionToggleLog,
	ActionHighlight,
}

var actionLabels = map[Action]string{
	ActionAdvance:      "Advance",
	ActionRegress:      "Regress",
	ActionClearLog:     "Clear log",
	ActionResetCounter: "Reset counter",
	ActionToggleLog:    "Toggle log",
	ActionHighlight:    "Highlight",
}

// Label returns a human-readable name for the action.
func (a Action) Label() string {
	if label, ok := actionLabels[a]; ok {
		return label
	}
	return string(a)
}

// Valid reports whether a is one of the six tracker actions.
func (a Action) Valid() bool {
	_, ok := actionLabels[a]
	return ok
}

// Binding pairs an action with its current trigger.
type Binding struct {
	Action  Action
	Trigger string
}

// StyleTag selects how a log entry is rendered.
type StyleTag int

const (
	StyleNone StyleTag = iota
	StyleReset
)

// LogPart is a run of log text. Number parts are rendered with emphasis.
type LogPart struct {
	Text   string
	Number bool
}

// LogEntry is one line of the tracker's event log.
type LogEntry struct {
	Parts       []LogPart
	Style       StyleTag
	Highlighted bool
	At          time.Time
}

// Text returns the entry's plain text.
func (e LogEntry) Text() string {
	var b strings.Builder
	for _, p := range e.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// Counters holds the values derived from the counter index.
type Counters struct {
	Bomb   int
	Fiver  int
	ClockB int
	ClockC int
	FairyA int
	FairyD int
}

// Config defines tracker settings.
type Config struct {
	ImageDir string
	ShowLog  bool
	LogLevel string
}
