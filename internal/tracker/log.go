package tracker

import (
	"time"

	"github.com/verte-zerg/droptrack/internal/model"
)

// Log is the newest-first event log. It grows until cleared.
type Log struct {
	entries []model.LogEntry
	now     func() time.Time
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{now: time.Now}
}

// Prepend adds an entry in front of the existing ones.
func (l *Log) Prepend(parts []model.LogPart, style model.StyleTag) {
	entry := model.LogEntry{Parts: parts, Style: style, At: l.now()}
	l.entries = append(l.entries, model.LogEntry{})
	copy(l.entries[1:], l.entries)
	l.entries[0] = entry
}

// Clear drops every entry.
func (l *Log) Clear() {
	l.entries = nil
}

// ToggleHighlight highlights the newest entry, or removes the highlight if
// the newest entry already has it. At most one entry is ever highlighted.
func (l *Log) ToggleHighlight() {
	if len(l.entries) == 0 {
		return
	}
	removeOnly := l.entries[0].Highlighted
	for i := range l.entries {
		l.entries[i].Highlighted = false
	}
	if removeOnly {
		return
	}
	l.entries[0].Highlighted = true
}

// Entries returns the entries, newest first. The slice must not be modified.
func (l *Log) Entries() []model.LogEntry {
	return l.entries
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}
