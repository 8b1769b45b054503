// Package binding maps tracker actions to user-configurable trigger keys.
package binding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/verte-zerg/droptrack/internal/model"
)

// ErrUnknownAction is returned when an action name is not one of the six
// tracker actions.
var ErrUnknownAction = errors.New("unknown action")

// Defaults are the triggers used when nothing is persisted.
var Defaults = map[model.Action]string{
	model.ActionAdvance:      "ArrowRight",
	model.ActionRegress:      "ArrowLeft",
	model.ActionClearLog:     "F4",
	model.ActionResetCounter: "F7",
	model.ActionToggleLog:    "F9",
	model.ActionHighlight:    "0",
}

// Backend is a persistent key-value store. *store.Store satisfies it.
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Store resolves action triggers from a Backend, falling back to Defaults.
// A nil or failing backend never produces an error: reads degrade to the
// default and writes are dropped.
type Store struct {
	backend Backend
	logger  *slog.Logger
}

// NewStore returns a Store over backend. backend may be nil.
func NewStore(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{backend: backend, logger: logger}
}

// Get returns the current trigger for action.
func (s *Store) Get(action model.Action) string {
	def := Defaults[action]
	if s.backend == nil {
		return def
	}
	value, ok, err := s.backend.Get(context.Background(), string(action))
	if err != nil {
		s.logger.Debug("binding read failed; using default", "action", string(action), "err", err)
		return def
	}
	if !ok {
		return def
	}
	return value
}

// Set overwrites the trigger for action. Any string is accepted.
func (s *Store) Set(action model.Action, symbol string) {
	if s.backend == nil {
		return
	}
	if err := s.backend.Set(context.Background(), string(action), symbol); err != nil {
		s.logger.Debug("binding write dropped", "action", string(action), "err", err)
		return
	}
	s.logger.Info("binding changed", "action", string(action), "trigger", symbol)
}

// Reset drops the persisted trigger so Get returns the default again.
func (s *Store) Reset(action model.Action) {
	if s.backend == nil {
		return
	}
	if err := s.backend.Delete(context.Background(), string(action)); err != nil {
		s.logger.Debug("binding reset dropped", "action", string(action), "err", err)
	}
}

// All returns the current bindings in dispatch priority order.
func (s *Store) All() []model.Binding {
	out := make([]model.Binding, 0, len(model.Actions))
	for _, action := range model.Actions {
		out = append(out, model.Binding{Action: action, Trigger: s.Get(action)})
	}
	return out
}

// ParseAction resolves an action from its persisted key ("advanceCountKey")
// or a short name ("advance", "clear-log").
func ParseAction(name string) (model.Action, error) {
	if action := model.Action(name); action.Valid() {
		return action, nil
	}
	if action, ok := shortNames[name]; ok {
		return action, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownAction, name)
}

var shortNames = map[string]model.Action{
	"advance":       model.ActionAdvance,
	"regress":       model.ActionRegress,
	"clear-log":     model.ActionClearLog,
	"reset-counter": model.ActionResetCounter,
	"toggle-log":    model.ActionToggleLog,
	"highlight":     model.ActionHighlight,
}

// ShortName returns the CLI name for action.
func ShortName(action model.Action) string {
	for name, a := range shortNames {
		if a == action {
			return name
		}
	}
	return string(action)
}

// Shadowed reports, for each action, the earlier action with the same
// trigger, if any. Such an action can never fire.
func Shadowed(bindings []model.Binding) map[model.Action]model.Action {
	out := map[model.Action]model.Action{}
	seen := map[string]model.Action{}
	for _, b := range bindings {
		if first, ok := seen[b.Trigger]; ok {
			out[b.Action] = first
			continue
		}
		seen[b.Trigger] = b.Action
	}
	return out
}
