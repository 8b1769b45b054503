// Package dispatch turns key symbols into tracker actions.
//
// Resolution and execution are split: Resolve is a pure lookup against the
// current bindings, and State.HandleKey applies its result to the engine and
// log.
package dispatch

import (
	"strconv"

	"github.com/verte-zerg/droptrack/internal/model"
	"github.com/verte-zerg/droptrack/internal/tracker"
)

// Kind tags a Resolution.
type Kind int

const (
	KindNone Kind = iota
	KindAction
	KindNumeric
)

// Resolution is the outcome of resolving a key symbol.
type Resolution struct {
	Kind   Kind
	Action model.Action
	Value  int
}

// Resolve matches symbol against bindings in order; the first match wins.
// Unbound symbols that parse as a base-10 integer resolve to a numeric step.
func Resolve(symbol string, bindings []model.Binding) Resolution {
	for _, b := range bindings {
		if b.Trigger == symbol {
			return Resolution{Kind: KindAction, Action: b.Action}
		}
	}
	if n, err := strconv.Atoi(symbol); err == nil {
		return Resolution{Kind: KindNumeric, Value: n}
	}
	return Resolution{}
}

// Bindings supplies the current triggers in priority order.
// *binding.Store satisfies it.
type Bindings interface {
	All() []model.Binding
}

// State is everything a key press can touch.
type State struct {
	Engine     *tracker.Engine
	Log        *tracker.Log
	Bindings   Bindings
	LogVisible bool
	LastKey    string
}

// NewState builds a State with a fresh log and engine at index 0.
func NewState(bindings Bindings, engine *tracker.Engine, log *tracker.Log) *State {
	return &State{
		Engine:     engine,
		Log:        log,
		Bindings:   bindings,
		LogVisible: true,
	}
}

// HandleKey processes one key press. While a binding is being edited the
// key belongs to the editor and is ignored here.
func (s *State) HandleKey(symbol string, editing bool) Resolution {
	if editing {
		return Resolution{}
	}
	s.LastKey = symbol
	res := Resolve(symbol, s.Bindings.All())
	s.apply(res)
	return res
}

func (s *State) apply(res Resolution) {
	switch res.Kind {
	case KindNumeric:
		s.Engine.Advance(res.Value)
	case KindAction:
		switch res.Action {
		case model.ActionAdvance:
			s.Engine.Advance(1)
		case model.ActionRegress:
			s.Engine.Advance(-1)
		case model.ActionClearLog:
			s.Log.Clear()
		case model.ActionResetCounter:
			s.Engine.Reset()
		case model.ActionToggleLog:
			s.LogVisible = !s.LogVisible
		case model.ActionHighlight:
			s.Log.ToggleHighlight()
		}
	}
}
