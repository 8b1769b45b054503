package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/droptrack/internal/binding"
	"github.com/verte-zerg/droptrack/internal/model"
	"github.com/verte-zerg/droptrack/internal/tracker"
)

type staticBindings []model.Binding

func (b staticBindings) All() []model.Binding { return b }

func defaultBindings() staticBindings {
	return staticBindings(binding.NewStore(nil, nil).All())
}

func newTestState(b Bindings) *State {
	log := tracker.NewLog()
	return NewState(b, tracker.NewEngine(log, "", nil), log)
}

func TestResolveDefaults(t *testing.T) {
	b := defaultBindings()
	cases := map[string]Resolution{
		"ArrowRight": {Kind: KindAction, Action: model.ActionAdvance},
		"ArrowLeft":  {Kind: KindAction, Action: model.ActionRegress},
		"F4":         {Kind: KindAction, Action: model.ActionClearLog},
		"F7":         {Kind: KindAction, Action: model.ActionResetCounter},
		"F9":         {Kind: KindAction, Action: model.ActionToggleLog},
		"0":          {Kind: KindAction, Action: model.ActionHighlight},
		"5":          {Kind: KindNumeric, Value: 5},
		"-3":         {Kind: KindNumeric, Value: -3},
		"x":          {},
		"F5":         {},
		"":           {},
	}
	for symbol, want := range cases {
		assert.Equal(t, want, Resolve(symbol, b), "symbol %q", symbol)
	}
}

func TestResolvePriorityOnCollision(t *testing.T) {
	order := model.Actions
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			b := defaultBindings()
			b[i].Trigger = "q"
			b[j].Trigger = "q"
			res := Resolve("q", b)
			assert.Equal(t, order[i], res.Action, "%s vs %s", order[i], order[j])
		}
	}
}

func TestHandleKeyEchoesLastKey(t *testing.T) {
	s := newTestState(defaultBindings())

	s.HandleKey("ArrowRight", false)
	assert.Equal(t, "ArrowRight", s.LastKey)

	s.HandleKey("z", false)
	assert.Equal(t, "z", s.LastKey, "unmatched keys are echoed too")
}

func TestHandleKeySuppressedWhileEditing(t *testing.T) {
	s := newTestState(defaultBindings())

	res := s.HandleKey("ArrowRight", true)

	assert.Equal(t, KindNone, res.Kind)
	assert.Equal(t, 0, s.Engine.Current())
	assert.Equal(t, 0, s.Log.Len())
	assert.Empty(t, s.LastKey)
}

func TestHandleKeyAdvanceRegress(t *testing.T) {
	s := newTestState(defaultBindings())

	s.HandleKey("ArrowRight", false)
	s.HandleKey("ArrowRight", false)
	assert.Equal(t, 2, s.Engine.Current())

	s.HandleKey("ArrowLeft", false)
	s.HandleKey("ArrowLeft", false)
	s.HandleKey("ArrowLeft", false)
	assert.Equal(t, 9, s.Engine.Current())
	assert.Equal(t, "-1 (0 to 9)", s.Log.Entries()[0].Text())
}

func TestHandleKeyNumeric(t *testing.T) {
	s := newTestState(defaultBindings())

	s.HandleKey("7", false)
	assert.Equal(t, 7, s.Engine.Current())
	assert.Equal(t, "+7 (0 to 7)", s.Log.Entries()[0].Text())
}

func TestHandleKeyZeroHighlightsByDefault(t *testing.T) {
	s := newTestState(defaultBindings())
	s.HandleKey("4", false)

	res := s.HandleKey("0", false)

	assert.Equal(t, model.ActionHighlight, res.Action)
	assert.Equal(t, 4, s.Engine.Current())
	assert.True(t, s.Log.Entries()[0].Highlighted)
}

func TestHandleKeyClearResetToggle(t *testing.T) {
	s := newTestState(defaultBindings())
	s.HandleKey("3", false)
	s.HandleKey("2", false)

	s.HandleKey("F7", false)
	assert.Equal(t, 0, s.Engine.Current())
	require.Equal(t, 3, s.Log.Len())
	assert.Equal(t, model.StyleReset, s.Log.Entries()[0].Style)

	s.HandleKey("F4", false)
	assert.Equal(t, 0, s.Log.Len())

	require.True(t, s.LogVisible)
	s.HandleKey("F9", false)
	assert.False(t, s.LogVisible)
	s.HandleKey("F9", false)
	assert.True(t, s.LogVisible)
}

func TestHandleKeyUsesLiveBindings(t *testing.T) {
	b := defaultBindings()
	b[0].Trigger = "d"
	s := newTestState(b)

	s.HandleKey("ArrowRight", false)
	assert.Equal(t, 0, s.Engine.Current())
	s.HandleKey("d", false)
	assert.Equal(t, 1, s.Engine.Current())
}
