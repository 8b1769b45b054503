// Package tracker implements the item cycle counter and its event log.
package tracker

import (
	"log/slog"
	"path"
	"strconv"

	"github.com/verte-zerg/droptrack/internal/model"
)

// DefaultImageDir is the image directory used when none is configured.
const DefaultImageDir = "img"

// Engine owns the cycle index. It is not safe for concurrent use; the UI
// loop is its only caller.
type Engine struct {
	current  int
	log      *Log
	imageDir string
	logger   *slog.Logger
}

// NewEngine returns an engine at index 0 that writes transitions to log.
func NewEngine(log *Log, imageDir string, logger *slog.Logger) *Engine {
	if imageDir == "" {
		imageDir = DefaultImageDir
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{log: log, imageDir: imageDir, logger: logger}
}

// Current returns the cycle index.
func (e *Engine) Current() int {
	return e.current
}

// Counters returns the derived counters for the current index.
func (e *Engine) Counters() model.Counters {
	return Derive(e.current)
}

// ImagePath returns the image for the current index, e.g. "img/3.png".
func (e *Engine) ImagePath() string {
	return path.Join(e.imageDir, strconv.Itoa(e.current)+".png")
}

// Advance moves the index by amount. Negative amounts are shifted by one
// cycle first, so -1 steps back by one. A step that lands on the same index
// (0, 10, -10) is ignored and not logged. It reports whether the index moved.
func (e *Engine) Advance(amount int) bool {
	delta := amount
	if amount < 0 {
		delta = amount + Size
	}
	if wrap(delta) == 0 {
		return false
	}
	old := e.current
	e.current = wrap(old + delta)
	e.log.Prepend(transitionParts(amount, old, e.current), model.StyleNone)
	e.logger.Debug("counter advanced", "amount", amount, "from", old, "to", e.current)
	return true
}

// Reset returns the index to 0 and logs a reset marker.
func (e *Engine) Reset() {
	old := e.current
	e.current = 0
	e.log.Prepend([]model.LogPart{{Text: "Reset!"}}, model.StyleReset)
	e.logger.Debug("counter reset", "from", old)
}

func transitionParts(amount, old, next int) []model.LogPart {
	signed := strconv.Itoa(amount)
	if amount > 0 {
		signed = "+" + signed
	}
	return []model.LogPart{
		{Text: signed, Number: true},
		{Text: " ("},
		{Text: strconv.Itoa(old), Number: true},
		{Text: " to "},
		{Text: strconv.Itoa(next), Number: true},
		{Text: ")"},
	}
}
