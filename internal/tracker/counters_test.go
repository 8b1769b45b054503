package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verte-zerg/droptrack/internal/model"
)

func TestDeriveIndexThree(t *testing.T) {
	c := Derive(3)
	assert.Equal(t, model.Counters{Bomb: 3, Fiver: 1, ClockB: 10, ClockC: 3, FairyA: 1, FairyD: 2}, c)
	assert.Equal(t, "10(B)", WithLetter(c.ClockB, "B"))
	assert.Equal(t, "3 (C)", WithLetter(c.ClockC, "C"))
	assert.Equal(t, "10(B) 3 (C)", ClockLine(c))
	assert.Equal(t, "1 (A) 2 (D)", FairyLine(c))
}

func TestWithLetterBoundary(t *testing.T) {
	assert.Equal(t, "9 (A)", WithLetter(9, "A"))
	assert.Equal(t, "10(A)", WithLetter(10, "A"))
}

func TestDeriveWrapsIndex(t *testing.T) {
	assert.Equal(t, Derive(0), Derive(10))
	assert.Equal(t, Derive(9), Derive(-1))
}
