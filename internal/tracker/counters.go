package tracker

import (
	"fmt"

	"github.com/verte-zerg/droptrack/internal/model"
)

// Size is the length of the item cycle.
const Size = 10

var (
	bombCount   = [Size]int{1, 5, 4, 3, 2, 1, 2, 1, 3, 2}
	fiverCount  = [Size]int{4, 3, 2, 1, 6, 5, 4, 3, 2, 1}
	clockBCount = [Size]int{3, 2, 1, 10, 9, 8, 7, 6, 5, 4}
	clockCCount = [Size]int{6, 5, 4, 3, 2, 1, 10, 9, 8, 7}
	fairyACount = [Size]int{4, 3, 2, 1, 10, 9, 8, 7, 6, 5}
	fairyDCount = [Size]int{2, 1, 3, 2, 1, 7, 6, 5, 4, 3}
)

// Derive looks up the counters for a cycle index. index is reduced into
// [0, Size).
func Derive(index int) model.Counters {
	i := wrap(index)
	return model.Counters{
		Bomb:   bombCount[i],
		Fiver:  fiverCount[i],
		ClockB: clockBCount[i],
		ClockC: clockCCount[i],
		FairyA: fairyACount[i],
		FairyD: fairyDCount[i],
	}
}

// WithLetter renders a counter followed by its letter. Single-digit values
// get a space before the letter so that columns line up with two-digit ones:
// "7 (B)" versus "10(B)".
func WithLetter(count int, letter string) string {
	if count <= 9 {
		return fmt.Sprintf("%d (%s)", count, letter)
	}
	return fmt.Sprintf("%d(%s)", count, letter)
}

// ClockLine renders the clock counters as "<B> <C>".
func ClockLine(c model.Counters) string {
	return WithLetter(c.ClockB, "B") + " " + WithLetter(c.ClockC, "C")
}

// FairyLine renders the fairy counters as "<A> <D>".
func FairyLine(c model.Counters) string {
	return WithLetter(c.FairyA, "A") + " " + WithLetter(c.FairyD, "D")
}

func wrap(n int) int {
	n %= Size
	if n < 0 {
		n += Size
	}
	return n
}
