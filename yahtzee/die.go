// Package yahtzee classifies and scores five-die Yahtzee rolls.
package yahtzee

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrInvalidPip is returned when a die is constructed with a pip value
// outside the 1..6 range.
var ErrInvalidPip = errors.New("pip must be between 1 and 6")

// Die represents a single six-sided die showing a fixed pip value.
// Dice are immutable; rerolling produces a new value.
type Die struct {
	pip int
}

// NewDie creates a die showing the given pip value.
func NewDie(pip int) (Die, error) {
	if pip < 1 || pip > 6 {
		return Die{}, fmt.Errorf("invalid die value %d: %w", pip, ErrInvalidPip)
	}
	return Die{pip: pip}, nil
}

// MustDie creates a die and panics on an invalid pip value (for tests)
func MustDie(pip int) Die {
	die, err := NewDie(pip)
	if err != nil {
		panic(err)
	}
	return die
}

// RollDie returns a die showing a uniformly random pip value.
func RollDie(rng *rand.Rand) Die {
	return Die{pip: rng.IntN(6) + 1}
}

// Pip returns the pip value shown by the die.
func (d Die) Pip() int {
	return d.pip
}

// String returns the pip value as a digit.
func (d Die) String() string {
	return fmt.Sprintf("%d", d.pip)
}
