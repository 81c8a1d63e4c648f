package yahtzee

import (
	"fmt"
	rand "math/rand/v2"
	"strings"
)

// CupSize is the number of dice rolled together in a Yahtzee turn.
const CupSize = 5

// Cup holds the five dice of a single roll. Cups are value types:
// rerolling returns a new cup and never changes the receiver.
type Cup struct {
	dice [CupSize]Die
}

// NewCup creates a cup from exactly five dice.
func NewCup(dice ...Die) (Cup, error) {
	if len(dice) != CupSize {
		return Cup{}, fmt.Errorf("cup requires %d dice, got %d", CupSize, len(dice))
	}

	var cup Cup
	copy(cup.dice[:], dice)
	return cup, nil
}

// RollCup returns a cup of five freshly rolled dice.
func RollCup(rng *rand.Rand) Cup {
	var cup Cup
	for i := range cup.dice {
		cup.dice[i] = RollDie(rng)
	}
	return cup
}

// Reroll returns a new cup with the dice at the given positions (0-4)
// rolled again. Positions outside the cup are ignored.
func (c Cup) Reroll(rng *rand.Rand, positions ...int) Cup {
	for _, p := range positions {
		if p >= 0 && p < CupSize {
			c.dice[p] = RollDie(rng)
		}
	}
	return c
}

// Dice returns a copy of the dice in the cup.
func (c Cup) Dice() []Die {
	dice := make([]Die, CupSize)
	copy(dice, c.dice[:])
	return dice
}

// String renders the cup as five digits, e.g. "66521".
func (c Cup) String() string {
	var sb strings.Builder
	for _, d := range c.dice {
		sb.WriteString(d.String())
	}
	return sb.String()
}

// ParseDice parses a string of digits into dice, e.g. "66521".
func ParseDice(s string) ([]Die, error) {
	s = strings.ReplaceAll(s, " ", "")

	dice := make([]Die, 0, len(s))
	for i := 0; i < len(s); i++ {
		die, err := NewDie(int(s[i] - '0'))
		if err != nil {
			return nil, fmt.Errorf("invalid die '%c' at position %d: %w", s[i], i, err)
		}
		dice = append(dice, die)
	}

	return dice, nil
}

// MustParseDice parses dice and panics on error (for tests)
func MustParseDice(s string) []Die {
	dice, err := ParseDice(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse dice '%s': %v", s, err))
	}
	return dice
}
