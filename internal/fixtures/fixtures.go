// Package fixtures generates JSON fixture files of seeded deals and rolls
// together with their expected classification, for use as regression data
// by client implementations.
package fixtures

import (
	"encoding/json"
	"fmt"

	"github.com/lox/tabletop/internal/fileutil"
	"github.com/lox/tabletop/internal/randutil"
	"github.com/lox/tabletop/poker"
	"github.com/lox/tabletop/yahtzee"
)

// File is the top-level fixture document. It deliberately carries no
// timestamp so regenerating with the same seed is byte-identical.
type File struct {
	Game  string   `json:"game"`
	Seed  int64    `json:"seed"`
	Count int      `json:"count"`
	Hands []Record `json:"hands"`
}

// Record is one seeded hand with its expected classification.
type Record struct {
	Seed     int64    `json:"seed"`
	Cards    []string `json:"cards,omitempty"`
	Dice     []int    `json:"dice,omitempty"`
	Category string   `json:"category"`
	Score    *int     `json:"score,omitempty"`
}

// Generate produces an indented JSON fixture document for the given game.
func Generate(game string, count int, seed int64) ([]byte, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	file := File{
		Game:  game,
		Seed:  seed,
		Count: count,
		Hands: make([]Record, 0, count),
	}

	switch game {
	case "poker":
		for i := 0; i < count; i++ {
			file.Hands = append(file.Hands, pokerRecord(seed+int64(i)))
		}
	case "yahtzee":
		for i := 0; i < count; i++ {
			file.Hands = append(file.Hands, yahtzeeRecord(seed+int64(i)))
		}
	default:
		return nil, fmt.Errorf("unknown game %q", game)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fixtures: %w", err)
	}
	return append(data, '\n'), nil
}

// Write generates fixtures and writes them atomically to path.
func Write(path, game string, count int, seed int64) error {
	data, err := Generate(game, count, seed)
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, data, 0644)
}

func pokerRecord(seed int64) Record {
	deck := poker.NewDeck(randutil.New(seed))
	deck.Shuffle()
	hand := deck.DealN(5)

	cards := make([]string, len(hand))
	for i, c := range hand {
		cards[i] = c.Rank.String() + suitLetter(c.Suit)
	}

	return Record{
		Seed:     seed,
		Cards:    cards,
		Category: poker.Classify(hand).String(),
	}
}

func yahtzeeRecord(seed int64) Record {
	cup := yahtzee.RollCup(randutil.New(seed))
	result := yahtzee.Classify(cup.Dice())

	dice := make([]int, 0, yahtzee.CupSize)
	for _, d := range cup.Dice() {
		dice = append(dice, d.Pip())
	}

	score := result.Score()
	return Record{
		Seed:     seed,
		Dice:     dice,
		Category: result.Combination.String(),
		Score:    &score,
	}
}

// suitLetter keeps fixture card notation ASCII so it round-trips through
// ParseCards.
func suitLetter(s poker.Suit) string {
	switch s {
	case poker.Spades:
		return "s"
	case poker.Hearts:
		return "h"
	case poker.Diamonds:
		return "d"
	default:
		return "c"
	}
}
