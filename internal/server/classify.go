package server

import (
	"fmt"
	"strings"

	"github.com/lox/tabletop/poker"
	"github.com/lox/tabletop/yahtzee"
)

// classifyPoker resolves a poker classification request. Hands that are not
// five cards classify as No Rank rather than erroring, matching the library
// contract; only unparseable notation is a request error.
func classifyPoker(req ClassifyPokerData) (*ResultData, error) {
	cards, err := poker.ParseCards(strings.Join(req.Cards, ""))
	if err != nil {
		return nil, fmt.Errorf("invalid cards: %w", err)
	}

	return &ResultData{
		Game:     "poker",
		Category: poker.Classify(cards).String(),
	}, nil
}

// classifyYahtzee resolves a Yahtzee classification request. Pips outside
// 1..6 are a request error; wrong arity classifies as No Combination with
// score zero.
func classifyYahtzee(req ClassifyYahtzeeData) (*ResultData, error) {
	dice := make([]yahtzee.Die, 0, len(req.Dice))
	for _, pip := range req.Dice {
		die, err := yahtzee.NewDie(pip)
		if err != nil {
			return nil, fmt.Errorf("invalid dice: %w", err)
		}
		dice = append(dice, die)
	}

	result := yahtzee.Classify(dice)
	score := result.Score()

	return &ResultData{
		Game:     "yahtzee",
		Category: result.Combination.String(),
		Score:    &score,
	}, nil
}
