package yahtzee

// Combination enumerates the scorable Yahtzee combinations ordered from
// weakest to strongest. NoCombination marks a roll that is not five dice.
type Combination uint8

const (
	NoCombination Combination = iota
	Chance
	Ones
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfAKind
	FourOfAKind
	FullHouse
	SmallStraight
	LargeStraight
	Yahtzee
)

// String returns a human-readable combination description.
func (c Combination) String() string {
	switch c {
	case Chance:
		return "Chance"
	case Ones:
		return "Ones"
	case Twos:
		return "Twos"
	case Threes:
		return "Threes"
	case Fours:
		return "Fours"
	case Fives:
		return "Fives"
	case Sixes:
		return "Sixes"
	case ThreeOfAKind:
		return "Three of a Kind"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case SmallStraight:
		return "Small Straight"
	case LargeStraight:
		return "Large Straight"
	case Yahtzee:
		return "Yahtzee"
	default:
		return "No Combination"
	}
}

// Fixed-score combinations.
const (
	fullHouseScore     = 25
	smallStraightScore = 30
	largeStraightScore = 40
	yahtzeeScore       = 50
)

// Straight templates as pip bitmasks (bit n set = pip n present).
var (
	smallStraightMasks = [3]uint8{0b0011110, 0b0111100, 0b1111000}
	largeStraightMasks = [2]uint8{0b0111110, 0b1111110}
)

// Result is a classified roll: the combination tag plus the dice that
// produced it, so the score can be derived without re-rolling.
type Result struct {
	Combination Combination
	Dice        []Die
}

// Score returns the point value of the classified roll.
func (r Result) Score() int {
	switch r.Combination {
	case Ones, Twos, Threes, Fours, Fives, Sixes:
		return sumMatching(r.Dice, numberPip(r.Combination))
	case ThreeOfAKind, FourOfAKind, Chance:
		return sumAll(r.Dice)
	case FullHouse:
		return fullHouseScore
	case SmallStraight:
		return smallStraightScore
	case LargeStraight:
		return largeStraightScore
	case Yahtzee:
		return yahtzeeScore
	default:
		return 0
	}
}

// Classify determines the highest-priority combination for a roll of five
// dice. The priority order is the contract: Yahtzee beats straights, which
// beat rank groups, which beat the number categories highest-pip first,
// with Chance as the fallback that always matches. A roll that is not
// exactly five dice classifies as NoCombination. The input is copied, never
// modified.
func Classify(dice []Die) Result {
	result := Result{Combination: NoCombination, Dice: copyDice(dice)}
	if len(dice) != CupSize {
		return result
	}

	var pipCounts [7]int
	var pipMask uint8
	for _, d := range dice {
		pipCounts[d.Pip()]++
		pipMask |= 1 << d.Pip()
	}

	largest := 0
	pairs := 0
	for _, n := range pipCounts[1:] {
		if n > largest {
			largest = n
		}
		if n == 2 {
			pairs++
		}
	}

	switch {
	case largest == 5:
		result.Combination = Yahtzee
	case matchesAny(pipMask, largeStraightMasks[:]):
		result.Combination = LargeStraight
	case matchesAny(pipMask, smallStraightMasks[:]):
		result.Combination = SmallStraight
	case largest == 3 && pairs == 1:
		result.Combination = FullHouse
	case largest == 4:
		result.Combination = FourOfAKind
	case largest == 3:
		result.Combination = ThreeOfAKind
	default:
		result.Combination = highestNumberCategory(pipCounts)
	}

	return result
}

// matchesAny reports whether the pip set contains all pips of any template.
func matchesAny(pipMask uint8, templates []uint8) bool {
	for _, t := range templates {
		if pipMask&t == t {
			return true
		}
	}
	return false
}

// highestNumberCategory picks the highest pip present, falling back to
// Chance when no die matches (unreachable for well-formed rolls, since any
// pip present yields its number category).
func highestNumberCategory(pipCounts [7]int) Combination {
	for pip := 6; pip >= 1; pip-- {
		if pipCounts[pip] > 0 {
			return numberCombination(pip)
		}
	}
	return Chance
}

func numberCombination(pip int) Combination {
	switch pip {
	case 1:
		return Ones
	case 2:
		return Twos
	case 3:
		return Threes
	case 4:
		return Fours
	case 5:
		return Fives
	default:
		return Sixes
	}
}

func numberPip(c Combination) int {
	switch c {
	case Ones:
		return 1
	case Twos:
		return 2
	case Threes:
		return 3
	case Fours:
		return 4
	case Fives:
		return 5
	default:
		return 6
	}
}

func sumMatching(dice []Die, pip int) int {
	total := 0
	for _, d := range dice {
		if d.Pip() == pip {
			total += pip
		}
	}
	return total
}

func sumAll(dice []Die) int {
	total := 0
	for _, d := range dice {
		total += d.Pip()
	}
	return total
}

func copyDice(dice []Die) []Die {
	out := make([]Die, len(dice))
	copy(out, dice)
	return out
}
