package yahtzee

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		dice     string
		expected Combination
		score    int
	}{
		{"Yahtzee", "66666", Yahtzee, 50},
		{"Yahtzee of ones", "11111", Yahtzee, 50},
		{"Large straight low", "12345", LargeStraight, 40},
		{"Large straight high", "23456", LargeStraight, 40},
		{"Large straight unsorted", "53142", LargeStraight, 40},
		{"Small straight low", "12344", SmallStraight, 30},
		{"Small straight middle", "23455", SmallStraight, 30},
		{"Small straight high", "34566", SmallStraight, 30},
		{"Small straight with outlier", "12341", SmallStraight, 30},
		{"Full house", "44422", FullHouse, 25},
		{"Full house mixed order", "25252", FullHouse, 25},
		{"Four of a kind", "33331", FourOfAKind, 13},
		{"Three of a kind", "33321", ThreeOfAKind, 12},
		{"Sixes", "61123", Sixes, 6},
		{"Two sixes", "66123", Sixes, 12},
		{"Fives beat fours", "54421", Fives, 5},
		{"Fours", "44123", Fours, 8},
		{"Threes", "33221", Threes, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(MustParseDice(tt.dice))

			if result.Combination != tt.expected {
				t.Errorf("Classify(%s) = %s, want %s", tt.dice, result.Combination, tt.expected)
			}
			if got := result.Score(); got != tt.score {
				t.Errorf("Score(%s) = %d, want %d", tt.dice, got, tt.score)
			}
		})
	}
}

func TestClassifyWrongArity(t *testing.T) {
	tests := []struct {
		name string
		dice string
	}{
		{"Empty roll", ""},
		{"Four dice", "1234"},
		{"Six dice", "123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(MustParseDice(tt.dice))

			if result.Combination != NoCombination {
				t.Errorf("Classify(%s) = %s, want No Combination", tt.dice, result.Combination)
			}
			if result.Score() != 0 {
				t.Errorf("Score(%s) = %d, want 0", tt.dice, result.Score())
			}
		})
	}
}

// A three of a kind outranks its number category: 33321 scores as the sum
// of all dice, not as Threes.
func TestThreeOfAKindBeatsNumberCategory(t *testing.T) {
	result := Classify(MustParseDice("33321"))

	if result.Combination != ThreeOfAKind {
		t.Fatalf("Classify(33321) = %s, want Three of a Kind", result.Combination)
	}
	if result.Score() != 12 {
		t.Errorf("Score(33321) = %d, want 12", result.Score())
	}
}

// The highest pip present wins among number categories: a six beats a
// pair of ones because lower categories are never reached.
func TestHighestNumberCategoryWins(t *testing.T) {
	result := Classify(MustParseDice("61125"))

	if result.Combination != Sixes {
		t.Errorf("Classify(61125) = %s, want Sixes", result.Combination)
	}
	if result.Score() != 6 {
		t.Errorf("Score(61125) = %d, want 6", result.Score())
	}
}

// Ones and Twos are unreachable through Classify: any roll whose highest
// pip is 1 or 2 necessarily contains a triple (or is a Yahtzee), which
// outranks the number categories. The cases exist only for callers scoring
// an explicitly chosen combination.
func TestLowNumberCategoriesAreShadowed(t *testing.T) {
	result := Classify(MustParseDice("21211"))
	if result.Combination != ThreeOfAKind {
		t.Errorf("Classify(21211) = %s, want Three of a Kind", result.Combination)
	}

	// Scoring the Ones box directly still works.
	ones := Result{Combination: Ones, Dice: MustParseDice("21211")}
	if ones.Score() != 3 {
		t.Errorf("Ones score = %d, want 3", ones.Score())
	}
}

func TestClassifyDoesNotMutateInput(t *testing.T) {
	dice := MustParseDice("54321")
	before := make([]Die, len(dice))
	copy(before, dice)

	Classify(dice)

	for i := range dice {
		if dice[i] != before[i] {
			t.Errorf("die %d changed: %s -> %s", i, before[i], dice[i])
		}
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	dice := MustParseDice("44422")

	first := Classify(dice)
	second := Classify(dice)

	if first.Combination != second.Combination || first.Score() != second.Score() {
		t.Errorf("Classify not idempotent: %s/%d then %s/%d",
			first.Combination, first.Score(), second.Combination, second.Score())
	}
}
