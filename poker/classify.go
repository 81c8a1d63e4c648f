package poker

import "sort"

// HandCategory enumerates the categories of five-card poker hands ordered
// from weakest to strongest. NoRank marks a hand that is not five cards.
type HandCategory uint8

const (
	NoRank HandCategory = iota
	HighCard
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable category description.
func (c HandCategory) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "No Rank"
	}
}

// Classify determines the best category for a five-card hand. The checks run
// strongest category first; the order is the contract. Any hand that is not
// exactly five cards classifies as NoRank. The input slice is never modified.
func Classify(cards []Card) HandCategory {
	if len(cards) != 5 {
		return NoRank
	}

	groups := rankGroups(cards)
	flush := isFlush(cards)
	sequential, high := straightHigh(cards)

	switch {
	case flush && sequential && high == Ace:
		return RoyalFlush
	case flush && sequential:
		return StraightFlush
	case groups.largest == 4:
		return FourOfAKind
	case groups.largest == 3 && groups.pairs == 1:
		return FullHouse
	case flush:
		return Flush
	case sequential:
		return Straight
	case groups.largest == 3:
		return ThreeOfAKind
	case groups.pairs == 2:
		return TwoPair
	case groups.pairs == 1:
		return OnePair
	default:
		return HighCard
	}
}

// groupCounts summarises how ranks repeat within a hand.
type groupCounts struct {
	largest int // size of the biggest rank group
	pairs   int // number of ranks appearing exactly twice
}

func rankGroups(cards []Card) groupCounts {
	counts := make(map[Rank]int, len(cards))
	for _, c := range cards {
		counts[c.Rank]++
	}

	var g groupCounts
	for _, n := range counts {
		if n > g.largest {
			g.largest = n
		}
		if n == 2 {
			g.pairs++
		}
	}
	return g
}

func isFlush(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// straightHigh reports whether the five ranks form a straight and, if so,
// the rank of its high card. The wheel (A-2-3-4-5) counts as a Five-high
// straight, which keeps it out of the royal flush check above.
func straightHigh(cards []Card) (bool, Rank) {
	ranks := make([]int, len(cards))
	for i, c := range cards {
		ranks[i] = int(c.Rank)
	}
	sort.Ints(ranks)

	if isWheel(ranks) {
		return true, Five
	}

	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]+1 {
			return false, 0
		}
	}
	return true, Rank(ranks[len(ranks)-1])
}

func isWheel(sorted []int) bool {
	wheel := []int{int(Two), int(Three), int(Four), int(Five), int(Ace)}
	for i, r := range wheel {
		if sorted[i] != r {
			return false
		}
	}
	return true
}
