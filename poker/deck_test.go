package poker

import (
	rand "math/rand/v2"
	"testing"

	"github.com/lox/tabletop/internal/randutil"
)

func testRNG(seed int64) *rand.Rand {
	return randutil.New(seed)
}

func TestNewDeckHas52DistinctCards(t *testing.T) {
	deck := NewDeck(testRNG(1))

	if deck.CardsRemaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", deck.CardsRemaining())
	}

	seen := make(map[Card]bool)
	for !deck.IsEmpty() {
		card, ok := deck.Deal()
		if !ok {
			t.Fatal("Deal failed on non-empty deck")
		}
		if seen[card] {
			t.Errorf("duplicate card dealt: %s", card)
		}
		seen[card] = true
	}

	if len(seen) != 52 {
		t.Errorf("expected 52 distinct cards, got %d", len(seen))
	}
}

func TestNewDeckOrder(t *testing.T) {
	deck := NewDeck(testRNG(1))

	// Suit-major, rank-minor: the first card is 2♠, the fourteenth is 2♥.
	first, _ := deck.Deal()
	if first != NewCard(Spades, Two) {
		t.Errorf("first card = %s, want 2♠", first)
	}

	deck.DealN(11)
	last, _ := deck.Deal()
	if last != NewCard(Spades, Ace) {
		t.Errorf("13th card = %s, want A♠", last)
	}

	next, _ := deck.Deal()
	if next != NewCard(Hearts, Two) {
		t.Errorf("14th card = %s, want 2♥", next)
	}
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	a := NewDeck(testRNG(42))
	b := NewDeck(testRNG(42))

	a.Shuffle()
	b.Shuffle()

	for !a.IsEmpty() {
		ca, _ := a.Deal()
		cb, _ := b.Deal()
		if ca != cb {
			t.Fatalf("decks diverged: %s vs %s", ca, cb)
		}
	}
}

func TestDealN(t *testing.T) {
	deck := NewDeck(testRNG(7))

	hand := deck.DealN(5)
	if len(hand) != 5 {
		t.Errorf("expected 5 cards, got %d", len(hand))
	}
	if deck.CardsRemaining() != 47 {
		t.Errorf("expected 47 remaining, got %d", deck.CardsRemaining())
	}

	// Over-dealing returns only what is left.
	rest := deck.DealN(100)
	if len(rest) != 47 {
		t.Errorf("expected 47 cards, got %d", len(rest))
	}
	if !deck.IsEmpty() {
		t.Error("deck should be empty")
	}

	if _, ok := deck.Deal(); ok {
		t.Error("Deal on empty deck should report failure")
	}
}

func TestReset(t *testing.T) {
	deck := NewDeck(testRNG(3))
	deck.DealN(30)

	deck.Reset()
	if deck.CardsRemaining() != 52 {
		t.Errorf("expected 52 after reset, got %d", deck.CardsRemaining())
	}
}
