package poker

import "testing"

func TestParseCards(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Card
		wantErr bool
	}{
		{
			name:  "Royal flush cards",
			input: "AsKsQsJsTs",
			want: []Card{
				{Rank: Ace, Suit: Spades},
				{Rank: King, Suit: Spades},
				{Rank: Queen, Suit: Spades},
				{Rank: Jack, Suit: Spades},
				{Rank: Ten, Suit: Spades},
			},
		},
		{
			name:  "Mixed suits with spaces",
			input: "2c 9h Td",
			want: []Card{
				{Rank: Two, Suit: Clubs},
				{Rank: Nine, Suit: Hearts},
				{Rank: Ten, Suit: Diamonds},
			},
		},
		{
			name:  "Lowercase ranks",
			input: "askh",
			want: []Card{
				{Rank: Ace, Suit: Spades},
				{Rank: King, Suit: Hearts},
			},
		},
		{
			name:    "Odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:    "Bad rank",
			input:   "Xs",
			wantErr: true,
		},
		{
			name:    "Bad suit",
			input:   "Ax",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCards(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCards(%q) failed: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseCards(%q) = %d cards, want %d", tt.input, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("card %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMustParseCardsPanicsOnBadInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseCards should panic on invalid input")
		}
	}()
	MustParseCards("zz")
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{NewCard(Spades, Ace), "A♠"},
		{NewCard(Hearts, Ten), "T♥"},
		{NewCard(Diamonds, Two), "2♦"},
		{NewCard(Clubs, Queen), "Q♣"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestFormatCards(t *testing.T) {
	cards := MustParseCards("AsKh2d")
	if got := FormatCards(cards); got != "A♠ K♥ 2♦" {
		t.Errorf("FormatCards = %q", got)
	}
}

func TestIsRed(t *testing.T) {
	if !NewCard(Hearts, Two).IsRed() || !NewCard(Diamonds, Two).IsRed() {
		t.Error("hearts and diamonds should be red")
	}
	if NewCard(Spades, Two).IsRed() || NewCard(Clubs, Two).IsRed() {
		t.Error("spades and clubs should not be red")
	}
}
