package engine

import "testing"

func TestSuitSameColor(t *testing.T) {
	tests := []struct {
		a, b     Suit
		expected bool
	}{
		{Hearts, Diamonds, true},
		{Diamonds, Hearts, true},
		{Spades, Clubs, true},
		{Clubs, Spades, true},
		{Hearts, Spades, false},
		{Hearts, Clubs, false},
		{Diamonds, Spades, false},
		{Diamonds, Clubs, false},
	}

	for _, tt := range tests {
		if got := tt.a.SameColor(tt.b); got != tt.expected {
			t.Errorf("%s.SameColor(%s) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestWrongFiveIsTrump(t *testing.T) {
	// scenario 2: declaring diamonds as trump makes 5♥ trump.
	card := NewCard(Five, Hearts)
	if !card.IsTrump(Diamonds) {
		t.Error("5H should be trump when diamonds is declared")
	}
	if !card.IsWrongFive(Diamonds) {
		t.Error("5H should be identified as the wrong-5 under diamonds trump")
	}
	if card.IsRightFive(Diamonds) {
		t.Error("5H is not the right-5 under diamonds trump")
	}

	rightFive := NewCard(Five, Diamonds)
	if !rightFive.IsRightFive(Diamonds) {
		t.Error("5D should be the right-5 under diamonds trump")
	}

	// Off-color, off-suit fives are never trump.
	if NewCard(Five, Clubs).IsTrump(Diamonds) {
		t.Error("5C should never be trump under diamonds trump")
	}
	if NewCard(Five, Spades).IsTrump(Diamonds) {
		t.Error("5S should never be trump under diamonds trump")
	}
}

func TestRightFiveBeatsWrongFive(t *testing.T) {
	for _, trump := range suits {
		right := NewCard(Five, trump)
		wrong := NewCard(Five, trump.oppositeColorSuit())
		if right.CompareTrump(wrong, trump) <= 0 {
			t.Errorf("right-5 should beat wrong-5 under trump %s", trump)
		}
	}
}

func TestTrumpRankingAroundFives(t *testing.T) {
	trump := Clubs
	six := NewCard(Six, trump)
	right := NewCard(Five, trump)
	wrong := NewCard(Five, trump.oppositeColorSuit())
	four := NewCard(Four, trump)

	if six.CompareTrump(right, trump) <= 0 {
		t.Error("6 of trump should beat the right-5")
	}
	if right.CompareTrump(wrong, trump) <= 0 {
		t.Error("right-5 should beat wrong-5")
	}
	if wrong.CompareTrump(four, trump) <= 0 {
		t.Error("wrong-5 should beat the 4 of trump")
	}
}

func TestTrumpRankingTransitive(t *testing.T) {
	trump := Hearts
	cards := []Card{
		NewCard(Ace, trump), NewCard(King, trump), NewCard(Queen, trump),
		NewCard(Jack, trump), NewCard(Ten, trump), NewCard(Nine, trump),
		NewCard(Eight, trump), NewCard(Seven, trump), NewCard(Six, trump),
		NewCard(Five, trump), NewCard(Five, trump.oppositeColorSuit()),
		NewCard(Four, trump), NewCard(Three, trump), NewCard(Two, trump),
	}

	for i := 0; i < len(cards); i++ {
		for j := 0; j < len(cards); j++ {
			for k := 0; k < len(cards); k++ {
				ab := cards[i].CompareTrump(cards[j], trump)
				bc := cards[j].CompareTrump(cards[k], trump)
				ac := cards[i].CompareTrump(cards[k], trump)
				if ab > 0 && bc > 0 && ac <= 0 {
					t.Errorf("transitivity violated: %s > %s > %s but not %s > %s",
						cards[i], cards[j], cards[k], cards[i], cards[k])
				}
			}
		}
	}
}

func TestPointValueSumIsFourteen(t *testing.T) {
	trump := Spades
	total := 0
	for _, suit := range suits {
		for rank := Two; rank <= Ace; rank++ {
			total += NewCard(rank, suit).PointValue(trump)
		}
	}
	if total != 14 {
		t.Errorf("total point value across the deck should be 14, got %d", total)
	}
}

func TestPointValueByCard(t *testing.T) {
	trump := Clubs
	tests := []struct {
		card Card
		want int
	}{
		{NewCard(Ace, Clubs), 1},
		{NewCard(Jack, Clubs), 1},
		{NewCard(Ten, Clubs), 1},
		{NewCard(Two, Clubs), 1},
		{NewCard(Five, Clubs), 5},
		{NewCard(Five, Spades), 5}, // wrong-5
		{NewCard(King, Clubs), 0},
		{NewCard(Ace, Hearts), 0},
	}
	for _, tt := range tests {
		if got := tt.card.PointValue(trump); got != tt.want {
			t.Errorf("%s.PointValue(%s) = %d, want %d", tt.card, trump, got, tt.want)
		}
	}
}
