package engine

// This file implements hand operations as free functions over a plain
// []Card, so that a hand is a value living inside an immutable
// GameState rather than a mutable object.

// ContainsCard reports whether cards holds c.
func ContainsCard(cards []Card, c Card) bool {
	for _, have := range cards {
		if have.Equal(c) {
			return true
		}
	}
	return false
}

// RemoveCard returns a new slice with the first occurrence of c removed.
// The second return value is false if c was not present, in which case
// the returned slice is a copy of the input.
func RemoveCard(cards []Card, c Card) ([]Card, bool) {
	result := make([]Card, 0, len(cards))
	removed := false
	for _, have := range cards {
		if !removed && have.Equal(c) {
			removed = true
			continue
		}
		result = append(result, have)
	}
	return result, removed
}

// AppendCards returns a new slice with extra appended after cards.
func AppendCards(cards []Card, extra ...Card) []Card {
	result := make([]Card, 0, len(cards)+len(extra))
	result = append(result, cards...)
	result = append(result, extra...)
	return result
}

// TrumpCards returns the subset of cards that are trump under the given
// suit, preserving order.
func TrumpCards(cards []Card, trump Suit) []Card {
	var result []Card
	for _, c := range cards {
		if c.IsTrump(trump) {
			result = append(result, c)
		}
	}
	return result
}

// NonTrumpCards returns the subset of cards that are not trump under the
// given suit, preserving order.
func NonTrumpCards(cards []Card, trump Suit) []Card {
	var result []Card
	for _, c := range cards {
		if !c.IsTrump(trump) {
			result = append(result, c)
		}
	}
	return result
}

// NonPointTrumps returns the trump cards in cards that carry no point
// value — the candidates the kill step may remove.
func NonPointTrumps(cards []Card, trump Suit) []Card {
	var result []Card
	for _, c := range cards {
		if c.IsTrump(trump) && !c.IsPointCard(trump) {
			result = append(result, c)
		}
	}
	return result
}

// HighestTrump returns the strongest trump card in cards under the given
// suit. ok is false if cards holds no trump.
func HighestTrump(cards []Card, trump Suit) (card Card, ok bool) {
	trumps := TrumpCards(cards, trump)
	if len(trumps) == 0 {
		return Card{}, false
	}
	best := trumps[0]
	for _, c := range trumps[1:] {
		if c.CompareTrump(best, trump) > 0 {
			best = c
		}
	}
	return best, true
}

// CloneCards returns an independent copy of cards.
func CloneCards(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}
