package engine

import "math/rand"

// NewDeck builds the 52-card pack in canonical (unshuffled) order: all
// ranks of Clubs, then Diamonds, then Hearts, then Spades. Pidro always
// uses the full pack and never a joker.
func NewDeck() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle returns a new slice containing cards in a random order produced
// by rng. The input slice is left untouched, keeping every operation that
// touches GameState pure: callers must pass a *rand.Rand derived from the
// game's seed, never the package-level math/rand source.
func Shuffle(cards []Card, rng *rand.Rand) []Card {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// Draw splits the top n cards off the front of deck, returning the drawn
// cards and the remaining deck. "Top of the deck" is index 0. Drawing more
// cards than are available returns every remaining card.
func Draw(deck []Card, n int) (drawn, remaining []Card) {
	if n > len(deck) {
		n = len(deck)
	}
	if n <= 0 {
		return nil, deck
	}
	drawn = make([]Card, n)
	copy(drawn, deck[:n])
	remaining = make([]Card, len(deck)-n)
	copy(remaining, deck[n:])
	return drawn, remaining
}
