package engine

import "math/rand"

// This file implements the two purely automatic opening phases:
// choosing the first dealer and dealing the initial hand through an
// explicit dealer_selection phase plus a seed-derived shuffle.

// handDeckSeed derives a per-hand PRNG seed from the game's seed and the
// current hand number, so that replaying the same seed and action
// sequence always reshuffles identically.
func handDeckSeed(s GameState) int64 {
	return s.Seed + int64(s.HandNumber)*1_000_003
}

// runDealerSelectionPhase picks the first dealer. NewGame already fixes
// North as the opening dealer, so this phase's only job is to record the
// event and advance.
func runDealerSelectionPhase(s GameState) (GameState, error) {
	next := s.clone()
	next = next.appendEvent(DealerSelectedEvent{
		eventBase: eventBase{ActionSeq: next.ActionCount},
		Dealer:    next.CurrentDealer,
	})
	next.Phase = PhaseDealing
	return next, nil
}

// dealBatchSize is the number of cards dealt to a seat per round of the
// dealing ritual: three batches of three, dealt clockwise, rather than one
// card or one whole hand at a time.
const dealBatchSize = 3

// runDealingPhase shuffles a fresh deck and deals initial_deal_size cards
// to each seat, starting left of the dealer, in batches of dealBatchSize
// cards dealt clockwise round by round rather than one whole hand at a
// time.
func runDealingPhase(s GameState) (GameState, error) {
	next := s.clone()
	rng := rand.New(rand.NewSource(handDeckSeed(next)))
	deck := Shuffle(NewDeck(), rng)

	var hands [4][]Card
	remaining := next.Config.InitialDealSize
	for remaining > 0 {
		batch := dealBatchSize
		if batch > remaining {
			batch = remaining
		}
		pos := next.CurrentDealer.Next()
		for i := 0; i < 4; i++ {
			var drawn []Card
			drawn, deck = Draw(deck, batch)
			next.Players[pos].Hand = AppendCards(next.Players[pos].Hand, drawn...)
			hands[pos] = AppendCards(hands[pos], drawn...)
			pos = pos.Next()
		}
		remaining -= batch
	}
	next.Deck = deck

	next = next.appendEvent(CardsDealtEvent{
		eventBase: eventBase{ActionSeq: next.ActionCount},
		Hands:     hands,
	})

	next.Phase = PhaseBidding
	next.CurrentTurn = next.CurrentDealer.Next()
	return next, nil
}
