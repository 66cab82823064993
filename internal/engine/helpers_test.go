package engine

import "testing"

// advanceToDeclaring drives a freshly dealt game through bidding with the
// first seat to act bidding 10 and everyone else passing, returning the
// resulting state and the winning bidder.
func advanceToDeclaring(t *testing.T, s GameState) (GameState, Position) {
	t.Helper()
	bidder := s.CurrentTurn
	s, err := ApplyAction(s, BidAction{Position: bidder, Amount: 10})
	if err != nil {
		t.Fatalf("bid: %v", err)
	}
	for s.Phase == PhaseBidding {
		s, err = ApplyAction(s, PassAction{Position: s.CurrentTurn})
		if err != nil {
			t.Fatalf("pass: %v", err)
		}
	}
	if s.Phase != PhaseDeclaring {
		t.Fatalf("expected declaring phase, got %v", s.Phase)
	}
	return s, bidder
}

// advanceToPlaying drives a freshly dealt game all the way to the playing
// phase, declaring trump as suit and, when the config forces a manual
// rob, having the dealer keep its six lowest-indexed cards.
func advanceToPlaying(t *testing.T, s GameState, trump Suit) GameState {
	t.Helper()
	s, bidder := advanceToDeclaring(t, s)

	s, err := ApplyAction(s, DeclareTrumpAction{Position: bidder, Suit: trump})
	if err != nil {
		t.Fatalf("declare trump: %v", err)
	}

	if s.Phase == PhaseSecondDeal && s.CurrentTurn == s.CurrentDealer {
		dealer := s.Players[s.CurrentDealer]
		pool := AppendCards(dealer.Hand, s.Deck...)
		selected := CloneCards(pool[:s.Config.FinalHandSize])
		s, err = ApplyAction(s, DealerRobPackAction{Position: s.CurrentDealer, Selected: selected})
		if err != nil {
			t.Fatalf("manual rob: %v", err)
		}
	}

	if s.Phase != PhasePlaying {
		t.Fatalf("expected playing phase, got %v", s.Phase)
	}
	return s
}
