package engine

import "testing"

// TestSecondDealToppedUpBeforeRob checks that the second deal tops every
// non-dealer seat up to final_hand_size before the dealer robs what is
// left of the deck, rather than the rob leaving non-dealer seats short.
func TestSecondDealToppedUpBeforeRob(t *testing.T) {
	s := newTestGame(t)
	s, bidder := advanceToDeclaring(t, s)
	s, err := ApplyAction(s, DeclareTrumpAction{Position: bidder, Suit: Hearts})
	if err != nil {
		t.Fatalf("declare trump: %v", err)
	}

	for _, pos := range Positions {
		if pos == s.CurrentDealer {
			continue
		}
		if len(s.Players[pos].Hand) > s.Config.FinalHandSize {
			t.Fatalf("seat %v still holds more than final_hand_size before any kill: %d", pos, len(s.Players[pos].Hand))
		}
		if len(s.Players[pos].Hand) < s.Config.FinalHandSize {
			t.Fatalf("seat %v was not topped up to final_hand_size: %d", pos, len(s.Players[pos].Hand))
		}
	}
}

// TestDealerRobEventCarriesNoCardIdentities checks that
// dealer_robbed_pack and second_deal_complete report only counts, never
// which cards moved.
func TestDealerRobEventCarriesNoCardIdentities(t *testing.T) {
	s := advanceToPlaying(t, newTestGame(t), Spades)

	for _, ev := range s.Events {
		switch e := ev.(type) {
		case DealerRobbedPackEvent:
			if e.TookCount < 0 || e.KeptCount < 0 {
				t.Fatalf("unexpected negative counts in dealer_robbed_pack: %+v", e)
			}
		case SecondDealCompleteEvent:
			for _, n := range e.Counts {
				if n < 0 {
					t.Fatalf("unexpected negative count in second_deal_complete: %+v", e)
				}
			}
		}
	}
}

func TestAutoRobKeepsFinalHandSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoDealerRob = true
	s := NewGame(cfg, 7)
	s = advanceToPlaying(t, s, Diamonds)

	dealer := s.CurrentDealer
	held := len(s.Players[dealer].Hand) + len(s.KilledCards[dealer])
	if held != s.Config.FinalHandSize {
		t.Fatalf("expected the dealer to hold exactly final_hand_size cards (in hand + killed), got %d", held)
	}
}

func TestManualRobRejectsWrongCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoDealerRob = false
	s := NewGame(cfg, 3)
	s, bidder := advanceToDeclaring(t, s)
	s, err := ApplyAction(s, DeclareTrumpAction{Position: bidder, Suit: Clubs})
	if err != nil {
		t.Fatalf("declare trump: %v", err)
	}
	if s.Phase != PhaseSecondDeal || s.CurrentTurn != s.CurrentDealer {
		t.Fatalf("expected to be waiting on the dealer's manual rob, got phase=%v turn=%v", s.Phase, s.CurrentTurn)
	}

	dealer := s.Players[s.CurrentDealer]
	if _, err := ApplyAction(s, DealerRobPackAction{Position: s.CurrentDealer, Selected: dealer.Hand[:1]}); err == nil {
		t.Fatalf("expected an error for a selection not matching final_hand_size")
	}
}
