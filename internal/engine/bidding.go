package engine

// This file implements the bidding phase: one bid or pass
// per seat, starting left of the dealer, dealer last, with the dealer
// forced to take the bid at 6 if everyone else passed.

// dealerForced reports whether the seat on turn must make a forced dealer
// bid: the dealer's turn, after the other three seats all passed.
func dealerForced(s GameState) bool {
	return s.CurrentTurn == s.CurrentDealer && s.HighestBid == nil && s.biddingActed == 3
}

// validBidAmount reports whether amount is a legal next bid given the
// current highest bid. A second bid of 14 is the one case where a bid
// does not need to be strictly higher than the current high.
func validBidAmount(amount int, highest *Bid) bool {
	if amount < 6 || amount > 14 {
		return false
	}
	if highest == nil {
		return true
	}
	if amount > highest.Amount {
		return true
	}
	return amount == 14 && highest.Amount == 14
}

func handleBid(s GameState, a BidAction) (GameState, error) {
	if s.Phase != PhaseBidding {
		return s, newError(ErrInvalidActionForPhase, a.Position, s.Phase, "cannot bid outside the bidding phase")
	}
	if a.Position != s.CurrentTurn {
		return s, newError(ErrNotYourTurn, a.Position, s.Phase, "")
	}

	if dealerForced(s) {
		if a.Amount != 6 {
			return s, newError(ErrInvalidBid, a.Position, s.Phase, "dealer must take the forced bid at 6")
		}
	} else if !validBidAmount(a.Amount, s.HighestBid) {
		return s, newError(ErrInvalidBid, a.Position, s.Phase, "bid must be 6..14 and strictly higher than the current high")
	}

	next := s.clone()
	bid := Bid{Position: a.Position, Amount: a.Amount}
	next.Bids = append(next.Bids, bid)
	next.HighestBid = &bid
	next.biddingActed++
	next = next.appendEvent(BidMadeEvent{
		eventBase: eventBase{ActionSeq: next.ActionCount},
		Position:  a.Position,
		Amount:    a.Amount,
	})

	return advanceBidding(next)
}

func handlePass(s GameState, a PassAction) (GameState, error) {
	if s.Phase != PhaseBidding {
		return s, newError(ErrInvalidActionForPhase, a.Position, s.Phase, "cannot pass outside the bidding phase")
	}
	if a.Position != s.CurrentTurn {
		return s, newError(ErrNotYourTurn, a.Position, s.Phase, "")
	}
	if dealerForced(s) {
		return s, newError(ErrInvalidBid, a.Position, s.Phase, "dealer cannot pass when everyone else has passed")
	}

	next := s.clone()
	next.biddingActed++
	next = next.appendEvent(PlayerPassedEvent{
		eventBase: eventBase{ActionSeq: next.ActionCount},
		Position:  a.Position,
	})

	return advanceBidding(next)
}

// advanceBidding moves current_turn to the next seat, or — once all four
// seats have acted — completes bidding and moves to declaring.
func advanceBidding(s GameState) (GameState, error) {
	if s.biddingActed >= 4 {
		winner := *s.HighestBid
		s.BiddingTeam = TeamOf(winner.Position)
		s.Phase = PhaseDeclaring
		s.CurrentTurn = winner.Position
		s = s.appendEvent(BiddingCompleteEvent{
			eventBase:   eventBase{ActionSeq: s.ActionCount},
			Winner:      winner.Position,
			Amount:      winner.Amount,
			BiddingTeam: s.BiddingTeam,
		})
		return s, nil
	}
	s.CurrentTurn = s.CurrentTurn.Next()
	return s, nil
}

// legalBidActions enumerates the bidding actions available to pos.
func legalBidActions(s GameState, pos Position) []Action {
	if s.Phase != PhaseBidding || pos != s.CurrentTurn {
		return nil
	}
	if dealerForced(s) {
		return []Action{BidAction{Position: pos, Amount: 6}}
	}
	actions := make([]Action, 0, 10)
	for amount := 6; amount <= 14; amount++ {
		if validBidAmount(amount, s.HighestBid) {
			actions = append(actions, BidAction{Position: pos, Amount: amount})
		}
	}
	actions = append(actions, PassAction{Position: pos})
	return actions
}
