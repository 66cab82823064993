package engine

// This file implements trump declaration and the automatic non-trump
// discard that follows it.

func handleDeclareTrump(s GameState, a DeclareTrumpAction) (GameState, error) {
	if s.Phase != PhaseDeclaring {
		return s, newError(ErrInvalidActionForPhase, a.Position, s.Phase, "cannot declare trump outside the declaring phase")
	}
	if a.Position != s.CurrentTurn {
		return s, newError(ErrNotYourTurn, a.Position, s.Phase, "")
	}
	if !a.Suit.Valid() {
		return s, newError(ErrInvalidTrumpSuit, a.Position, s.Phase, "")
	}

	next := s.clone()
	next.TrumpSuit = a.Suit
	next.TrumpDeclared = true
	next = next.appendEvent(TrumpDeclaredEvent{
		eventBase: eventBase{ActionSeq: next.ActionCount},
		Position:  a.Position,
		Suit:      a.Suit,
	})

	next.Phase = PhaseDiscarding
	next.CurrentTurn = NoTurn
	return next, nil
}

// runDiscardingPhase automatically splits every seat's hand into trump
// (kept) and non-trump (discarded) once trump has been declared.
func runDiscardingPhase(s GameState) (GameState, error) {
	next := s.clone()
	var discarded [4][]Card

	for _, pos := range Positions {
		p := next.Players[pos]
		kept := TrumpCards(p.Hand, next.TrumpSuit)
		gone := NonTrumpCards(p.Hand, next.TrumpSuit)
		p.Hand = kept
		next.Players[pos] = p
		discarded[pos] = gone
		next.DiscardedCards = append(next.DiscardedCards, gone...)
	}

	next = next.appendEvent(CardsDiscardedEvent{
		eventBase: eventBase{ActionSeq: next.ActionCount},
		Discarded: discarded,
	})

	next.Phase = PhaseSecondDeal
	next.CurrentTurn = NoTurn
	next.secondDealDone = false
	return next, nil
}

func legalDeclareTrumpActions(s GameState, pos Position) []Action {
	if s.Phase != PhaseDeclaring || pos != s.CurrentTurn {
		return nil
	}
	actions := make([]Action, 0, len(suits))
	for _, suit := range suits {
		actions = append(actions, DeclareTrumpAction{Position: pos, Suit: suit})
	}
	return actions
}
