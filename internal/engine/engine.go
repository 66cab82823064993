package engine

// This file is the package's single entry point: it dispatches actions
// across Pidro's nine-phase machine and its automatic-phase cascade.

// ApplyAction validates and applies a single player- or system-initiated
// action, then runs the automatic-phase cascade until the game reaches a
// phase that again needs player input or the game completes. On error the
// original state is returned unchanged.
func ApplyAction(s GameState, a Action) (GameState, error) {
	if s.IsComplete() {
		return s, newError(ErrGameAlreadyComplete, a.Pos(), s.Phase, "")
	}
	if a.Kind() != ActionSystemAutoTransition && !a.Pos().Valid() {
		return s, newError(ErrNotYourTurn, a.Pos(), s.Phase, "position is not one of the four seats")
	}

	attempt := s
	attempt.ActionCount++

	var next GameState
	var err error

	switch act := a.(type) {
	case BidAction:
		next, err = handleBid(attempt, act)
	case PassAction:
		next, err = handlePass(attempt, act)
	case DeclareTrumpAction:
		next, err = handleDeclareTrump(attempt, act)
	case DealerRobPackAction:
		next, err = handleDealerRobPack(attempt, act)
	case PlayCardAction:
		next, err = handlePlayCard(attempt, act)
	case SystemAutoTransitionAction:
		next, err = attempt, nil
	default:
		return s, newError(ErrInvalidActionForPhase, a.Pos(), s.Phase, "unrecognized action")
	}
	if err != nil {
		return s, err
	}

	return runAutoAdvance(next)
}

// runAutoAdvance repeatedly runs the handler for the current automatic
// phase until the state reaches a phase that needs player input, the
// second_deal phase stalls waiting on a manual dealer rob, or the game
// completes.
func runAutoAdvance(s GameState) (GameState, error) {
	for {
		var err error
		switch s.Phase {
		case PhaseComplete:
			return s, nil
		case PhaseDealerSelection:
			s, err = runDealerSelectionPhase(s)
		case PhaseDealing:
			s, err = runDealingPhase(s)
		case PhaseDiscarding:
			s, err = runDiscardingPhase(s)
		case PhaseSecondDeal:
			before := s.Phase
			s, err = runSecondDealPhase(s)
			if err == nil && s.Phase == before {
				return s, nil
			}
		case PhaseScoring:
			s, err = runScoringPhase(s)
		default:
			return s, nil
		}
		if err != nil {
			return s, err
		}
	}
}

// LegalActions enumerates the actions pos may currently submit. It
// returns nil when it is not pos's turn or the current phase is
// automatic.
func LegalActions(s GameState, pos Position) []Action {
	if s.IsComplete() {
		return nil
	}
	switch s.Phase {
	case PhaseBidding:
		return legalBidActions(s, pos)
	case PhaseDeclaring:
		return legalDeclareTrumpActions(s, pos)
	case PhaseSecondDeal:
		return legalSecondDealActions(s, pos)
	case PhasePlaying:
		return legalPlayActions(s, pos)
	default:
		return nil
	}
}

// GetState returns s unchanged; it exists so collaborators can treat
// state access uniformly with ApplyAction/LegalActions.
func GetState(s GameState) GameState {
	return s
}
