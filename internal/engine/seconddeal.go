package engine

import "sort"

// This file implements the second deal and dealer-rob step: every
// non-dealer seat tops back up to the final hand size from
// the remaining deck, then the dealer either automatically takes the
// best six cards from hand-plus-deck or, in manual-rob configurations,
// picks them explicitly. The second deal always runs in full before any
// rob is attempted — short-circuiting it once the deck runs dry would
// silently short non-dealer seats.

// runSecondDealPhase advances the automatic work of the second-deal
// phase: the topping-up deal first, then the dealer rob if it can run
// automatically. When a manual rob is needed it returns with the phase
// still second_deal and CurrentTurn set to the dealer, to wait for a
// DealerRobPackAction.
func runSecondDealPhase(s GameState) (GameState, error) {
	next := s
	if !next.secondDealDone {
		next = dealSecondRound(next)
	}

	if len(next.Deck) == 0 {
		return computeKills(next)
	}

	dealer := next.Players[next.CurrentDealer]
	next.DealerPoolSize = len(dealer.Hand) + len(next.Deck)

	if next.Config.AutoDealerRob {
		return autoRob(next)
	}

	next.CurrentTurn = next.CurrentDealer
	return next, nil
}

// dealSecondRound tops every non-dealer seat's hand back up to the final
// hand size, drawing from the top of the deck in seating order starting
// left of the dealer.
func dealSecondRound(s GameState) GameState {
	next := s.clone()
	var counts [4]int

	pos := next.CurrentDealer.Next()
	for i := 0; i < 4; i++ {
		if pos != next.CurrentDealer {
			p := next.Players[pos]
			need := next.Config.FinalHandSize - len(p.Hand)
			if need > 0 {
				if need > len(next.Deck) {
					need = len(next.Deck)
				}
				var drawn []Card
				drawn, next.Deck = Draw(next.Deck, need)
				p.Hand = AppendCards(p.Hand, drawn...)
				next.Players[pos] = p
				counts[pos] = need
			}
		}
		pos = pos.Next()
	}

	next.CardsRequested = counts
	next = next.appendEvent(SecondDealCompleteEvent{
		eventBase: eventBase{ActionSeq: next.ActionCount},
		Counts:    counts,
	})
	next.secondDealDone = true
	return next
}

// robScore ranks a card for the automatic dealer rob: a trump scores 10
// plus its trump rank, a non-trump its plain rank, and a point card a
// further 20. Every point card and every trump from the 6 up outranks
// every non-trump, but the 3 and 4 of trump (12 and 13) score below a
// non-trump ace (14).
func robScore(c Card, trump Suit) int {
	score := 0
	if c.IsTrump(trump) {
		score += 10 + c.trumpRank(trump)
	} else {
		score += int(c.Rank)
	}
	if c.IsPointCard(trump) {
		score += 20
	}
	return score
}

// autoRob has the dealer automatically keep the best six cards from
// hand-plus-remaining-deck, ranked by robScore, then proceeds to the
// kill step.
func autoRob(s GameState) (GameState, error) {
	next := s.clone()
	dealer := next.Players[next.CurrentDealer]

	pool := AppendCards(dealer.Hand, next.Deck...)
	fromDeck := len(dealer.Hand)

	sort.SliceStable(pool, func(i, j int) bool {
		return robScore(pool[i], next.TrumpSuit) > robScore(pool[j], next.TrumpSuit)
	})

	kept := CloneCards(pool[:next.Config.FinalHandSize])
	leftover := CloneCards(pool[next.Config.FinalHandSize:])

	tookCount := countFromDeck(kept, dealer.Hand, fromDeck)
	keptCount := len(kept) - tookCount

	dealer.Hand = kept
	next.Players[next.CurrentDealer] = dealer
	next.DiscardedCards = append(next.DiscardedCards, leftover...)
	next.Deck = nil

	next = next.appendEvent(DealerRobbedPackEvent{
		eventBase: eventBase{ActionSeq: next.ActionCount},
		Position:  next.CurrentDealer,
		TookCount: tookCount,
		KeptCount: keptCount,
	})

	return computeKills(next)
}

func handleDealerRobPack(s GameState, a DealerRobPackAction) (GameState, error) {
	if s.Phase != PhaseSecondDeal {
		return s, newError(ErrInvalidActionForPhase, a.Position, s.Phase, "cannot rob the pack outside the second-deal phase")
	}
	if a.Position != s.CurrentDealer || a.Position != s.CurrentTurn {
		return s, newError(ErrNotYourTurn, a.Position, s.Phase, "")
	}

	next := s.clone()
	dealer := next.Players[next.CurrentDealer]
	pool := AppendCards(dealer.Hand, next.Deck...)

	if len(a.Selected) != next.Config.FinalHandSize {
		return s, newError(ErrInvalidDealerRobSel, a.Position, s.Phase, "must select exactly final_hand_size cards")
	}
	remaining := CloneCards(pool)
	for _, c := range a.Selected {
		var ok bool
		remaining, ok = RemoveCard(remaining, c)
		if !ok {
			return s, newError(ErrInvalidDealerRobSel, a.Position, s.Phase, "selected card is not in hand or remaining deck")
		}
	}

	kept := CloneCards(a.Selected)
	tookCount := countFromDeck(kept, dealer.Hand, len(dealer.Hand))
	keptCount := len(kept) - tookCount

	dealer.Hand = kept
	next.Players[next.CurrentDealer] = dealer
	next.DiscardedCards = append(next.DiscardedCards, remaining...)
	next.Deck = nil

	next = next.appendEvent(DealerRobbedPackEvent{
		eventBase: eventBase{ActionSeq: next.ActionCount},
		Position:  next.CurrentDealer,
		TookCount: tookCount,
		KeptCount: keptCount,
	})

	return computeKills(next)
}

// countFromDeck counts how many of kept were not part of originalHand —
// i.e. how many the dealer drew fresh from the deck during the rob.
func countFromDeck(kept, originalHand []Card, _ int) int {
	remaining := CloneCards(originalHand)
	fromDeck := 0
	for _, c := range kept {
		if r, ok := RemoveCard(remaining, c); ok {
			remaining = r
		} else {
			fromDeck++
		}
	}
	return fromDeck
}

func legalSecondDealActions(s GameState, pos Position) []Action {
	if s.Phase != PhaseSecondDeal || pos != s.CurrentTurn || pos != s.CurrentDealer {
		return nil
	}
	if s.Config.AutoDealerRob {
		return nil
	}
	return []Action{DealerRobPackAction{Position: pos}}
}
