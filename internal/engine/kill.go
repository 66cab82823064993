package engine

import "sort"

// This file implements the kill step: trimming any hand
// still over the final hand size down to six cards by killing its
// weakest non-point trumps, face up, to be forced out first during play.

// computeKills trims every seat's hand to at most the configured final
// hand size, killing non-point trumps in ascending rank order. A seat
// whose hand exceeds the final size but doesn't have enough non-point
// trumps to trim is left over-size; it simply plays more point-bearing
// trumps than everyone else.
func computeKills(s GameState) (GameState, error) {
	next := s.clone()
	var killed [4][]Card

	for _, pos := range Positions {
		p := next.Players[pos]
		excess := len(p.Hand) - next.Config.FinalHandSize
		if excess <= 0 {
			continue
		}

		candidates := NonPointTrumps(p.Hand, next.TrumpSuit)
		if excess > len(candidates) {
			continue
		}
		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].trumpRank(next.TrumpSuit) < candidates[j].trumpRank(next.TrumpSuit)
		})

		toKill := candidates[:excess]
		hand := CloneCards(p.Hand)
		for _, c := range toKill {
			hand, _ = RemoveCard(hand, c)
		}
		p.Hand = hand
		next.Players[pos] = p
		killed[pos] = toKill
		next.KilledCards[pos] = CloneCards(toKill)
	}

	next = next.appendEvent(CardsKilledEvent{
		eventBase: eventBase{ActionSeq: next.ActionCount},
		Killed:    killed,
	})

	next.Phase = PhasePlaying
	next.CurrentTurn = next.CurrentDealer.Next()
	next.CurrentTrick = &Trick{Leader: next.CurrentTurn}
	return next, nil
}
