package engine

// This file implements trick-taking: trump-only plays, forced first play
// from a seat's killed pile, "going cold" elimination, and trick
// resolution.

// forcedKilledCard returns the card pos must play next and true if pos
// still has a pending killed pile.
func forcedKilledCard(s GameState, pos Position) (Card, bool) {
	pile := s.KilledCards[pos]
	if len(pile) == 0 {
		return Card{}, false
	}
	return pile[0], true
}

// LegalPlays returns the cards pos may legally play right now.
func LegalPlays(s GameState, pos Position) []Card {
	if forced, ok := forcedKilledCard(s, pos); ok {
		return []Card{forced}
	}
	return TrumpCards(s.Players[pos].Hand, s.TrumpSuit)
}

func handlePlayCard(s GameState, a PlayCardAction) (GameState, error) {
	if s.Phase != PhasePlaying {
		return s, newError(ErrInvalidActionForPhase, a.Position, s.Phase, "cannot play a card outside the playing phase")
	}
	if s.Players[a.Position].Eliminated {
		return s, newError(ErrPlayerEliminated, a.Position, s.Phase, "")
	}
	if a.Position != s.CurrentTurn {
		return s, newError(ErrNotYourTurn, a.Position, s.Phase, "")
	}

	next := s.clone()
	player := next.Players[a.Position]

	if forced, ok := forcedKilledCard(next, a.Position); ok {
		if !a.Card.Equal(forced) {
			return s, newError(ErrMustPlayTopKilledCard, a.Position, s.Phase, "")
		}
		next.KilledCards[a.Position] = CloneCards(next.KilledCards[a.Position][1:])
	} else {
		if !ContainsCard(player.Hand, a.Card) {
			return s, newError(ErrCardNotInHand, a.Position, s.Phase, "")
		}
		if !a.Card.IsTrump(next.TrumpSuit) {
			return s, newError(ErrNotTrump, a.Position, s.Phase, "only trump cards are legal plays")
		}
		hand, _ := RemoveCard(player.Hand, a.Card)
		player.Hand = hand
		next.Players[a.Position] = player
	}

	if next.CurrentTrick == nil {
		next.CurrentTrick = &Trick{Leader: a.Position}
	}
	next.CurrentTrick.Plays = append(next.CurrentTrick.Plays, PlayedCard{Position: a.Position, Card: a.Card})
	next = next.appendEvent(CardPlayedEvent{
		eventBase: eventBase{ActionSeq: next.ActionCount},
		Position:  a.Position,
		Card:      a.Card,
	})

	next = checkWentCold(next, a.Position)
	return resolveTrickIfComplete(next)
}

// checkWentCold eliminates pos if it has no trump left in hand and no
// pending killed cards.
func checkWentCold(s GameState, pos Position) GameState {
	player := s.Players[pos]
	if player.Eliminated {
		return s
	}
	if len(TrumpCards(player.Hand, s.TrumpSuit)) > 0 {
		return s
	}
	if len(s.KilledCards[pos]) > 0 {
		return s
	}

	revealed := NonTrumpCards(player.Hand, s.TrumpSuit)
	player.Eliminated = true
	player.RevealedCards = CloneCards(revealed)
	player.Hand = TrumpCards(player.Hand, s.TrumpSuit) // always empty here, kept for clarity
	next := s.withPlayer(player)
	return next.appendEvent(PlayerWentColdEvent{
		eventBase: eventBase{ActionSeq: next.ActionCount},
		Position:  pos,
		Revealed:  revealed,
	})
}

// trickComplete reports whether every seat still in the hand has played
// into the current trick.
func trickComplete(s GameState) bool {
	if s.CurrentTrick == nil {
		return false
	}
	for _, pos := range Positions {
		if !s.Players[pos].Eliminated && !s.CurrentTrick.HasPlayed(pos) {
			return false
		}
	}
	return true
}

// nextActiveSeat returns the first seat starting at from (inclusive) that
// is not eliminated, searching clockwise. ok is false if every seat is
// eliminated.
func nextActiveSeat(s GameState, from Position) (Position, bool) {
	pos := from
	for i := 0; i < 4; i++ {
		if !s.Players[pos].Eliminated {
			return pos, true
		}
		pos = pos.Next()
	}
	return NoTurn, false
}

func handsAndKillsEmpty(s GameState) bool {
	for _, pos := range Positions {
		if s.Players[pos].Eliminated {
			continue
		}
		if len(s.Players[pos].Hand) > 0 || len(s.KilledCards[pos]) > 0 {
			return false
		}
	}
	return true
}

// resolveTrickIfComplete checks whether the current trick is finished and,
// if so, scores it, records the winner, and either starts the next trick
// or advances to scoring once every hand is empty.
func resolveTrickIfComplete(s GameState) (GameState, error) {
	if !trickComplete(s) {
		next, ok := nextActiveSeat(s, s.CurrentTurn.Next())
		if ok {
			s.CurrentTurn = next
		} else {
			s.CurrentTurn = NoTurn
		}
		return s, nil
	}

	trick := *s.CurrentTrick
	winner, winnerPoints, keeper, keeperPoints := scoreTrick(trick, s.TrumpSuit)

	next := s
	wp := next.Players[winner]
	wp.TricksWon++
	next.Players[winner] = wp

	next.HandPoints[TeamOf(winner)] += winnerPoints
	if keeper != winner {
		next.HandPoints[TeamOf(keeper)] += keeperPoints
	}

	totalPoints := winnerPoints
	if keeper != winner {
		totalPoints += keeperPoints
	}
	next = next.appendEvent(TrickWonEvent{
		eventBase: eventBase{ActionSeq: next.ActionCount},
		Winner:    winner,
		Cards:     append([]PlayedCard(nil), trick.Plays...),
		Points:    totalPoints,
	})
	next.CurrentTrick = nil

	if handsAndKillsEmpty(next) {
		next.Phase = PhaseScoring
		next.CurrentTurn = NoTurn
		return next, nil
	}

	leader, ok := nextActiveSeat(next, winner)
	if !ok {
		next.Phase = PhaseScoring
		next.CurrentTurn = NoTurn
		return next, nil
	}
	next.CurrentTrick = &Trick{Leader: leader}
	next.CurrentTurn = leader
	return next, nil
}

func legalPlayActions(s GameState, pos Position) []Action {
	if s.Phase != PhasePlaying || pos != s.CurrentTurn || s.Players[pos].Eliminated {
		return nil
	}
	cards := LegalPlays(s, pos)
	actions := make([]Action, 0, len(cards))
	for _, c := range cards {
		actions = append(actions, PlayCardAction{Position: pos, Card: c})
	}
	return actions
}
