package engine

// This file implements trick and hand scoring: the 2-of-trump carve-out,
// bid-made/bid-failed application to cumulative scores, and end-of-hand
// game-over detection with the double-62 tie-break.

// scoreTrick determines a completed trick's winner and how its point
// total is split. The 2 of trump is a carve-out: whoever
// played it keeps its single point even when somebody else wins the
// trick. winner/winnerPoints is always returned; keeper/keeperPoints is
// only distinct from winner when the 2 of trump appeared and was played
// by someone else.
func scoreTrick(trick Trick, trump Suit) (winner Position, winnerPoints int, keeper Position, keeperPoints int) {
	cards := make([]Card, len(trick.Plays))
	for i, pc := range trick.Plays {
		cards[i] = pc.Card
	}
	best, _ := HighestTrump(cards, trump)
	winner = trick.Plays[0].Position
	for _, pc := range trick.Plays {
		if pc.Card.Equal(best) {
			winner = pc.Position
			break
		}
	}

	total := 0
	keeper = winner
	keeperPoints = 0
	for _, pc := range trick.Plays {
		total += pc.Card.PointValue(trump)
		if pc.Card.Rank == Two && pc.Card.IsTrump(trump) {
			keeper = pc.Position
			keeperPoints = pc.Card.PointValue(trump)
		}
	}

	winnerPoints = total
	if keeper != winner {
		winnerPoints = total - keeperPoints
	}
	return winner, winnerPoints, keeper, keeperPoints
}

// bidOutcome reports whether the bidding team made its contract and the
// score delta applied to each team.
func bidOutcome(s GameState) (bidMade bool, deltas [2]int) {
	bidder := s.BiddingTeam
	opponent := bidder.Opponent()
	bidAmount := s.HighestBid.Amount

	bidderPoints := s.HandPoints[bidder]
	if bidAmount == 14 {
		bidMade = bidderPoints == 14
	} else {
		bidMade = bidderPoints >= bidAmount
	}

	if bidMade {
		deltas[bidder] = bidderPoints
	} else {
		deltas[bidder] = -bidAmount
	}
	deltas[opponent] = s.HandPoints[opponent]
	return bidMade, deltas
}

// runScoringPhase applies the bid outcome, checks for a won game, and
// either completes the game or resets for the next hand.
// Called automatically once the playing phase empties every active
// seat's hand.
func runScoringPhase(s GameState) (GameState, error) {
	bidMade, deltas := bidOutcome(s)

	next := s.clone()
	next.CumulativeScores[0] += deltas[0]
	next.CumulativeScores[1] += deltas[1]

	next = next.appendEvent(HandScoredEvent{
		eventBase:        eventBase{ActionSeq: next.ActionCount},
		HandPoints:       next.HandPoints,
		CumulativeScores: next.CumulativeScores,
		BidMade:          bidMade,
	})

	winner, over := gameOverWinner(next)
	if over {
		next.Phase = PhaseComplete
		next.CurrentTurn = NoTurn
		next.Winner = winner
		next = next.appendEvent(GameWonEvent{
			eventBase: eventBase{ActionSeq: next.ActionCount},
			Winner:    winner,
		})
		return next, nil
	}

	return startNextHand(next)
}

// gameOverWinner reports whether the game has ended and, if so, who won.
// When both teams are at or above the winning score after the same hand,
// the bidding team wins the tie.
func gameOverWinner(s GameState) (Team, bool) {
	ns := s.CumulativeScores[NorthSouth] >= s.Config.WinningScore
	ew := s.CumulativeScores[EastWest] >= s.Config.WinningScore
	switch {
	case ns && ew:
		return s.BiddingTeam, true
	case ns:
		return NorthSouth, true
	case ew:
		return EastWest, true
	default:
		return 0, false
	}
}

// startNextHand rotates the dealer, increments the hand number, and resets
// every per-hand field before returning to the dealing phase, which then
// shuffles a fresh deck seeded from the game seed and hand number.
func startNextHand(s GameState) (GameState, error) {
	next := s
	next.HandNumber++
	next.CurrentDealer = next.CurrentDealer.Next()
	next.Phase = PhaseDealing
	next.CurrentTurn = NoTurn

	next.Deck = NewDeck()
	next.DiscardedCards = nil
	next.Bids = nil
	next.HighestBid = nil
	next.BiddingTeam = 0
	next.biddingActed = 0
	next.TrumpSuit = Clubs
	next.TrumpDeclared = false
	next.CurrentTrick = nil
	next.HandPoints = [2]int{}
	next.CardsRequested = [4]int{}
	next.DealerPoolSize = 0
	next.KilledCards = [4][]Card{}
	next.secondDealDone = false

	for i := range next.Players {
		p := next.Players[i]
		p.Hand = nil
		p.Eliminated = false
		p.RevealedCards = nil
		p.TricksWon = 0
		next.Players[i] = p
	}

	return next, nil
}
