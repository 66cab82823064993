package engine

import "testing"

func TestForcedKilledCardMustBePlayedFirst(t *testing.T) {
	s := NewGame(DefaultConfig(), 5)
	s.Phase = PhasePlaying
	s.TrumpSuit = Clubs
	pos := s.CurrentDealer.Next()
	s.CurrentTurn = pos
	s.CurrentTrick = &Trick{Leader: pos}
	// computeKills moves killed cards out of the hand, so the killed 6♣
	// sits only in the killed pile.
	s.KilledCards[pos] = []Card{NewCard(Six, Clubs)}
	s.Players[pos].Hand = []Card{NewCard(Ace, Clubs)}
	for _, other := range Positions {
		if other != pos {
			s.Players[other].Hand = []Card{NewCard(Seven, Clubs)}
		}
	}

	if _, err := ApplyAction(s, PlayCardAction{Position: pos, Card: NewCard(Ace, Clubs)}); err == nil {
		t.Fatalf("expected an error when playing from hand while a kill is pending")
	}

	next, err := ApplyAction(s, PlayCardAction{Position: pos, Card: NewCard(Six, Clubs)})
	if err != nil {
		t.Fatalf("playing the top killed card: %v", err)
	}
	if len(next.KilledCards[pos]) != 0 {
		t.Fatalf("expected the killed pile to be consumed")
	}
	if ContainsCard(next.Players[pos].Hand, NewCard(Six, Clubs)) {
		t.Fatalf("killed card should not reappear in hand")
	}
}

func TestPlayingNonTrumpIsRejected(t *testing.T) {
	s := NewGame(DefaultConfig(), 5)
	s.Phase = PhasePlaying
	s.TrumpSuit = Hearts
	pos := s.CurrentDealer.Next()
	s.CurrentTurn = pos
	s.CurrentTrick = &Trick{Leader: pos}
	s.Players[pos].Hand = []Card{NewCard(Ace, Clubs)}

	if _, err := ApplyAction(s, PlayCardAction{Position: pos, Card: NewCard(Ace, Clubs)}); err == nil {
		t.Fatalf("expected an error when playing a non-trump card")
	}
}

func TestGoingColdEliminatesSeatForRestOfHand(t *testing.T) {
	s := NewGame(DefaultConfig(), 9)
	s.Phase = PhasePlaying
	s.TrumpSuit = Diamonds
	pos := s.CurrentDealer.Next()
	s.CurrentTurn = pos
	s.CurrentTrick = &Trick{Leader: pos}
	s.Players[pos].Hand = []Card{NewCard(Ace, Diamonds)}
	for _, other := range Positions {
		if other != pos {
			s.Players[other].Hand = []Card{NewCard(King, Diamonds)}
		}
	}

	next, err := ApplyAction(s, PlayCardAction{Position: pos, Card: NewCard(Ace, Diamonds)})
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if !next.Players[pos].Eliminated {
		t.Fatalf("expected seat %v to go cold after playing its last trump", pos)
	}
}

func TestTwoOfTrumpKeepsItsPointForTheSeatThatPlayedIt(t *testing.T) {
	trump := Clubs
	trick := Trick{
		Leader: North,
		Plays: []PlayedCard{
			{Position: North, Card: NewCard(Two, Clubs)},
			{Position: East, Card: NewCard(Ace, Clubs)},
			{Position: South, Card: NewCard(King, Clubs)},
			{Position: West, Card: NewCard(Queen, Clubs)},
		},
	}

	winner, winnerPoints, keeper, keeperPoints := scoreTrick(trick, trump)
	if winner != East {
		t.Fatalf("expected East (ace of trump) to win the trick, got %v", winner)
	}
	if keeper != North {
		t.Fatalf("expected North to keep the 2 of trump's point, got %v", keeper)
	}
	if keeperPoints != 1 {
		t.Fatalf("expected the 2 of trump to be worth 1 point, got %d", keeperPoints)
	}
	// Total trick value: ace(1) + two(1) = 2; North keeps 1, East gets the
	// other 1 despite winning the trick outright.
	if winnerPoints != 1 {
		t.Fatalf("expected the winner to receive the remaining 1 point, got %d", winnerPoints)
	}
}

func TestTwoOfTrumpWinningItsOwnTrickKeepsAllItsPoints(t *testing.T) {
	// Every other trump outranks the 2, so the 2 can only win a trick it
	// plays alone, with every other seat already gone cold.
	trump := Hearts
	trick := Trick{
		Leader: North,
		Plays: []PlayedCard{
			{Position: North, Card: NewCard(Two, Hearts)},
		},
	}
	winner, winnerPoints, keeper, keeperPoints := scoreTrick(trick, trump)
	if winner != North || keeper != North {
		t.Fatalf("expected North to both win and keep, got winner=%v keeper=%v", winner, keeper)
	}
	if winnerPoints != 1 || keeperPoints != 1 {
		t.Fatalf("expected winnerPoints==keeperPoints==1, got %d/%d", winnerPoints, keeperPoints)
	}
}
