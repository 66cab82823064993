package engine

import (
	"math/rand"
	"testing"
)

func TestDealingShufflesDeterministicallyFromSeed(t *testing.T) {
	cfg := DefaultConfig()
	a := NewGame(cfg, 99)
	b := NewGame(cfg, 99)
	for _, pos := range Positions {
		for i, c := range a.Players[pos].Hand {
			if !c.Equal(b.Players[pos].Hand[i]) {
				t.Fatalf("same seed should deal identical hands; seat %v card %d differs", pos, i)
			}
		}
	}
}

func TestDealingGoesOutInThreeBatchesOfThree(t *testing.T) {
	cfg := DefaultConfig()
	s := GameState{
		Phase:         PhaseDealing,
		CurrentDealer: North,
		Config:        cfg,
		Seed:          17,
	}
	for _, pos := range Positions {
		s.Players[pos] = newPlayer(pos)
	}

	next, err := runDealingPhase(s)
	if err != nil {
		t.Fatalf("runDealingPhase: %v", err)
	}

	rng := rand.New(rand.NewSource(handDeckSeed(s)))
	deck := Shuffle(NewDeck(), rng)
	var want [4][]Card
	remaining := cfg.InitialDealSize
	for remaining > 0 {
		batch := dealBatchSize
		if batch > remaining {
			batch = remaining
		}
		pos := North.Next()
		for i := 0; i < 4; i++ {
			var drawn []Card
			drawn, deck = Draw(deck, batch)
			want[pos] = append(want[pos], drawn...)
			pos = pos.Next()
		}
		remaining -= batch
	}

	for _, pos := range Positions {
		got := next.Players[pos].Hand
		if len(got) != len(want[pos]) {
			t.Fatalf("seat %v: expected %d cards, got %d", pos, len(want[pos]), len(got))
		}
		for i, c := range got {
			if !c.Equal(want[pos][i]) {
				t.Fatalf("seat %v card %d: expected %v, got %v (dealing not batched in clockwise rounds of three)", pos, i, want[pos][i], c)
			}
		}
	}
}

func TestDealingLeavesRemainderInDeck(t *testing.T) {
	s := newTestGame(t)
	dealt := 0
	for _, pos := range Positions {
		dealt += len(s.Players[pos].Hand)
	}
	if dealt+len(s.Deck) != 52 {
		t.Fatalf("expected all 52 cards accounted for, got %d dealt + %d in deck", dealt, len(s.Deck))
	}
}
