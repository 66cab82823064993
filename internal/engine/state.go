package engine

import "encoding/json"

// NoTurn is the Position value meaning "no seat is currently waiting to
// act" — used for current_turn during automatic phases.
const NoTurn Position = -1

// Player is a per-seat record: hand, team, and per-hand bookkeeping,
// one struct per seat.
type Player struct {
	Position      Position `json:"position"`
	Team          Team     `json:"team"`
	Hand          []Card   `json:"hand"`
	Eliminated    bool     `json:"eliminated"`
	RevealedCards []Card   `json:"revealed_cards"`
	TricksWon     int      `json:"tricks_won"`
}

func newPlayer(pos Position) Player {
	return Player{Position: pos, Team: TeamOf(pos)}
}

// Bid records a non-pass bid made during the bidding phase.
type Bid struct {
	Position Position `json:"position"`
	Amount   int      `json:"amount"`
}

// Trick is the ordered sequence of plays making up one trick, plus the
// seat that led it.
type Trick struct {
	Leader Position     `json:"leader"`
	Plays  []PlayedCard `json:"plays"`
}

// HasPlayed reports whether pos has already played into this trick.
func (t *Trick) HasPlayed(pos Position) bool {
	if t == nil {
		return false
	}
	for _, pc := range t.Plays {
		if pc.Position == pos {
			return true
		}
	}
	return false
}

// GameState is the single immutable record describing a game in
// progress. Every operation in this package takes a GameState by value
// and returns a new one; no method on GameState mutates its receiver's
// slices in place — replacement slices always come from fresh
// allocations, so aliasing a prior state's slice never results in a
// later mutation leaking backward.
type GameState struct {
	Phase Phase `json:"phase"`

	Players [4]Player `json:"players"`

	Deck           []Card `json:"deck"`
	DiscardedCards []Card `json:"discarded_cards"`

	CurrentDealer Position `json:"current_dealer"`
	CurrentTurn   Position `json:"current_turn"`

	Bids        []Bid    `json:"bids"`
	HighestBid  *Bid     `json:"highest_bid"`
	BiddingTeam Team     `json:"bidding_team"`

	// biddingActed counts how many seats have acted (bid or passed) during
	// the current bidding round. It exists to detect "the first three
	// players all passed" without re-deriving it from Bids each time,
	// since Bids only records non-pass bids.
	biddingActed int

	TrumpSuit     Suit `json:"trump_suit"`
	TrumpDeclared bool `json:"trump_declared"`

	CurrentTrick *Trick `json:"current_trick"`

	// HandPoints and CumulativeScores are indexed by Team (NorthSouth=0,
	// EastWest=1).
	HandPoints       [2]int `json:"hand_points"`
	CumulativeScores [2]int `json:"cumulative_scores"`

	HandNumber int `json:"hand_number"`

	CardsRequested [4]int `json:"cards_requested"`

	// DealerPoolSize is 0 until computed (no real pool is ever empty, since
	// it is only computed while the remaining deck still holds cards), and
	// thereafter holds dealer.hand.size + deck.size — a count only, never
	// the pool's contents.
	DealerPoolSize int `json:"dealer_pool_size"`

	KilledCards [4][]Card `json:"killed_cards"`

	// secondDealDone marks that the automatic second deal has already run
	// for this hand, so the auto-advance cascade doesn't redeal on every
	// pass through second_deal while it waits for the dealer to rob.
	secondDealDone bool

	Events []Event `json:"events"`

	// Winner is meaningful only once Phase is PhaseComplete.
	Winner Team `json:"winner"`

	Config Config `json:"config"`

	// Seed is the PRNG seed supplied to new_game. Every shuffle derives
	// from it plus HandNumber so that identical (seed, action sequence)
	// pairs always produce identical states.
	Seed int64 `json:"seed"`

	// ActionCount is incremented once per successful top-level ApplyAction
	// call. Every event emitted during that call — including its automatic
	// cascade — is tagged with this value, so the events of one action can
	// be grouped as one unit.
	ActionCount int `json:"action_count"`
}

// NewGame constructs a new game and immediately runs it through the
// purely automatic dealer_selection and dealing phases, landing on
// bidding with North's left-hand neighbor to act.
func NewGame(config Config, seed int64) GameState {
	cfg := config.normalized()
	state := GameState{
		Phase:         PhaseDealerSelection,
		CurrentDealer: North,
		CurrentTurn:   NoTurn,
		TrumpSuit:     Clubs,
		Config:        cfg,
		Seed:          seed,
		HandNumber:    0,
	}
	for _, pos := range Positions {
		state.Players[pos] = newPlayer(pos)
	}
	state, err := runAutoAdvance(state)
	if err != nil {
		// The opening cascade only shuffles and deals; it cannot fail.
		panic("engine: opening auto-advance failed: " + err.Error())
	}
	return state
}

// IsComplete reports whether the game has ended.
func (s GameState) IsComplete() bool {
	return s.Phase == PhaseComplete
}

// Player returns the record for seat pos.
func (s GameState) Player(pos Position) Player {
	return s.Players[pos]
}

// clone returns a deep-enough copy of s so that every slice and pointer
// field can be independently replaced by the caller without mutating s.
// Fixed-size arrays ([4]Player, [4]int, [2]int, [4][]Card) are copied by
// Go's ordinary value-assignment semantics; their slice elements are
// copied explicitly here because array-of-slice assignment only copies
// slice headers.
func (s GameState) clone() GameState {
	next := s
	next.Deck = CloneCards(s.Deck)
	next.DiscardedCards = CloneCards(s.DiscardedCards)
	next.Bids = append([]Bid(nil), s.Bids...)
	if s.HighestBid != nil {
		hb := *s.HighestBid
		next.HighestBid = &hb
	}
	if s.CurrentTrick != nil {
		trick := Trick{Leader: s.CurrentTrick.Leader, Plays: append([]PlayedCard(nil), s.CurrentTrick.Plays...)}
		next.CurrentTrick = &trick
	}
	for i := range next.Players {
		p := s.Players[i]
		p.Hand = CloneCards(p.Hand)
		p.RevealedCards = CloneCards(p.RevealedCards)
		next.Players[i] = p
	}
	for i := range next.KilledCards {
		next.KilledCards[i] = CloneCards(s.KilledCards[i])
	}
	next.Events = append([]Event(nil), s.Events...)
	return next
}

func (s GameState) appendEvent(ev Event) GameState {
	next := s
	next.Events = append(append([]Event(nil), s.Events...), ev)
	return next
}

func (s GameState) withPlayer(p Player) GameState {
	next := s
	next.Players[p.Position] = p
	return next
}

// gameStateJSON mirrors GameState but replaces the closed Event interface
// slice with a representation encoding/json can round-trip unassisted.
// MarshalJSON/UnmarshalJSON translate through it so that the rest of
// GameState's fields still get ordinary struct tag handling.
type gameStateJSON struct {
	Phase            Phase           `json:"phase"`
	Players          [4]Player       `json:"players"`
	Deck             []Card          `json:"deck"`
	DiscardedCards   []Card          `json:"discarded_cards"`
	CurrentDealer    Position        `json:"current_dealer"`
	CurrentTurn      Position        `json:"current_turn"`
	Bids             []Bid           `json:"bids"`
	HighestBid       *Bid            `json:"highest_bid"`
	BiddingTeam      Team            `json:"bidding_team"`
	TrumpSuit        Suit            `json:"trump_suit"`
	TrumpDeclared    bool            `json:"trump_declared"`
	CurrentTrick     *Trick          `json:"current_trick"`
	HandPoints       [2]int          `json:"hand_points"`
	CumulativeScores [2]int          `json:"cumulative_scores"`
	HandNumber       int             `json:"hand_number"`
	CardsRequested   [4]int          `json:"cards_requested"`
	DealerPoolSize   int             `json:"dealer_pool_size"`
	KilledCards      [4][]Card       `json:"killed_cards"`
	Events           []json.RawMessage `json:"events"`
	Winner           Team            `json:"winner"`
	Config           Config          `json:"config"`
	Seed             int64           `json:"seed"`
	ActionCount      int             `json:"action_count"`
}

func (s GameState) MarshalJSON() ([]byte, error) {
	aux := gameStateJSON{
		Phase: s.Phase, Players: s.Players, Deck: s.Deck, DiscardedCards: s.DiscardedCards,
		CurrentDealer: s.CurrentDealer, CurrentTurn: s.CurrentTurn,
		Bids: s.Bids, HighestBid: s.HighestBid, BiddingTeam: s.BiddingTeam,
		TrumpSuit: s.TrumpSuit, TrumpDeclared: s.TrumpDeclared, CurrentTrick: s.CurrentTrick,
		HandPoints: s.HandPoints, CumulativeScores: s.CumulativeScores, HandNumber: s.HandNumber,
		CardsRequested: s.CardsRequested, DealerPoolSize: s.DealerPoolSize, KilledCards: s.KilledCards,
		Winner: s.Winner, Config: s.Config, Seed: s.Seed, ActionCount: s.ActionCount,
	}
	for _, ev := range s.Events {
		raw, err := marshalEvent(ev)
		if err != nil {
			return nil, err
		}
		aux.Events = append(aux.Events, raw)
	}
	return json.Marshal(aux)
}

func (s *GameState) UnmarshalJSON(data []byte) error {
	var aux gameStateJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*s = GameState{
		Phase: aux.Phase, Players: aux.Players, Deck: aux.Deck, DiscardedCards: aux.DiscardedCards,
		CurrentDealer: aux.CurrentDealer, CurrentTurn: aux.CurrentTurn,
		Bids: aux.Bids, HighestBid: aux.HighestBid, BiddingTeam: aux.BiddingTeam,
		TrumpSuit: aux.TrumpSuit, TrumpDeclared: aux.TrumpDeclared, CurrentTrick: aux.CurrentTrick,
		HandPoints: aux.HandPoints, CumulativeScores: aux.CumulativeScores, HandNumber: aux.HandNumber,
		CardsRequested: aux.CardsRequested, DealerPoolSize: aux.DealerPoolSize, KilledCards: aux.KilledCards,
		Winner: aux.Winner, Config: aux.Config, Seed: aux.Seed, ActionCount: aux.ActionCount,
	}
	for _, raw := range aux.Events {
		ev, err := unmarshalEvent(raw)
		if err != nil {
			return err
		}
		s.Events = append(s.Events, ev)
	}
	// biddingActed is not serialized; recount it from the bids and passes
	// recorded since the most recent deal.
	for _, ev := range s.Events {
		switch ev.(type) {
		case CardsDealtEvent:
			s.biddingActed = 0
		case BidMadeEvent, PlayerPassedEvent:
			s.biddingActed++
		}
	}
	s.secondDealDone = s.Phase != PhaseSecondDeal || s.DealerPoolSize > 0
	return nil
}

