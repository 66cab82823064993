package engine

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// EventKind enumerates the closed set of events the core emits.
type EventKind int

const (
	EventDealerSelected EventKind = iota
	EventCardsDealt
	EventBidMade
	EventPlayerPassed
	EventBiddingComplete
	EventTrumpDeclared
	EventCardsDiscarded
	EventSecondDealComplete
	EventDealerRobbedPack
	EventCardsKilled
	EventCardPlayed
	EventTrickWon
	EventPlayerWentCold
	EventHandScored
	EventGameWon
)

func (k EventKind) String() string {
	switch k {
	case EventDealerSelected:
		return "dealer_selected"
	case EventCardsDealt:
		return "cards_dealt"
	case EventBidMade:
		return "bid_made"
	case EventPlayerPassed:
		return "player_passed"
	case EventBiddingComplete:
		return "bidding_complete"
	case EventTrumpDeclared:
		return "trump_declared"
	case EventCardsDiscarded:
		return "cards_discarded"
	case EventSecondDealComplete:
		return "second_deal_complete"
	case EventDealerRobbedPack:
		return "dealer_robbed_pack"
	case EventCardsKilled:
		return "cards_killed"
	case EventCardPlayed:
		return "card_played"
	case EventTrickWon:
		return "trick_won"
	case EventPlayerWentCold:
		return "player_went_cold"
	case EventHandScored:
		return "hand_scored"
	case EventGameWon:
		return "game_won"
	default:
		return "unknown"
	}
}

// Event is the closed sum type of records the core appends to
// GameState.Events, one struct per event kind, mirroring Action's shape.
// Every event carries ActionSeq: the GameState.ActionCount of the
// ApplyAction call that produced it, shared by every event of the
// automatic cascade that call triggered, so the events of one action can
// be grouped together.
type Event interface {
	Kind() EventKind
	Seq() int
}

type eventBase struct {
	ActionSeq int `json:"action_seq"`
}

func (e eventBase) Seq() int { return e.ActionSeq }

// DealerSelectedEvent records the chosen first dealer.
type DealerSelectedEvent struct {
	eventBase
	Dealer Position `json:"dealer"`
}

func (e DealerSelectedEvent) Kind() EventKind { return EventDealerSelected }

// CardsDealtEvent carries each seat's fresh hand. A collaborator
// rendering per-player views is responsible for redacting other players'
// hands.
type CardsDealtEvent struct {
	eventBase
	Hands [4][]Card `json:"hands"`
}

func (e CardsDealtEvent) Kind() EventKind { return EventCardsDealt }

// BidMadeEvent records a non-pass bid.
type BidMadeEvent struct {
	eventBase
	Position Position `json:"position"`
	Amount   int      `json:"amount"`
}

func (e BidMadeEvent) Kind() EventKind { return EventBidMade }

// PlayerPassedEvent records a pass during bidding.
type PlayerPassedEvent struct {
	eventBase
	Position Position `json:"position"`
}

func (e PlayerPassedEvent) Kind() EventKind { return EventPlayerPassed }

// BiddingCompleteEvent records the outcome of the bidding phase.
type BiddingCompleteEvent struct {
	eventBase
	Winner      Position `json:"winner"`
	Amount      int      `json:"amount"`
	BiddingTeam Team     `json:"bidding_team"`
}

func (e BiddingCompleteEvent) Kind() EventKind { return EventBiddingComplete }

// TrumpDeclaredEvent records the declared trump suit.
type TrumpDeclaredEvent struct {
	eventBase
	Position Position `json:"position"`
	Suit     Suit     `json:"suit"`
}

func (e TrumpDeclaredEvent) Kind() EventKind { return EventTrumpDeclared }

// CardsDiscardedEvent records each seat's automatic non-trump discard.
type CardsDiscardedEvent struct {
	eventBase
	Discarded [4][]Card `json:"discarded"`
}

func (e CardsDiscardedEvent) Kind() EventKind { return EventCardsDiscarded }

// SecondDealCompleteEvent carries only per-seat counts — never the card
// identities — per the visibility policy protecting
// information that would otherwise leak an opponent's original holding.
type SecondDealCompleteEvent struct {
	eventBase
	Counts [4]int `json:"counts"`
}

func (e SecondDealCompleteEvent) Kind() EventKind { return EventSecondDealComplete }

// DealerRobbedPackEvent carries only counts, never card identities, per
// the same visibility policy.
type DealerRobbedPackEvent struct {
	eventBase
	Position  Position `json:"position"`
	TookCount int      `json:"took_count"`
	KeptCount int       `json:"kept_count"`
}

func (e DealerRobbedPackEvent) Kind() EventKind { return EventDealerRobbedPack }

// CardsKilledEvent carries full card data: killed cards are face-up,
// public information.
type CardsKilledEvent struct {
	eventBase
	Killed [4][]Card `json:"killed"`
}

func (e CardsKilledEvent) Kind() EventKind { return EventCardsKilled }

// CardPlayedEvent records a single play into the current trick.
type CardPlayedEvent struct {
	eventBase
	Position Position `json:"position"`
	Card     Card     `json:"card"`
}

func (e CardPlayedEvent) Kind() EventKind { return EventCardPlayed }

// TrickWonEvent records the resolution of a completed trick.
type TrickWonEvent struct {
	eventBase
	Winner Position     `json:"winner"`
	Cards  []PlayedCard `json:"cards"`
	Points int          `json:"points"`
}

func (e TrickWonEvent) Kind() EventKind { return EventTrickWon }

// PlayerWentColdEvent records a player running out of trump and being
// eliminated for the rest of the hand.
type PlayerWentColdEvent struct {
	eventBase
	Position Position `json:"position"`
	Revealed []Card   `json:"revealed"`
}

func (e PlayerWentColdEvent) Kind() EventKind { return EventPlayerWentCold }

// HandScoredEvent records a completed hand's scoring.
type HandScoredEvent struct {
	eventBase
	HandPoints       [2]int `json:"hand_points"`
	CumulativeScores [2]int `json:"cumulative_scores"`
	BidMade          bool   `json:"bid_made"`
}

func (e HandScoredEvent) Kind() EventKind { return EventHandScored }

// GameWonEvent records the terminal outcome.
type GameWonEvent struct {
	eventBase
	Winner Team `json:"winner"`
}

func (e GameWonEvent) Kind() EventKind { return EventGameWon }

// PlayedCard pairs a seat with the card it played into a trick.
type PlayedCard struct {
	Position Position `json:"position"`
	Card     Card     `json:"card"`
}

// marshalEvent encodes e as one JSON object holding the event's own fields
// plus its kind as a "kind" discriminator field, so that unmarshalEvent
// can recover the concrete type later.
func marshalEvent(e Event) ([]byte, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	kind, err := json.Marshal(e.Kind().String())
	if err != nil {
		return nil, err
	}
	fields["kind"] = kind
	return json.Marshal(fields)
}

func unmarshalEvent(raw []byte) (Event, error) {
	var peek struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(raw, &peek); err != nil {
		return nil, err
	}

	var e Event
	switch peek.Kind {
	case EventDealerSelected.String():
		e = &DealerSelectedEvent{}
	case EventCardsDealt.String():
		e = &CardsDealtEvent{}
	case EventBidMade.String():
		e = &BidMadeEvent{}
	case EventPlayerPassed.String():
		e = &PlayerPassedEvent{}
	case EventBiddingComplete.String():
		e = &BiddingCompleteEvent{}
	case EventTrumpDeclared.String():
		e = &TrumpDeclaredEvent{}
	case EventCardsDiscarded.String():
		e = &CardsDiscardedEvent{}
	case EventSecondDealComplete.String():
		e = &SecondDealCompleteEvent{}
	case EventDealerRobbedPack.String():
		e = &DealerRobbedPackEvent{}
	case EventCardsKilled.String():
		e = &CardsKilledEvent{}
	case EventCardPlayed.String():
		e = &CardPlayedEvent{}
	case EventTrickWon.String():
		e = &TrickWonEvent{}
	case EventPlayerWentCold.String():
		e = &PlayerWentColdEvent{}
	case EventHandScored.String():
		e = &HandScoredEvent{}
	case EventGameWon.String():
		e = &GameWonEvent{}
	default:
		return nil, fmt.Errorf("engine: unrecognized event kind %q", peek.Kind)
	}

	// e holds a pointer to the right concrete type so json.Unmarshal can
	// fill it in; the event is returned as a value, the same form the
	// engine appends to GameState.Events and ReplayEvents switches on.
	if err := json.Unmarshal(raw, e); err != nil {
		return nil, err
	}
	return reflect.ValueOf(e).Elem().Interface().(Event), nil
}
