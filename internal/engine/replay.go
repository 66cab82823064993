package engine

import "fmt"

// Replay and Undo rebuild a GameState from its action history rather than
// from its event history: replaying the recorded actions against a fresh
// NewGame with the same seed reproduces an identical state, since every
// shuffle in this package derives only from (seed, hand_number) and never
// from an unseeded source. This sidesteps the fact that
// second_deal/dealer-rob events deliberately carry only counts, never card
// identities — a pure fold over events alone couldn't
// reconstruct the exact deal, but re-applying the actions can.

// Replay rebuilds the state that results from applying actions in order
// to a freshly constructed game. It fails on the first action that the
// engine itself would reject.
func Replay(config Config, seed int64, actions []Action) (GameState, error) {
	s := NewGame(config, seed)
	var err error
	for _, a := range actions {
		s, err = ApplyAction(s, a)
		if err != nil {
			return s, err
		}
	}
	return s, nil
}

// Undo rebuilds the state as of just before the most recent action,
// dropping that action's entire cascade in one step.
func Undo(config Config, seed int64, actions []Action) (GameState, error) {
	if len(actions) == 0 {
		return Replay(config, seed, actions)
	}
	return Replay(config, seed, actions[:len(actions)-1])
}

// ReplayEvents rebuilds a GameState from a recorded event history instead
// of an action history. Most events are the direct result of an automatic
// phase and carry no corresponding player action — those are skipped, since
// a fresh NewGame already reproduces them from (config, seed). Events that
// did originate from a player action (a bid, a pass, a trump declaration, a
// card play) are turned back into that action and replayed through
// ApplyAction in the order they were recorded, each one re-running its own
// automatic cascade.
//
// A manual dealer_robbed_pack event is the one case this cannot reconstruct:
// DealerRobbedPackEvent deliberately carries only counts, never which cards
// the dealer kept, so the original DealerRobPackAction.Selected is
// unrecoverable from the event alone. ReplayEvents returns an error if it
// encounters one while config.AutoDealerRob is false.
func ReplayEvents(config Config, seed int64, events []Event) (GameState, error) {
	var actions []Action
	for _, ev := range events {
		switch e := ev.(type) {
		case BidMadeEvent:
			actions = append(actions, BidAction{Position: e.Position, Amount: e.Amount})
		case PlayerPassedEvent:
			actions = append(actions, PassAction{Position: e.Position})
		case TrumpDeclaredEvent:
			actions = append(actions, DeclareTrumpAction{Position: e.Position, Suit: e.Suit})
		case CardPlayedEvent:
			actions = append(actions, PlayCardAction{Position: e.Position, Card: e.Card})
		case DealerRobbedPackEvent:
			if !config.AutoDealerRob {
				return GameState{}, fmt.Errorf("engine: cannot replay a manual dealer_robbed_pack event: card identities were not recorded")
			}
			// Automatic rob: no action needed, NewGame's cascade reproduces it.
		default:
			// Every other event kind is produced by an automatic phase and
			// needs no action of its own to reproduce.
		}
	}
	return Replay(config, seed, actions)
}
