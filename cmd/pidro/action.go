package main

import (
	"encoding/json"
	"fmt"

	"github.com/marcelfahle/pidro-backend-sub000/internal/engine"
)

// actionEnvelope is the wire shape for the closed Action sum type: a
// "kind" discriminator plus whichever fields that kind needs. The
// engine package itself never
// marshals actions — only this command-line harness needs a wire
// format, so the envelope lives here rather than in internal/engine.
type actionEnvelope struct {
	Kind     string         `json:"kind"`
	Position int            `json:"position"`
	Amount   int            `json:"amount,omitempty"`
	Suit     int            `json:"suit,omitempty"`
	Card     *engine.Card   `json:"card,omitempty"`
	Selected []engine.Card  `json:"selected,omitempty"`
}

func decodeAction(raw []byte) (engine.Action, error) {
	var env actionEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode action: %w", err)
	}
	pos := engine.Position(env.Position)

	switch env.Kind {
	case "bid":
		return engine.BidAction{Position: pos, Amount: env.Amount}, nil
	case "pass":
		return engine.PassAction{Position: pos}, nil
	case "declare_trump":
		return engine.DeclareTrumpAction{Position: pos, Suit: engine.Suit(env.Suit)}, nil
	case "dealer_rob_pack":
		return engine.DealerRobPackAction{Position: pos, Selected: env.Selected}, nil
	case "play_card":
		if env.Card == nil {
			return nil, fmt.Errorf("decode action: play_card requires a card")
		}
		return engine.PlayCardAction{Position: pos, Card: *env.Card}, nil
	case "system_auto_transition", "":
		return engine.SystemAutoTransitionAction{}, nil
	default:
		return nil, fmt.Errorf("decode action: unrecognized kind %q", env.Kind)
	}
}

func decodeActions(raw []byte) ([]engine.Action, error) {
	var envelopes []json.RawMessage
	if err := json.Unmarshal(raw, &envelopes); err != nil {
		return nil, fmt.Errorf("decode actions: %w", err)
	}
	actions := make([]engine.Action, 0, len(envelopes))
	for _, e := range envelopes {
		a, err := decodeAction(e)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}
