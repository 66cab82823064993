// Command pidro is a non-interactive harness over the engine package:
// it reads JSON-encoded game state and actions from files and flags and
// prints JSON to stdout, so a caller can drive a Pidro game from a script
// or another process.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/marcelfahle/pidro-backend-sub000/internal/engine"
)

func main() {
	app := &cli.App{
		Name:  "pidro",
		Usage: "run and inspect Finnish Pidro games from the command line",
		Commands: []*cli.Command{
			newCommand(),
			applyCommand(),
			legalCommand(),
			replayCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "new",
		Usage: "start a new game and print its state",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "seed", Value: 1, Usage: "deterministic PRNG seed"},
			&cli.IntFlag{Name: "winning-score", Value: 0, Usage: "override the default winning score"},
		},
		Action: func(c *cli.Context) error {
			cfg := engine.DefaultConfig()
			if c.Int("winning-score") > 0 {
				cfg.WinningScore = c.Int("winning-score")
			}
			state := engine.NewGame(cfg, c.Int64("seed"))
			return printState(state)
		},
	}
}

func applyCommand() *cli.Command {
	return &cli.Command{
		Name:  "apply",
		Usage: "apply one action to a state read from --state-file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "state-file", Required: true},
			&cli.StringFlag{Name: "action", Required: true, Usage: "JSON-encoded action"},
		},
		Action: func(c *cli.Context) error {
			state, err := readState(c.String("state-file"))
			if err != nil {
				return err
			}
			action, err := decodeAction([]byte(c.String("action")))
			if err != nil {
				return err
			}
			next, err := engine.ApplyAction(state, action)
			if err != nil {
				return err
			}
			return printState(next)
		},
	}
}

func legalCommand() *cli.Command {
	return &cli.Command{
		Name:  "legal",
		Usage: "list the legal actions for a seat in a state read from --state-file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "state-file", Required: true},
			&cli.IntFlag{Name: "position", Required: true},
		},
		Action: func(c *cli.Context) error {
			state, err := readState(c.String("state-file"))
			if err != nil {
				return err
			}
			actions := engine.LegalActions(state, engine.Position(c.Int("position")))
			out, err := json.MarshalIndent(actions, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func replayCommand() *cli.Command {
	return &cli.Command{
		Name:  "replay",
		Usage: "rebuild a state from a seed and a JSON array of actions read from --actions-file",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "seed", Value: 1},
			&cli.StringFlag{Name: "actions-file", Required: true},
		},
		Action: func(c *cli.Context) error {
			raw, err := os.ReadFile(c.String("actions-file"))
			if err != nil {
				return err
			}
			actions, err := decodeActions(raw)
			if err != nil {
				return err
			}
			state, err := engine.Replay(engine.DefaultConfig(), c.Int64("seed"), actions)
			if err != nil {
				return err
			}
			return printState(state)
		},
	}
}

func readState(path string) (engine.GameState, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return engine.GameState{}, err
	}
	var state engine.GameState
	if err := json.Unmarshal(raw, &state); err != nil {
		return engine.GameState{}, fmt.Errorf("decode state: %w", err)
	}
	return state, nil
}

func printState(state engine.GameState) error {
	out, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
