package main

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"azul/internal/app"
	"azul/internal/bot"
	"azul/internal/domain"
	"azul/internal/match"
)

var (
	simGames   int
	simPlayers int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "run bot-only matches and report how they went",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulate()
	},
}

func init() {
	simulateCmd.Flags().IntVar(&simGames, "games", 10, "number of matches to run")
	simulateCmd.Flags().IntVar(&simPlayers, "players", 2, "number of players (2-4)")
}

func runSimulate() error {
	svc := app.NewService(newRNG(), nil)
	brain := &bot.Greedy{Weights: runtimeConfig.Bot}

	rows := pterm.TableData{{"game", "outcome", "rounds", "moves", "scores"}}
	for game := 1; game <= simGames; game++ {
		names := make([]string, simPlayers)
		for i := range names {
			names[i] = fmt.Sprintf("bot-%d", i+1)
		}
		m, _, err := match.New(svc, logger, names, runtimeConfig.Rules.Domain())
		if err != nil {
			return err
		}

		outcome := "finished"
		for m.Status() == match.StatusActive {
			st := m.Snapshot()
			move, err := brain.ChooseMove(st, st.CurrentPlayer)
			if errors.Is(err, bot.ErrNoLegalMoves) {
				m.ForceEnd("no legal moves")
				outcome = "stuck"
				break
			}
			if err != nil {
				return err
			}
			if _, err := m.Apply(st.CurrentPlayer, move.Token()); err != nil {
				if errors.Is(err, domain.ErrBagExhausted) {
					m.ForceEnd("bag exhausted")
					outcome = "bag exhausted"
					break
				}
				return err
			}
		}

		final := m.Snapshot()
		rows = append(rows, []string{
			fmt.Sprintf("%d", game),
			outcome,
			fmt.Sprintf("%d", final.Round),
			fmt.Sprintf("%d", len(m.MoveLog())),
			fmt.Sprintf("%v", m.Scores()),
		})
		logger.Debug("simulation finished", "game", game, "outcome", outcome, "moves", len(m.MoveLog()))
	}

	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
