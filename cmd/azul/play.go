package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/cobra"

	"azul/internal/app"
	"azul/internal/bot"
	"azul/internal/match"
)

var (
	playPlayers int
	playBots    int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play a hotseat match, optionally against bot opponents",
	RunE: func(cmd *cobra.Command, args []string) error {
		if playBots >= playPlayers {
			return fmt.Errorf("at least one human seat is required (%d players, %d bots)", playPlayers, playBots)
		}
		return runPlay()
	},
}

func init() {
	playCmd.Flags().IntVar(&playPlayers, "players", 2, "number of players (2-4)")
	playCmd.Flags().IntVar(&playBots, "bots", 1, "number of bot-controlled seats, taken from the end")
}

func newRNG() *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(seed))
}

func runPlay() error {
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("AZ", pterm.FgCyan.ToStyle()),
		putils.LettersFromStringWithStyle("UL", pterm.FgBlue.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}

	names := make([]string, playPlayers)
	for i := range names {
		if i >= playPlayers-playBots {
			names[i] = fmt.Sprintf("bot-%d", i+1)
			continue
		}
		prompt := fmt.Sprintf("Name for player %d", i+1)
		name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
		if name == "" {
			name = fmt.Sprintf("player-%d", i+1)
		}
		names[i] = name
	}

	svc := app.NewService(newRNG(), nil)
	m, _, err := match.New(svc, logger, names, runtimeConfig.Rules.Domain())
	if err != nil {
		return err
	}
	brain := &bot.Greedy{Weights: runtimeConfig.Bot}

	for m.Status() == match.StatusActive {
		st := m.Snapshot()
		printPiles(st)
		printBoards(st, names)

		cur := st.CurrentPlayer
		if cur >= playPlayers-playBots {
			move, err := brain.ChooseMove(st, cur)
			if errors.Is(err, bot.ErrNoLegalMoves) {
				m.ForceEnd("a bot has no legal moves")
				break
			}
			if err != nil {
				return err
			}
			if _, err := m.Apply(cur, move.Token()); err != nil {
				return err
			}
			pterm.Info.Printfln("%s plays %s", names[cur], move.Token())
			continue
		}

		prompt := fmt.Sprintf("%s, your move (SOURCE_COLOR_LINE, or quit)", names[cur])
		token, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
		if token == "quit" {
			m.ForceEnd("aborted by " + names[cur])
			break
		}
		if _, err := m.Apply(cur, token); err != nil {
			pterm.Error.Printfln("illegal move: %v", err)
			continue
		}
	}

	final := m.Snapshot()
	printBoards(final, names)
	if reason := m.EndReason(); reason != "" {
		pterm.Warning.Printfln("match ended early: %s", reason)
	}
	printScores(names, m.Scores())
	return nil
}
