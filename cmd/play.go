package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/deck"
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/narration"
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/prompt"
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/results"
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/session"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game of War",
	Long: `Play deals a shuffled deck and plays rounds until the deck runs out or you quit.
Names not given as flags are read from stdin. Rounds are only confirmed one at
a time when stdin is a terminal.

Examples:
  war play
  war play --name Mykolas --computer
  war play --name Mykolas --opponent Simonas --auto --seed 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		opponent, _ := cmd.Flags().GetString("opponent")
		computer, _ := cmd.Flags().GetBool("computer")
		auto, _ := cmd.Flags().GetBool("auto")
		noSave, _ := cmd.Flags().GetBool("no-save")
		resultsFile, _ := cmd.Flags().GetString("results")

		if !cmd.Flags().Changed("computer") {
			computer = cfg.Computer
		}
		if resultsFile == "" {
			resultsFile = cfg.ResultsFile
		}

		in := cmd.InOrStdin()
		prompter := prompt.New(in, cmd.OutOrStdout())

		setup := prompt.Setup{Player1: name, Player2: opponent, Computer: computer}
		if setup.Player1 == "" {
			var err error
			setup, err = prompter.Setup(prompt.Setup{
				Player1: cfg.PlayerName,
				Player2: firstNonEmpty(opponent, cfg.OpponentName),
			})
			if err != nil {
				return fmt.Errorf("error reading players: %w", err)
			}
		}
		if setup.Player1 == "" {
			setup.Player1 = cfg.PlayerName
		}
		if setup.Player2 == "" {
			setup.Player2 = cfg.OpponentName
		}

		opts := session.Options{
			Player1:  setup.Player1,
			Player2:  setup.Player2,
			Computer: setup.Computer,
			Narrator: narration.Multi(narration.NewConsole(cmd.OutOrStdout()), narration.NewLog(log.Logger)),
			Decider:  session.Always,
		}
		if !auto && isTerminal(in) {
			opts.Decider = prompter
		}
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			opts.Deck = deck.NewSeeded(seed)
		}
		if !noSave {
			opts.Recorder = results.NewStore(resultsFile)
		}

		s, err := session.New(opts)
		if err != nil {
			return fmt.Errorf("error starting game: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		outcome, err := s.Play(ctx)
		if err != nil {
			return err
		}

		log.Info().
			Str("winner", outcome.Result.String()).
			Int("rounds", outcome.Stats.Rounds).
			Int("wars", outcome.Stats.Wars).
			Str("results", resultsFile).
			Msg("game finished")

		return nil
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().StringP("name", "n", "", "Name of player one")
	playCmd.Flags().StringP("opponent", "o", "", "Name of player two")
	playCmd.Flags().BoolP("computer", "c", false, "Play against the computer")
	playCmd.Flags().BoolP("auto", "a", false, "Play every round without asking")
	playCmd.Flags().Uint64("seed", 0, "Shuffle the deck with a fixed seed")
	playCmd.Flags().String("results", "", "Results file (defaults to the configured one)")
	playCmd.Flags().Bool("no-save", false, "Do not record the result")
}

// isTerminal reports whether r is a file attached to a terminal
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
