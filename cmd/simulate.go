package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/deck"
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/narration"
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/results"
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/session"
	colorize "github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play many games without interaction and report statistics",
	Long: `Simulate plays complete games between two players and reports how often each
won, how many wars were fought and how deep they went.

Examples:
  war simulate --games 1000
  war simulate --games 50 --seed 7 --save`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		games, _ := cmd.Flags().GetInt("games")
		seed, _ := cmd.Flags().GetUint64("seed")
		name, _ := cmd.Flags().GetString("name")
		opponent, _ := cmd.Flags().GetString("opponent")
		save, _ := cmd.Flags().GetBool("save")

		if games < 1 {
			return fmt.Errorf("games must be at least 1, got %d", games)
		}

		var recorder session.Recorder
		if save {
			recorder = results.NewStore(cfg.ResultsFile)
		}

		report, err := simulate(cmd.Context(), games, seed, name, opponent, recorder)
		if err != nil {
			return err
		}

		printReport(cmd.OutOrStdout(), report, terminalWidth())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntP("games", "g", 100, "Number of games to play")
	simulateCmd.Flags().Uint64("seed", 1, "Seed of the first game; game i uses seed+i")
	simulateCmd.Flags().StringP("name", "n", "Player 1", "Name of player one")
	simulateCmd.Flags().StringP("opponent", "o", player2Default, "Name of player two")
	simulateCmd.Flags().Bool("save", false, "Record every game in the results file")
}

const player2Default = "Computer"

// simReport aggregates simulated games
type simReport struct {
	Games         int
	Ties          int
	Wins          map[string]int
	Rounds        int
	Wars          int
	WarsAbandoned int
	DeepestWar    int
}

func simulate(ctx context.Context, games int, seed uint64, name, opponent string, recorder session.Recorder) (simReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	report := simReport{Wins: map[string]int{}}
	for i := 0; i < games && ctx.Err() == nil; i++ {
		s, err := session.New(session.Options{
			Player1:  name,
			Player2:  opponent,
			Computer: opponent == player2Default,
			Deck:     deck.NewSeeded(seed + uint64(i)),
			Narrator: narration.NewLog(log.Logger.With().Int("game", i+1).Logger()),
			Recorder: recorder,
		})
		if err != nil {
			return report, fmt.Errorf("error starting game %d: %w", i+1, err)
		}

		outcome, err := s.Play(ctx)
		if err != nil {
			return report, fmt.Errorf("game %d: %w", i+1, err)
		}

		report.Games++
		if outcome.Result.Tie {
			report.Ties++
		} else {
			report.Wins[outcome.Result.Winner]++
		}
		report.Rounds += outcome.Stats.Rounds
		report.Wars += outcome.Stats.Wars
		report.WarsAbandoned += outcome.Stats.WarsAbandoned
		report.DeepestWar = max(report.DeepestWar, outcome.Stats.DeepestWar)
	}

	return report, nil
}

func printReport(w io.Writer, r simReport, width int) {
	heading := colorize.New(colorize.FgHiWhite, colorize.Bold)
	label := colorize.New(colorize.FgCyan)
	bar := colorize.New(colorize.FgGreen)

	heading.Fprintf(w, "%d games\n", r.Games)

	names := make([]string, 0, len(r.Wins))
	for name := range r.Wins {
		names = append(names, name)
	}
	sort.Strings(names)

	barWidth := width - 40
	if barWidth < 10 {
		barWidth = 10
	}

	rows := append(names, session.TieMessage)
	for _, name := range rows {
		n := r.Wins[name]
		if name == session.TieMessage {
			n = r.Ties
		}
		share := float64(n) / float64(r.Games)
		fmt.Fprintf(w, "  %s %5d %5.1f%% %s\n",
			label.Sprintf("%-16s", name), n, share*100,
			bar.Sprint(strings.Repeat("█", int(share*float64(barWidth)))))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %.1f\n", label.Sprint("Rounds per game:"), float64(r.Rounds)/float64(r.Games))
	fmt.Fprintf(w, "  %s %d (%d abandoned)\n", label.Sprint("Wars:           "), r.Wars, r.WarsAbandoned)
	fmt.Fprintf(w, "  %s %d\n", label.Sprint("Deepest war:    "), r.DeepestWar)
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
