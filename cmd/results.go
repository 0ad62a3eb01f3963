package cmd

import (
	"fmt"
	"io"

	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/results"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// resultsCmd represents the results command
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recorded games and a win tally",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		path, _ := cmd.Flags().GetString("file")
		if path == "" {
			path = cfg.ResultsFile
		}

		records, err := results.NewStore(path).Load()
		if err != nil {
			return err
		}

		printResults(cmd.OutOrStdout(), records, limit, path)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(resultsCmd)

	resultsCmd.Flags().IntP("limit", "l", 20, "Show only the most recent games (0 for all)")
	resultsCmd.Flags().StringP("file", "f", "", "Results file (defaults to the configured one)")
}

// printResults lists the most recent limit records and a tally of all of them
func printResults(w io.Writer, records []results.Record, limit int, path string) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w, "Results will be saved to:", path)
		return
	}

	shown := records
	if limit > 0 && len(shown) > limit {
		shown = shown[len(shown)-limit:]
	}

	for _, r := range shown {
		fmt.Fprintf(w, "%s  %s %d - %d %s  %s\n",
			colorize.HiBlackString(r.Time.Local().Format("2006-01-02 15:04")),
			r.Player1, r.Wins1, r.Wins2, r.Player2,
			colorize.GreenString("Winner: %s", r.Result()))
	}

	sum := results.Summarize(records)
	fmt.Fprintln(w)
	fmt.Fprintln(w, colorize.CyanString("Games: ")+colorize.HiWhiteString("%d", sum.Games)+
		colorize.CyanString("  Ties: ")+colorize.HiWhiteString("%d", sum.Ties))
	for _, st := range sum.Standings {
		fmt.Fprintf(w, "  %-16s %3d won of %d\n", st.Name, st.Won, st.Games)
	}
}
