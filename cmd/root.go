package cmd

import (
	"fmt"
	"os"

	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/config"
	colorize "github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// cfg is loaded once before any subcommand runs
var cfg *config.Config

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "war",
	Short: "Play the card game War",
	Long: `War is a two player card game. Each round both players turn over a card and
the higher rank wins. Equal ranks start a war: three cards face down, one face up,
repeated until someone wins or the deck runs out.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		var err error
		cfg, err = config.LoadConfigFrom(configPath)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		logLevel := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			logLevel, _ = cmd.Flags().GetString("log-level")
		}
		noColor, _ := cmd.Flags().GetBool("no-color")

		return setupOutput(logLevel, noColor || !cfg.Color)
	},
}

func init() {
	RootCmd.PersistentFlags().String("config", config.GetConfigFilePath(), "Path to the config file")
	RootCmd.PersistentFlags().String("log-level", "warn", "Log level (trace, debug, info, warn, error)")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	RootCmd.AddCommand(validateCmd)
}

// setupOutput configures the global logger and terminal colors
func setupOutput(logLevel string, noColor bool) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)

	if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		colorize.NoColor = true
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    colorize.NoColor,
		TimeFormat: "15:04:05",
	}).With().Timestamp().Logger()

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
