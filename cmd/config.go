package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/config"
	"github.com/spf13/cobra"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the war configuration file",
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file if it does not exist",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// The config is loaded, and created if missing, before any command runs
		configPath, _ := cmd.Flags().GetString("config")
		fmt.Println("Config file initialized at:", configPath)
		fmt.Println("Results will be saved to:", cfg.ResultsFile)
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
	},
}

// configSetPlayerCmd represents the config set-player command
var configSetPlayerCmd = &cobra.Command{
	Use:   "set-player [name]",
	Short: "Set the default name of player one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		if err := config.SetPlayerName(configPath, args[0]); err != nil {
			return fmt.Errorf("error setting player name: %w", err)
		}

		fmt.Printf("Default player set to: %s\n", args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetPlayerCmd)
}
