package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "songbird",
	Short: "SongBird - engagement and analytics engine for daily song journaling",
	Long: `SongBird Backend CLI

Streaks, milestones, daily leaderboards and yearly wrapped summaries
for the song journaling app.

Usage:
  go run ./cmd/songbird [command]

Examples:
  go run ./cmd/songbird api
  go run ./cmd/songbird scheduler start
  go run ./cmd/songbird leaderboard --date 2024-06-01
  go run ./cmd/songbird wrapped <user-id> 2024`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
