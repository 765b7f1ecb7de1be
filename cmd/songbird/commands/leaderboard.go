package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/songbird/backend/internal/contracts"
	"github.com/songbird/backend/internal/engine/calendar"
	"github.com/songbird/backend/internal/engine/leaderboard"
	"github.com/songbird/backend/internal/entries"
	"github.com/songbird/backend/pkg/config"
	"github.com/songbird/backend/pkg/database"
	"github.com/songbird/backend/pkg/logger"
)

// leaderboardCmd builds a day's leaderboard and prints it as JSON
var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Build the leaderboard for one day",
	Long: `Aggregate one day's entries into a song leaderboard and print it.

Without --date the most recent closed day (yesterday, UTC) is used.

Example:
  go run ./cmd/songbird leaderboard
  go run ./cmd/songbird leaderboard --date 2024-06-01`,
	RunE: runLeaderboard,
}

var leaderboardDate string

func init() {
	rootCmd.AddCommand(leaderboardCmd)

	leaderboardCmd.Flags().StringVar(&leaderboardDate, "date", "", "target day (YYYY-MM-DD)")
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	date := contracts.DayKey(leaderboardDate)
	if date == "" {
		today, _ := calendar.Today(time.Now().UTC(), "")
		date = calendar.Prev(today)
	} else if !calendar.Valid(date) {
		return contracts.ErrInvalidDateFormat
	}

	ctx := context.Background()
	entryRepo := entries.NewRepository(db.Pool)

	dayEntries, err := entryRepo.GetByDay(ctx, date)
	if err != nil {
		return fmt.Errorf("load entries for %s: %w", date, err)
	}

	aggregator := leaderboard.NewAggregator(log.Zerolog())
	board := aggregator.Aggregate(date, dayEntries)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(board)
}
