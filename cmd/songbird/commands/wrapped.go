package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/songbird/backend/internal/engine/sentiment"
	"github.com/songbird/backend/internal/engine/wrapped"
	"github.com/songbird/backend/internal/entries"
	"github.com/songbird/backend/pkg/config"
	"github.com/songbird/backend/pkg/database"
	"github.com/songbird/backend/pkg/logger"
)

// wrappedCmd builds a yearly summary and prints it as JSON
var wrappedCmd = &cobra.Command{
	Use:   "wrapped [user-id] [year]",
	Short: "Build a user's yearly wrapped summary",
	Long: `Compute the wrapped summary for one user and year and print it.

Example:
  go run ./cmd/songbird wrapped u-42 2024`,
	Args: cobra.ExactArgs(2),
	RunE: runWrapped,
}

func init() {
	rootCmd.AddCommand(wrappedCmd)
}

func runWrapped(cmd *cobra.Command, args []string) error {
	ownerID := args[0]
	year, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("year must be a number: %w", err)
	}

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

	lexicon, err := loadLexicon(cfg)
	if err != nil {
		return fmt.Errorf("load lexicon: %w", err)
	}

	ctx := context.Background()
	entryRepo := entries.NewRepository(db.Pool)

	yearEntries, err := entryRepo.GetByOwnerAndYear(ctx, ownerID, year)
	if err != nil {
		return fmt.Errorf("load entries: %w", err)
	}

	seen := make(map[string]struct{})
	var keys []string
	for _, e := range yearEntries {
		k := e.Song.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	lyrics, err := entryRepo.GetLyrics(ctx, keys)
	if err != nil {
		log.WithError(err).Warn("Failed to load lyrics, summarizing without them")
		lyrics = nil
	}

	summarizer := wrapped.NewSummarizer(wrapped.DefaultConfig(), sentiment.NewScorer(lexicon), log.Zerolog())
	summary := summarizer.Summarize(ownerID, year, yearEntries, lyrics)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
