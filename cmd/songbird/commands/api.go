package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/songbird/backend/internal/api"
	"github.com/songbird/backend/internal/api/handlers"
	"github.com/songbird/backend/internal/engine/leaderboard"
	"github.com/songbird/backend/internal/engine/milestone"
	"github.com/songbird/backend/internal/engine/sentiment"
	"github.com/songbird/backend/internal/engine/wrapped"
	"github.com/songbird/backend/internal/entries"
	"github.com/songbird/backend/internal/milestones"
	"github.com/songbird/backend/pkg/config"
	"github.com/songbird/backend/pkg/database"
	"github.com/songbird/backend/pkg/logger"
	"github.com/songbird/backend/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Start the REST API server.

Endpoints:
  GET /health                              - Health check
  GET /api/users/{userId}/streak           - Current streak state
  GET /api/users/{userId}/milestones       - Milestone achievements
  GET /api/leaderboard                     - Daily song leaderboard
  GET /api/users/{userId}/wrapped          - Years with summaries
  GET /api/users/{userId}/wrapped/{year}   - Yearly wrapped summary

Example:
  go run ./cmd/songbird api
  go run ./cmd/songbird api --port 8081`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== SongBird API Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	log.Info("Connected to database")

	// 4. Connect to Redis
	rdb, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer rdb.Close()

	cache := redis.NewCache(rdb, "songbird")
	limiter := redis.NewRateLimiter(rdb, "songbird")

	// 5. Load the sentiment lexicon
	lexicon, err := loadLexicon(cfg)
	if err != nil {
		return fmt.Errorf("load lexicon: %w", err)
	}
	scorer := sentiment.NewScorer(lexicon)

	// 6. Create repositories
	entryRepo := entries.NewRepository(db.Pool)
	milestoneRepo := milestones.NewRepository(db.Pool)

	// 7. Create engine components
	aggregator := leaderboard.NewAggregator(log.Zerolog())
	summarizer := wrapped.NewSummarizer(wrapped.DefaultConfig(), scorer, log.Zerolog())

	// 8. Create handlers
	streakHandler := handlers.NewStreakHandler(entryRepo, cache, log)
	milestoneHandler := handlers.NewMilestoneHandler(entryRepo, milestoneRepo, milestone.DefaultCatalogue(), log)
	leaderboardHandler := handlers.NewLeaderboardHandler(entryRepo, aggregator, cache, cfg.Engine.LeaderboardTopN, log)
	wrappedHandler := handlers.NewWrappedHandler(entryRepo, summarizer, cache, limiter, cfg.Engine.WrappedCacheTTL, log)

	// 9. Create router and server
	router := api.NewRouter(streakHandler, milestoneHandler, leaderboardHandler, wrappedHandler, log)
	server := api.New(cfg, log, router)

	// 10. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\nServer running on http://localhost:%s\n", cfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}

// loadLexicon returns the configured lexicon, or the built-in one when
// no path is set.
func loadLexicon(cfg *config.Config) (*sentiment.Lexicon, error) {
	if cfg.Engine.LexiconPath == "" {
		return sentiment.DefaultLexicon(), nil
	}
	return sentiment.LoadLexicon(cfg.Engine.LexiconPath)
}
