package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/songbird/backend/internal/engine/calendar"
	"github.com/songbird/backend/internal/engine/leaderboard"
	"github.com/songbird/backend/internal/entries"
	"github.com/songbird/backend/pkg/logger"
	"github.com/songbird/backend/pkg/redis"
)

// LeaderboardCloseJob finalizes yesterday's leaderboard shortly after
// midnight and warms the cache with it, so the first readers of the
// closed day never pay for aggregation.
// SSOT: the leaderboard close schedule lives in this Job only.
type LeaderboardCloseJob struct {
	entries    *entries.Repository
	aggregator *leaderboard.Aggregator
	cache      *redis.Cache
	schedule   string
	logger     *logger.Logger
}

// NewLeaderboardCloseJob creates a new leaderboard close job
func NewLeaderboardCloseJob(
	repo *entries.Repository,
	agg *leaderboard.Aggregator,
	cache *redis.Cache,
	schedule string,
	log *logger.Logger,
) *LeaderboardCloseJob {
	return &LeaderboardCloseJob{
		entries:    repo,
		aggregator: agg,
		cache:      cache,
		schedule:   schedule,
		logger:     log,
	}
}

// Name returns the job name
func (j *LeaderboardCloseJob) Name() string {
	return "leaderboard_close"
}

// Schedule returns the cron schedule. The scheduler runs with seconds,
// so a five-field expression from config gets a leading seconds field.
func (j *LeaderboardCloseJob) Schedule() string {
	return "0 " + j.schedule
}

// Run aggregates the most recent closed day and caches the result.
func (j *LeaderboardCloseJob) Run(ctx context.Context) error {
	// No client hint here; the close boundary is server UTC.
	today, _ := calendar.Today(time.Now().UTC(), "")
	yesterday := calendar.Prev(today)

	j.logger.WithField("date", string(yesterday)).Info("Closing daily leaderboard")

	dayEntries, err := j.entries.GetByDay(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("load entries for %s: %w", yesterday, err)
	}

	board := j.aggregator.Aggregate(yesterday, dayEntries)

	if err := j.cache.Set(ctx, redis.LeaderboardKey(string(yesterday)), board, redis.TTLDaily); err != nil {
		return fmt.Errorf("cache leaderboard for %s: %w", yesterday, err)
	}

	j.logger.WithFields(map[string]interface{}{
		"date":         string(yesterday),
		"entries":      board.Stats.TotalEntries,
		"unique_songs": board.Stats.UniqueSongs,
	}).Info("Daily leaderboard closed")

	return nil
}
