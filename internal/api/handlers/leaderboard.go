package handlers

import (
	"net/http"

	"github.com/songbird/backend/internal/contracts"
	"github.com/songbird/backend/internal/engine/calendar"
	"github.com/songbird/backend/internal/engine/leaderboard"
	"github.com/songbird/backend/internal/entries"
	"github.com/songbird/backend/pkg/logger"
	"github.com/songbird/backend/pkg/redis"
)

// LeaderboardHandler serves daily song leaderboards.
// SSOT: leaderboard API behavior lives in this struct only.
type LeaderboardHandler struct {
	entries    *entries.Repository
	aggregator *leaderboard.Aggregator
	cache      *redis.Cache
	topN       int
	logger     *logger.Logger
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(
	repo *entries.Repository,
	agg *leaderboard.Aggregator,
	cache *redis.Cache,
	topN int,
	log *logger.Logger,
) *LeaderboardHandler {
	return &LeaderboardHandler{
		entries:    repo,
		aggregator: agg,
		cache:      cache,
		topN:       topN,
		logger:     log,
	}
}

// GetLeaderboard returns the song ranking for one local date.
// GET /api/leaderboard?date=YYYY-MM-DD&today=YYYY-MM-DD
//
// Without ?date= the target day is yesterday relative to the effective
// today, since that is the most recent closed day.
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	today, err := resolveToday(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	date := contracts.DayKey(r.URL.Query().Get("date"))
	if date == "" {
		date = calendar.Prev(today)
	} else if !calendar.Valid(date) {
		respondError(w, http.StatusBadRequest, contracts.ErrInvalidDateFormat.Error())
		return
	}

	// Closed days are immutable, so they cache for a full day. The
	// current day is still accumulating entries.
	ttl := redis.TTLDaily
	if date >= today {
		ttl = redis.TTLShort
	}

	var board contracts.Leaderboard
	err = h.cache.GetOrSet(ctx, redis.LeaderboardKey(string(date)), &board, ttl, func() (interface{}, error) {
		dayEntries, err := h.entries.GetByDay(ctx, date)
		if err != nil {
			return nil, err
		}
		return h.aggregator.Aggregate(date, dayEntries), nil
	})
	if err != nil {
		h.logger.WithError(err).WithField("date", string(date)).Error("Failed to build leaderboard")
		respondError(w, http.StatusInternalServerError, "Failed to build leaderboard")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"date":    board.Date,
			"ranking": leaderboard.Top(board, h.topN),
			"stats":   board.Stats,
		},
	})
}
