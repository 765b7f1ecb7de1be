package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/songbird/backend/internal/contracts"
	"github.com/songbird/backend/internal/engine/streak"
	"github.com/songbird/backend/internal/entries"
	"github.com/songbird/backend/pkg/logger"
	"github.com/songbird/backend/pkg/redis"
)

// StreakHandler serves streak state for an owner.
// SSOT: streak API behavior lives in this struct only.
type StreakHandler struct {
	entries *entries.Repository
	cache   *redis.Cache
	logger  *logger.Logger
}

// NewStreakHandler creates a new streak handler
func NewStreakHandler(repo *entries.Repository, cache *redis.Cache, log *logger.Logger) *StreakHandler {
	return &StreakHandler{
		entries: repo,
		cache:   cache,
		logger:  log,
	}
}

// GetStreak returns the owner's current streak state
// GET /api/users/{userId}/streak?today=YYYY-MM-DD
func (h *StreakHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID := mux.Vars(r)["userId"]

	today, err := resolveToday(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The effective date is part of the key so a cached state can
	// never leak across a midnight boundary.
	cacheKey := redis.StreakKey(ownerID) + ":" + string(today)

	var state contracts.StreakState
	err = h.cache.GetOrSet(ctx, cacheKey, &state, redis.TTLMedium, func() (interface{}, error) {
		dates, err := h.entries.GetLocalDates(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		return streak.Compute(dates, today), nil
	})
	if err != nil {
		h.logger.WithError(err).WithField("user_id", ownerID).Error("Failed to compute streak")
		respondError(w, http.StatusInternalServerError, "Failed to compute streak")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    state,
	})
}
