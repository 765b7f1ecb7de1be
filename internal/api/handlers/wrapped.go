package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/songbird/backend/internal/contracts"
	"github.com/songbird/backend/internal/engine/wrapped"
	"github.com/songbird/backend/internal/entries"
	"github.com/songbird/backend/pkg/logger"
	"github.com/songbird/backend/pkg/redis"
)

// WrappedHandler serves yearly summaries.
// SSOT: wrapped API behavior lives in this struct only.
type WrappedHandler struct {
	entries    *entries.Repository
	summarizer *wrapped.Summarizer
	cache      *redis.Cache
	limiter    *redis.RateLimiter
	cacheTTL   time.Duration
	logger     *logger.Logger
}

// NewWrappedHandler creates a new wrapped handler
func NewWrappedHandler(
	repo *entries.Repository,
	summarizer *wrapped.Summarizer,
	cache *redis.Cache,
	limiter *redis.RateLimiter,
	cacheTTL time.Duration,
	log *logger.Logger,
) *WrappedHandler {
	return &WrappedHandler{
		entries:    repo,
		summarizer: summarizer,
		cache:      cache,
		limiter:    limiter,
		cacheTTL:   cacheTTL,
		logger:     log,
	}
}

// ListYears returns the years an owner has summaries for.
// GET /api/users/{userId}/wrapped
func (h *WrappedHandler) ListYears(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID := mux.Vars(r)["userId"]

	years, err := h.entries.ListYears(ctx, ownerID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", ownerID).Error("Failed to list years")
		respondError(w, http.StatusInternalServerError, "Failed to list years")
		return
	}
	if years == nil {
		years = []int{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"years": years,
		},
	})
}

// GetWrapped returns the owner's summary for one year.
// GET /api/users/{userId}/wrapped/{year}?refresh=true
//
// ?refresh=true bypasses the cache and recomputes. Recomputes are rate
// limited per owner because they walk every entry of the year.
func (h *WrappedHandler) GetWrapped(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	ownerID := vars["userId"]

	year, err := strconv.Atoi(vars["year"])
	if err != nil || year < 1 || year > 9999 {
		respondError(w, http.StatusBadRequest, "year must be a four-digit number")
		return
	}

	cacheKey := redis.WrappedKey(ownerID, year)

	if r.URL.Query().Get("refresh") == "true" {
		allowed, _, err := h.limiter.Allow(ctx, redis.WrappedRecomputeLimit(ownerID))
		if err != nil {
			h.logger.WithError(err).Warn("Rate limit check failed, allowing request")
		} else if !allowed {
			respondError(w, http.StatusTooManyRequests, "Too many recompute requests")
			return
		}
		if err := h.cache.Delete(ctx, cacheKey); err != nil {
			h.logger.WithError(err).Warn("Failed to invalidate wrapped cache")
		}
	}

	var summary contracts.WrappedSummary
	err = h.cache.GetOrSet(ctx, cacheKey, &summary, h.cacheTTL, func() (interface{}, error) {
		return h.buildSummary(r, ownerID, year)
	})
	if err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"user_id": ownerID,
			"year":    year,
		}).Error("Failed to build wrapped summary")
		respondError(w, http.StatusInternalServerError, "Failed to build summary")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    summary,
	})
}

func (h *WrappedHandler) buildSummary(r *http.Request, ownerID string, year int) (contracts.WrappedSummary, error) {
	ctx := r.Context()

	yearEntries, err := h.entries.GetByOwnerAndYear(ctx, ownerID, year)
	if err != nil {
		return contracts.WrappedSummary{}, err
	}

	keySet := make(map[string]struct{})
	keys := make([]string, 0)
	for _, e := range yearEntries {
		k := e.Song.Key()
		if _, ok := keySet[k]; ok {
			continue
		}
		keySet[k] = struct{}{}
		keys = append(keys, k)
	}

	lyrics, err := h.entries.GetLyrics(ctx, keys)
	if err != nil {
		// Lyrics enrich the summary but are not required for it.
		h.logger.WithError(err).WithField("user_id", ownerID).Warn("Failed to load lyrics")
		lyrics = nil
	}

	return h.summarizer.Summarize(ownerID, year, yearEntries, lyrics), nil
}
