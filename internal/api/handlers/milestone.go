package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/songbird/backend/internal/engine/milestone"
	"github.com/songbird/backend/internal/engine/streak"
	"github.com/songbird/backend/internal/entries"
	"github.com/songbird/backend/internal/milestones"
	"github.com/songbird/backend/pkg/logger"
)

// MilestoneHandler serves milestone achievements for an owner.
// SSOT: milestone API behavior lives in this struct only.
type MilestoneHandler struct {
	entries    *entries.Repository
	milestones *milestones.Repository
	catalogue  milestone.Catalogue
	logger     *logger.Logger
}

// NewMilestoneHandler creates a new milestone handler
func NewMilestoneHandler(
	entryRepo *entries.Repository,
	milestoneRepo *milestones.Repository,
	cat milestone.Catalogue,
	log *logger.Logger,
) *MilestoneHandler {
	return &MilestoneHandler{
		entries:    entryRepo,
		milestones: milestoneRepo,
		catalogue:  cat,
		logger:     log,
	}
}

// GetMilestones evaluates and returns the owner's milestone records,
// persisting any fresh crossings.
// GET /api/users/{userId}/milestones?today=YYYY-MM-DD
func (h *MilestoneHandler) GetMilestones(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID := mux.Vars(r)["userId"]

	today, err := resolveToday(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	dates, err := h.entries.GetLocalDates(ctx, ownerID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", ownerID).Error("Failed to load entry dates")
		respondError(w, http.StatusInternalServerError, "Failed to load entries")
		return
	}

	totalEntries, err := h.entries.CountByOwner(ctx, ownerID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", ownerID).Error("Failed to count entries")
		respondError(w, http.StatusInternalServerError, "Failed to load entries")
		return
	}

	previous, err := h.milestones.GetAchieved(ctx, ownerID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", ownerID).Error("Failed to load achievements")
		respondError(w, http.StatusInternalServerError, "Failed to load achievements")
		return
	}

	state := streak.Compute(dates, today)
	records := milestone.Evaluate(state, totalEntries, previous, today, h.catalogue)

	fresh := milestone.NewlyAchieved(records, previous)
	if len(fresh) > 0 {
		if err := h.milestones.SaveAchieved(ctx, ownerID, fresh); err != nil {
			// Achievement is re-derivable from entries, so a failed
			// write degrades to recomputing next request.
			h.logger.WithError(err).WithField("user_id", ownerID).Warn("Failed to persist achievements")
		} else {
			h.logger.WithFields(map[string]interface{}{
				"user_id": ownerID,
				"count":   len(fresh),
			}).Info("Milestones achieved")
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"milestones":    records,
			"newlyAchieved": fresh,
			"nextMilestone": milestone.Next(state, totalEntries, previous, h.catalogue),
			"currentStreak": state.CurrentStreak,
			"totalEntries":  totalEntries,
		},
	})
}
