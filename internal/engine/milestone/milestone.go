// Package milestone evaluates achievement thresholds over streak state
// and lifetime entry counts. Achievement is monotonic: a milestone
// observed as crossed keeps its original achieved date forever, even
// after the live streak later breaks.
package milestone

import (
	"fmt"

	"github.com/songbird/backend/internal/contracts"
)

// Evaluate returns one record per catalogue milestone, in catalogue
// order.
//
// A milestone counts as achieved when the live value meets its
// threshold OR it appears in previous: previously recorded
// achievements are never un-recorded. Newly crossed milestones get
// today as their achieved date; previously recorded ones echo the
// stored date verbatim rather than recomputing it.
//
// The result is a pure function of the inputs: evaluating twice with
// identical inputs yields identical output, so concurrent evaluations
// that both observe a fresh crossing write the same date and the
// bookkeeping upsert stays idempotent.
func Evaluate(
	streak contracts.StreakState,
	totalEntries int,
	previous map[string]contracts.DayKey,
	today contracts.DayKey,
	cat Catalogue,
) []contracts.MilestoneRecord {
	records := make([]contracts.MilestoneRecord, 0, len(cat))

	for _, m := range cat {
		rec := contracts.MilestoneRecord{MilestoneID: m.ID}

		if date, ok := previous[m.ID]; ok {
			rec.Achieved = true
			rec.AchievedDate = date
		} else if crossed(m, streak, totalEntries) {
			rec.Achieved = true
			rec.AchievedDate = today
		}

		records = append(records, rec)
	}

	return records
}

// Next returns the first unachieved milestone in catalogue order with
// progress toward it, or nil when everything is achieved.
func Next(
	streak contracts.StreakState,
	totalEntries int,
	previous map[string]contracts.DayKey,
	cat Catalogue,
) *contracts.NextMilestone {
	for _, m := range cat {
		if _, ok := previous[m.ID]; ok {
			continue
		}
		if crossed(m, streak, totalEntries) {
			continue
		}

		current := totalEntries
		unit := "entry"
		if m.Kind == contracts.MilestoneStreak {
			current = streak.CurrentStreak
			unit = "day"
		}

		remaining := m.Threshold - current
		msg := "Almost there!"
		if remaining > 0 {
			plural := unit
			if remaining != 1 {
				plural = unit + "s"
			}
			msg = fmt.Sprintf("%d more %s to go!", remaining, plural)
		}

		return &contracts.NextMilestone{
			Milestone: m,
			Progress: contracts.MilestoneProgress{
				Current: current,
				Target:  m.Threshold,
				Message: msg,
			},
		}
	}
	return nil
}

func crossed(m contracts.Milestone, streak contracts.StreakState, totalEntries int) bool {
	switch m.Kind {
	case contracts.MilestoneStreak:
		return streak.CurrentStreak >= m.Threshold
	case contracts.MilestoneEntries:
		return totalEntries >= m.Threshold
	default:
		return false
	}
}

// NewlyAchieved filters records down to those achieved on this
// evaluation's today, i.e. not present in previous. Callers use it to
// persist fresh crossings and to report them for celebration UI.
func NewlyAchieved(records []contracts.MilestoneRecord, previous map[string]contracts.DayKey) []contracts.MilestoneRecord {
	fresh := make([]contracts.MilestoneRecord, 0)
	for _, r := range records {
		if !r.Achieved {
			continue
		}
		if _, ok := previous[r.MilestoneID]; ok {
			continue
		}
		fresh = append(fresh, r)
	}
	return fresh
}
