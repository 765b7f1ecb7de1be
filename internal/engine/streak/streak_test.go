package streak

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/songbird/backend/internal/contracts"
)

func keys(ss ...string) []contracts.DayKey {
	out := make([]contracts.DayKey, len(ss))
	for i, s := range ss {
		out[i] = contracts.DayKey(s)
	}
	return out
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		dates      []contracts.DayKey
		today      contracts.DayKey
		wantStreak int
		wantAnchor contracts.DayKey
	}{
		{
			name:       "empty history",
			dates:      nil,
			today:      "2024-01-05",
			wantStreak: 0,
			wantAnchor: "",
		},
		{
			name:       "single entry today",
			dates:      keys("2024-01-05"),
			today:      "2024-01-05",
			wantStreak: 1,
			wantAnchor: "2024-01-05",
		},
		{
			name:       "five consecutive days ending today",
			dates:      keys("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"),
			today:      "2024-01-05",
			wantStreak: 5,
			wantAnchor: "2024-01-05",
		},
		{
			name:       "gap truncates to trailing run",
			dates:      keys("2024-01-01", "2024-01-02", "2024-01-04", "2024-01-05"),
			today:      "2024-01-05",
			wantStreak: 2,
			wantAnchor: "2024-01-05",
		},
		{
			name:       "grace anchor at yesterday",
			dates:      keys("2024-01-03", "2024-01-04", "2024-01-05"),
			today:      "2024-01-06",
			wantStreak: 3,
			wantAnchor: "2024-01-05",
		},
		{
			name:       "two days since last entry breaks",
			dates:      keys("2024-01-03", "2024-01-04", "2024-01-05"),
			today:      "2024-01-07",
			wantStreak: 0,
			wantAnchor: "",
		},
		{
			name:       "month boundary",
			dates:      keys("2024-01-31", "2024-02-01"),
			today:      "2024-02-01",
			wantStreak: 2,
			wantAnchor: "2024-02-01",
		},
		{
			name:       "leap day boundary",
			dates:      keys("2024-02-28", "2024-02-29", "2024-03-01"),
			today:      "2024-03-01",
			wantStreak: 3,
			wantAnchor: "2024-03-01",
		},
		{
			name:       "unsorted input with duplicates",
			dates:      keys("2024-01-05", "2024-01-03", "2024-01-04", "2024-01-05"),
			today:      "2024-01-05",
			wantStreak: 3,
			wantAnchor: "2024-01-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.dates, tt.today)
			assert.Equal(t, tt.wantStreak, got.CurrentStreak)
			assert.Equal(t, tt.wantAnchor, got.AnchorDate)
		})
	}
}

// Entries on Jan 1–3, skip Jan 4, entry Jan 5.
func TestCompute_GapScenario(t *testing.T) {
	dates := keys("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05")

	got := Compute(dates, "2024-01-05")
	assert.Equal(t, 1, got.CurrentStreak, "today's entry alone after a gap")

	got = Compute(dates, "2024-01-06")
	assert.Equal(t, 1, got.CurrentStreak, "grace to yesterday keeps the run")
	assert.Equal(t, contracts.DayKey("2024-01-05"), got.AnchorDate)

	got = Compute(dates, "2024-01-07")
	assert.Equal(t, 0, got.CurrentStreak, "two days without an entry breaks")
}

// Backdating a past day never repairs a broken streak: history
// [today-5, today-3, today] stays at 1 even after today-4 is filled in.
func TestCompute_BackdateNonRepair(t *testing.T) {
	today := contracts.DayKey("2024-01-10")

	before := Compute(keys("2024-01-05", "2024-01-07", "2024-01-10"), today)
	assert.Equal(t, 1, before.CurrentStreak)

	after := Compute(keys("2024-01-05", "2024-01-06", "2024-01-07", "2024-01-10"), today)
	assert.Equal(t, 1, after.CurrentStreak,
		"filling today-4 does not touch the gap between today-3 and today")
}

func TestCompute_LongestStreakSurvivesBreak(t *testing.T) {
	got := Compute(keys("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-09"), "2024-01-15")
	assert.Equal(t, 0, got.CurrentStreak)
	assert.Equal(t, 4, got.LongestStreak)
}

func TestLongest(t *testing.T) {
	assert.Equal(t, 0, Longest(nil))
	assert.Equal(t, 1, Longest(keys("2024-01-01")))
	assert.Equal(t, 3, Longest(keys("2024-03-01", "2024-01-01", "2024-01-02", "2024-01-03", "2024-02-10", "2024-02-11")))
}
