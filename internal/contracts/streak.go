package contracts

// StreakState is a pure projection of an owner's entry history. It is
// recomputable at any time and never stored as the source of truth.
type StreakState struct {
	// CurrentStreak is the length of the maximal run of consecutive
	// day keys ending at AnchorDate. The streak is alive only while
	// AnchorDate is today or yesterday in the owner's local time;
	// otherwise it reports as 0.
	CurrentStreak int `json:"current_streak"`

	// AnchorDate is the most recent day counting toward the streak.
	// Empty when the streak is broken or no entries exist.
	AnchorDate DayKey `json:"anchor_date,omitempty"`

	// LongestStreak is the longest consecutive run anywhere in the
	// supplied history, alive or not.
	LongestStreak int `json:"longest_streak"`
}

// Alive reports whether a non-zero streak is currently running.
func (s StreakState) Alive() bool {
	return s.CurrentStreak > 0 && s.AnchorDate != ""
}
