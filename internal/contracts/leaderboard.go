package contracts

import "time"

// LeaderboardEntry is one ranked song for a single target day across
// all users. Count is the number of distinct owners who logged the
// song that day, never the raw row count.
type LeaderboardEntry struct {
	Song          SongIdentity `json:"song"`
	Count         int          `json:"count"`
	FirstLoggedAt time.Time    `json:"first_logged_at"`
	FirstLoggedBy string       `json:"first_logged_by"`
}

// LeaderboardStats summarizes the target day as a whole.
type LeaderboardStats struct {
	TotalEntries int `json:"total_entries"`
	UniqueSongs  int `json:"unique_songs"`
}

// Leaderboard is the full result for one closed target day. An empty
// Ranking means no entries were logged that day, which is a valid
// "no winner yet" state.
type Leaderboard struct {
	Date    DayKey             `json:"date"`
	Ranking []LeaderboardEntry `json:"ranking"`
	Stats   LeaderboardStats   `json:"stats"`
}
