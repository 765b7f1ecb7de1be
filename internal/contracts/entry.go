package contracts

import (
	"strings"
	"time"
)

// DayKey is a calendar day in the entry owner's local time, formatted
// YYYY-MM-DD. Keys compare by exact string equality and sort
// lexicographically in chronological order. Two entries belong to the
// same day iff their keys are equal, regardless of UTC distance.
type DayKey string

// DayKeyLayout is the time.Parse layout for DayKey values.
const DayKeyLayout = "2006-01-02"

// PersonRef is a person tagged on an entry.
type PersonRef struct {
	Name   string `json:"name"`
	UserID string `json:"user_id,omitempty"`
}

// SongIdentity identifies a logged song. TrackID is the external catalog
// id when the client resolved one; Title and Artist are always present.
type SongIdentity struct {
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	TrackID string `json:"track_id,omitempty"`
}

// Key returns the grouping key for this song. The TrackID wins when
// present; otherwise title and artist are lowercased and
// whitespace-collapsed so duplicate-looking rows land in one group.
func (s SongIdentity) Key() string {
	if s.TrackID != "" {
		return s.TrackID
	}
	return normalize(s.Title) + "::" + normalize(s.Artist)
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Entry is one logged song on one calendar day. Entries are owned by the
// persistence layer; the engine treats them as read-only input.
// At most one entry exists per (OwnerID, LocalDate), enforced upstream.
type Entry struct {
	ID        string       `json:"id,omitempty"`
	OwnerID   string       `json:"owner_id"`
	LoggedAt  time.Time    `json:"logged_at"`
	LocalDate DayKey       `json:"local_date"`
	Song      SongIdentity `json:"song"`
	Notes     string       `json:"notes,omitempty"`
	People    []PersonRef  `json:"people,omitempty"`
}
