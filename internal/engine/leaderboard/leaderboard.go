// Package leaderboard ranks songs for a single closed target day across
// all users. The target day is typically "yesterday" relative to the
// query so the result set is final.
package leaderboard

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/songbird/backend/internal/contracts"
)

// Aggregator groups a day's entries by song identity and ranks them.
type Aggregator struct {
	log zerolog.Logger
}

// NewAggregator creates an aggregator with a component-tagged logger.
func NewAggregator(log zerolog.Logger) *Aggregator {
	return &Aggregator{
		log: log.With().Str("component", "leaderboard.aggregator").Logger(),
	}
}

type group struct {
	song   contracts.SongIdentity
	owners map[string]struct{}
	first  contracts.Entry
}

// Aggregate builds the ranking for one target day. Entries are grouped
// by SongIdentity.Key and counted by distinct owner: a user logging
// the same song twice contributes once, which keeps an upstream
// uniqueness violation from corrupting counts. Each group records the
// earliest LoggedAt and its owner.
//
// Zero entries yield an empty ranking, not an error: "no winner yet" is
// a valid state for callers.
func (a *Aggregator) Aggregate(date contracts.DayKey, entries []contracts.Entry) contracts.Leaderboard {
	groups := make(map[string]*group)

	for _, e := range entries {
		key := e.Song.Key()
		g, ok := groups[key]
		if !ok {
			groups[key] = &group{
				song:   e.Song,
				owners: map[string]struct{}{e.OwnerID: {}},
				first:  e,
			}
			continue
		}
		g.owners[e.OwnerID] = struct{}{}
		if e.LoggedAt.Before(g.first.LoggedAt) {
			g.first = e
		}
	}

	ranking := make([]contracts.LeaderboardEntry, 0, len(groups))
	for _, g := range groups {
		ranking = append(ranking, contracts.LeaderboardEntry{
			Song:          g.song,
			Count:         len(g.owners),
			FirstLoggedAt: g.first.LoggedAt,
			FirstLoggedBy: g.first.OwnerID,
		})
	}

	// Explicit comparator, never map iteration order.
	sort.SliceStable(ranking, func(i, j int) bool {
		return Less(ranking[i], ranking[j])
	})

	board := contracts.Leaderboard{
		Date:    date,
		Ranking: ranking,
		Stats: contracts.LeaderboardStats{
			TotalEntries: len(entries),
			UniqueSongs:  len(groups),
		},
	}

	a.log.Debug().
		Str("date", string(date)).
		Int("entries", len(entries)).
		Int("unique_songs", len(groups)).
		Msg("leaderboard aggregated")

	return board
}

// Less is the ranking rule as a first-class function: distinct-owner
// count descending, then earliest log time ascending (earlier wins),
// then song key ascending as a final stable fallback.
func Less(a, b contracts.LeaderboardEntry) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	if !a.FirstLoggedAt.Equal(b.FirstLoggedAt) {
		return a.FirstLoggedAt.Before(b.FirstLoggedAt)
	}
	return a.Song.Key() < b.Song.Key()
}

// Top returns the first n ranked entries.
func Top(board contracts.Leaderboard, n int) []contracts.LeaderboardEntry {
	if n > len(board.Ranking) {
		n = len(board.Ranking)
	}
	return board.Ranking[:n]
}
