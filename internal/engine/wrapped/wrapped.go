// Package wrapped builds the composite yearly summary for one owner:
// seasonal buckets, artist/song rankings, returning artists, sentiment
// breakdown and note/lyric alignment, and the extremal entries the UI
// turns into cards.
package wrapped

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/songbird/backend/internal/contracts"
	"github.com/songbird/backend/internal/engine/calendar"
	"github.com/songbird/backend/internal/engine/sentiment"
	"github.com/songbird/backend/internal/engine/streak"
)

// Config sizes the ranked lists in the summary.
type Config struct {
	TopArtists      int // year-level artist ranking
	TopSongs        int // year-level song ranking
	SeasonTopN      int // per-season artist/song rankings
	ReturningLimit  int // returning-artist list
	TopTracks       int // happiest/saddest track lists
	TopPeople       int // tagged-people ranking
	KeywordLimit    int // keywords per subject
	KeywordSubjects int // artists/people given keyword lists
}

// DefaultConfig mirrors the card sizes the product ships with.
func DefaultConfig() Config {
	return Config{
		TopArtists:      5,
		TopSongs:        5,
		SeasonTopN:      3,
		ReturningLimit:  5,
		TopTracks:       10,
		TopPeople:       5,
		KeywordLimit:    5,
		KeywordSubjects: 3,
	}
}

// Summarizer computes yearly summaries. It is stateless between calls
// and safe for concurrent use across owners.
type Summarizer struct {
	cfg    Config
	scorer *sentiment.Scorer
	log    zerolog.Logger
}

// NewSummarizer creates a summarizer around a sentiment scorer.
func NewSummarizer(cfg Config, scorer *sentiment.Scorer, log zerolog.Logger) *Summarizer {
	return &Summarizer{
		cfg:    cfg,
		scorer: scorer,
		log:    log.With().Str("component", "wrapped.summarizer").Logger(),
	}
}

// Summarize builds the full summary from the owner's entries and the
// externally fetched lyric texts, keyed by SongIdentity.Key. Entries
// outside the target year are ignored. A year with zero entries yields
// a zero-value summary, which is valid "no data", never an error.
func (s *Summarizer) Summarize(ownerID string, year int, entries []contracts.Entry, lyricsBySong map[string]string) contracts.WrappedSummary {
	var inYear []contracts.Entry
	for _, e := range entries {
		if calendar.Year(e.LocalDate) == year {
			inYear = append(inYear, e)
		}
	}

	summary := contracts.WrappedSummary{
		OwnerID:      ownerID,
		Year:         year,
		TotalEntries: len(inYear),
	}

	summary.Seasons = s.seasonalBuckets(inYear)
	if len(inYear) == 0 {
		return summary
	}

	dates := make([]contracts.DayKey, 0, len(inYear))
	for _, e := range inYear {
		dates = append(dates, e.LocalDate)
	}
	summary.LongestStreak = streak.Longest(dates)

	summary.TopArtists = rankArtists(inYear, s.cfg.TopArtists)
	summary.TopSongs = rankSongs(inYear, s.cfg.TopSongs)
	summary.ReturningArtists = s.returningArtists(inYear)

	s.scoreSentiment(&summary, inYear, lyricsBySong)
	s.summarizePeople(&summary, inYear)
	s.extractKeywords(&summary, inYear)

	s.log.Debug().
		Str("owner_id", ownerID).
		Int("year", year).
		Int("entries", len(inYear)).
		Int("returning_artists", len(summary.ReturningArtists)).
		Msg("wrapped summary built")

	return summary
}

// seasonalBuckets partitions the year's entries into the four seasons.
// Every entry lands in exactly one bucket, so bucket counts always sum
// to the total.
func (s *Summarizer) seasonalBuckets(entries []contracts.Entry) []contracts.SeasonalBucket {
	bySeason := make(map[contracts.Season][]contracts.Entry, 4)
	for _, e := range entries {
		season := calendar.SeasonOf(e.LocalDate)
		bySeason[season] = append(bySeason[season], e)
	}

	buckets := make([]contracts.SeasonalBucket, 0, 4)
	for _, season := range contracts.Seasons() {
		seasonEntries := bySeason[season]
		buckets = append(buckets, contracts.SeasonalBucket{
			Season:     season,
			EntryCount: len(seasonEntries),
			TopArtists: rankArtists(seasonEntries, s.cfg.SeasonTopN),
			TopSongs:   rankSongs(seasonEntries, s.cfg.SeasonTopN),
		})
	}
	return buckets
}

// returningArtists finds artists logged in at least two distinct
// calendar months of the year, ranked by distinct-month count then
// total count.
func (s *Summarizer) returningArtists(entries []contracts.Entry) []contracts.ReturningArtist {
	months := make(map[string]map[int]struct{})
	totals := make(map[string]int)

	for _, e := range entries {
		artist := e.Song.Artist
		if months[artist] == nil {
			months[artist] = make(map[int]struct{})
		}
		months[artist][calendar.Month(e.LocalDate)] = struct{}{}
		totals[artist]++
	}

	var returning []contracts.ReturningArtist
	for artist, m := range months {
		if len(m) < 2 {
			continue
		}
		returning = append(returning, contracts.ReturningArtist{
			Artist:         artist,
			DistinctMonths: len(m),
			TotalCount:     totals[artist],
		})
	}

	sort.Slice(returning, func(i, j int) bool {
		a, b := returning[i], returning[j]
		if a.DistinctMonths != b.DistinctMonths {
			return a.DistinctMonths > b.DistinctMonths
		}
		if a.TotalCount != b.TotalCount {
			return a.TotalCount > b.TotalCount
		}
		return a.Artist < b.Artist
	})

	return limit(returning, s.cfg.ReturningLimit)
}

type tally struct {
	count int
	first time.Time
	song  contracts.SongIdentity
}

// rankArtists counts entries per artist and ranks by count desc, then
// earliest log asc, then name asc.
func rankArtists(entries []contracts.Entry, n int) []contracts.ArtistCount {
	tallies := make(map[string]*tally)
	for _, e := range entries {
		t, ok := tallies[e.Song.Artist]
		if !ok {
			tallies[e.Song.Artist] = &tally{count: 1, first: e.LoggedAt}
			continue
		}
		t.count++
		if e.LoggedAt.Before(t.first) {
			t.first = e.LoggedAt
		}
	}

	names := make([]string, 0, len(tallies))
	for name := range tallies {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := tallies[names[i]], tallies[names[j]]
		if a.count != b.count {
			return a.count > b.count
		}
		if !a.first.Equal(b.first) {
			return a.first.Before(b.first)
		}
		return names[i] < names[j]
	})

	ranked := make([]contracts.ArtistCount, 0, len(names))
	for _, name := range names {
		ranked = append(ranked, contracts.ArtistCount{Artist: name, Count: tallies[name].count})
	}
	return limit(ranked, n)
}

// rankSongs is rankArtists over song identity keys, keeping the
// earliest-logged spelling as the representative identity.
func rankSongs(entries []contracts.Entry, n int) []contracts.SongCount {
	tallies := make(map[string]*tally)
	for _, e := range entries {
		key := e.Song.Key()
		t, ok := tallies[key]
		if !ok {
			tallies[key] = &tally{count: 1, first: e.LoggedAt, song: e.Song}
			continue
		}
		t.count++
		if e.LoggedAt.Before(t.first) {
			t.first = e.LoggedAt
			t.song = e.Song
		}
	}

	keys := make([]string, 0, len(tallies))
	for key := range tallies {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := tallies[keys[i]], tallies[keys[j]]
		if a.count != b.count {
			return a.count > b.count
		}
		if !a.first.Equal(b.first) {
			return a.first.Before(b.first)
		}
		return keys[i] < keys[j]
	})

	ranked := make([]contracts.SongCount, 0, len(keys))
	for _, key := range keys {
		ranked = append(ranked, contracts.SongCount{Song: tallies[key].song, Count: tallies[key].count})
	}
	return limit(ranked, n)
}

func limit[T any](s []T, n int) []T {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}

// pct is the shared division guard: every rate in the summary is 0 when
// its denominator is 0, never NaN.
func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
