package wrapped

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songbird/backend/internal/contracts"
	"github.com/songbird/backend/internal/engine/sentiment"
)

func newTestSummarizer() *Summarizer {
	return NewSummarizer(DefaultConfig(), sentiment.NewScorer(sentiment.DefaultLexicon()), zerolog.Nop())
}

func entryOn(date contracts.DayKey, title, artist string, opts ...func(*contracts.Entry)) contracts.Entry {
	ts, err := time.Parse(contracts.DayKeyLayout, string(date))
	if err != nil {
		panic(err)
	}
	e := contracts.Entry{
		OwnerID:   "owner-1",
		LoggedAt:  ts.Add(12 * time.Hour),
		LocalDate: date,
		Song:      contracts.SongIdentity{Title: title, Artist: artist},
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func withNotes(notes string) func(*contracts.Entry) {
	return func(e *contracts.Entry) { e.Notes = notes }
}

func withPeople(names ...string) func(*contracts.Entry) {
	return func(e *contracts.Entry) {
		for _, n := range names {
			e.People = append(e.People, contracts.PersonRef{Name: n})
		}
	}
}

func withLoggedAt(at time.Time) func(*contracts.Entry) {
	return func(e *contracts.Entry) { e.LoggedAt = at }
}

func TestSummarize_EmptyYear(t *testing.T) {
	got := newTestSummarizer().Summarize("owner-1", 2024, nil, nil)

	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, 0, got.TotalEntries)
	assert.Len(t, got.Seasons, 4, "season shape is stable even with no data")
	assert.Equal(t, float64(0), got.Alignment.AlignmentRate)
}

func TestSummarize_FiltersToYear(t *testing.T) {
	entries := []contracts.Entry{
		entryOn("2023-12-31", "Old", "Artist"),
		entryOn("2024-01-01", "New", "Artist"),
	}

	got := newTestSummarizer().Summarize("owner-1", 2024, entries, nil)
	assert.Equal(t, 1, got.TotalEntries)
}

func TestSummarize_SeasonalPartitionComplete(t *testing.T) {
	var entries []contracts.Entry
	// One entry per month.
	for m := 1; m <= 12; m++ {
		date := contracts.DayKey(fmt.Sprintf("2024-%02d-15", m))
		entries = append(entries, entryOn(date, "Song", "Artist"))
	}

	got := newTestSummarizer().Summarize("owner-1", 2024, entries, nil)

	require.Len(t, got.Seasons, 4)
	total := 0
	for _, bucket := range got.Seasons {
		assert.Equal(t, 3, bucket.EntryCount, "season %s", bucket.Season)
		total += bucket.EntryCount
	}
	assert.Equal(t, got.TotalEntries, total, "buckets partition the year")
	assert.Equal(t, contracts.SeasonWinter, got.Seasons[0].Season)
	assert.Equal(t, contracts.SeasonFall, got.Seasons[3].Season)
}

func TestSummarize_TopArtistsAndSongs(t *testing.T) {
	entries := []contracts.Entry{
		entryOn("2024-01-01", "Alpha", "Artist A"),
		entryOn("2024-01-02", "Alpha", "Artist A"),
		entryOn("2024-01-03", "Beta", "Artist A"),
		entryOn("2024-01-04", "Gamma", "Artist B"),
	}

	got := newTestSummarizer().Summarize("owner-1", 2024, entries, nil)

	require.NotEmpty(t, got.TopArtists)
	assert.Equal(t, "Artist A", got.TopArtists[0].Artist)
	assert.Equal(t, 3, got.TopArtists[0].Count)

	require.NotEmpty(t, got.TopSongs)
	assert.Equal(t, "Alpha", got.TopSongs[0].Song.Title)
	assert.Equal(t, 2, got.TopSongs[0].Count)
}

func TestSummarize_RankingTieBreakByEarliestLog(t *testing.T) {
	early := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	late := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)

	entries := []contracts.Entry{
		entryOn("2024-03-02", "Later Song", "Later Artist", withLoggedAt(late)),
		entryOn("2024-03-01", "Earlier Song", "Earlier Artist", withLoggedAt(early)),
	}

	got := newTestSummarizer().Summarize("owner-1", 2024, entries, nil)

	require.Len(t, got.TopArtists, 2)
	assert.Equal(t, "Earlier Artist", got.TopArtists[0].Artist, "equal counts, earlier log wins")
	assert.Equal(t, "Earlier Song", got.TopSongs[0].Song.Title)
}

func TestSummarize_ReturningArtists(t *testing.T) {
	entries := []contracts.Entry{
		entryOn("2024-01-10", "One", "Recurring"),
		entryOn("2024-03-15", "Two", "Recurring"),
		entryOn("2024-07-04", "Three", "Recurring"),
		entryOn("2024-02-01", "Four", "TwoMonths"),
		entryOn("2024-02-20", "Five", "TwoMonths"),
		entryOn("2024-03-01", "Six", "TwoMonths"),
		entryOn("2024-05-05", "Seven", "OneMonth"),
	}

	got := newTestSummarizer().Summarize("owner-1", 2024, entries, nil)

	require.Len(t, got.ReturningArtists, 2, "single-month artist excluded")
	assert.Equal(t, "Recurring", got.ReturningArtists[0].Artist)
	assert.Equal(t, 3, got.ReturningArtists[0].DistinctMonths)
	assert.Equal(t, "TwoMonths", got.ReturningArtists[1].Artist)
	assert.Equal(t, 2, got.ReturningArtists[1].DistinctMonths)
	assert.Equal(t, 3, got.ReturningArtists[1].TotalCount)
}

func TestSummarize_LongestStreak(t *testing.T) {
	entries := []contracts.Entry{
		entryOn("2024-04-01", "A", "x"),
		entryOn("2024-04-02", "B", "x"),
		entryOn("2024-04-03", "C", "x"),
		entryOn("2024-04-10", "D", "x"),
	}

	got := newTestSummarizer().Summarize("owner-1", 2024, entries, nil)
	assert.Equal(t, 3, got.LongestStreak)
}

func TestSummarize_SentimentBreakdown(t *testing.T) {
	entries := []contracts.Entry{
		entryOn("2024-01-01", "A", "x", withNotes("so happy and full of joy")),
		entryOn("2024-01-02", "B", "x", withNotes("crying alone tonight")),
		entryOn("2024-01-03", "C", "x", withNotes("listened on the train")),
		entryOn("2024-01-04", "D", "x"), // no notes
	}

	got := newTestSummarizer().Summarize("owner-1", 2024, entries, nil)

	assert.Equal(t, 3, got.Notes.TotalWithNotes)
	assert.Equal(t, 1, got.Notes.Positive)
	assert.Equal(t, 1, got.Notes.Negative)
	assert.Equal(t, 1, got.Notes.Neutral)
	assert.InDelta(t, 33.33, got.Notes.PositiveRate, 0.01)
}

func TestSummarize_AlignmentRate(t *testing.T) {
	aligned := entryOn("2024-01-01", "Happy Song", "x", withNotes("pure joy and sunshine"))
	diverged := entryOn("2024-01-02", "Sad Song", "y", withNotes("this made me smile"))

	lyrics := map[string]string{
		aligned.Song.Key():  "dancing happy golden light",
		diverged.Song.Key(): "tears and sorrow and grief",
	}

	got := newTestSummarizer().Summarize("owner-1", 2024,
		[]contracts.Entry{aligned, diverged}, lyrics)

	assert.Equal(t, 2, got.Alignment.TotalWithBoth)
	assert.Equal(t, 1, got.Alignment.Aligned)
	assert.Equal(t, 1, got.Alignment.Diverged)
	assert.InDelta(t, 50.0, got.Alignment.AlignmentRate, 0.001)
	require.NotNil(t, got.Alignment.MostAligned)
	assert.Equal(t, "Happy Song", got.Alignment.MostAligned.Song.Title)
	require.NotNil(t, got.Alignment.MostDiverged)
	assert.Equal(t, "Sad Song", got.Alignment.MostDiverged.Song.Title)
}

func TestSummarize_AlignmentRateZeroWithoutLyrics(t *testing.T) {
	entries := []contracts.Entry{
		entryOn("2024-01-01", "A", "x", withNotes("so happy today")),
	}

	got := newTestSummarizer().Summarize("owner-1", 2024, entries, nil)

	assert.Equal(t, 0, got.Alignment.TotalWithBoth)
	assert.Equal(t, float64(0), got.Alignment.AlignmentRate, "guarded, not NaN")
	assert.GreaterOrEqual(t, got.Alignment.AlignmentRate, float64(0))
	assert.LessOrEqual(t, got.Alignment.AlignmentRate, float64(100))
}

func TestSummarize_ExtremalTracks(t *testing.T) {
	entries := []contracts.Entry{
		entryOn("2024-01-01", "Brightest", "x", withNotes("happy joy love smile dance")),
		entryOn("2024-01-02", "Middling", "x", withNotes("good but tired")),
		entryOn("2024-01-03", "Darkest", "x", withNotes("sad lonely broken tears")),
	}

	got := newTestSummarizer().Summarize("owner-1", 2024, entries, nil)

	require.NotNil(t, got.MostPositive)
	assert.Equal(t, "Brightest", got.MostPositive.Song.Title)
	require.NotNil(t, got.MostNegative)
	assert.Equal(t, "Darkest", got.MostNegative.Song.Title)

	require.Len(t, got.HappiestTracks, 3)
	assert.Equal(t, "Brightest", got.HappiestTracks[0].Song.Title)
	require.Len(t, got.SaddestTracks, 3)
	assert.Equal(t, "Darkest", got.SaddestTracks[0].Song.Title)
}

func TestSummarize_People(t *testing.T) {
	entries := []contracts.Entry{
		entryOn("2024-01-01", "A", "x", withPeople("Sam"), withNotes("great night with friends")),
		entryOn("2024-01-02", "B", "x", withPeople("Sam", "Riley"), withNotes("sad goodbye")),
		entryOn("2024-01-03", "C", "x", withPeople("Sam")),
	}

	got := newTestSummarizer().Summarize("owner-1", 2024, entries, nil)

	require.NotEmpty(t, got.TopPeople)
	assert.Equal(t, "Sam", got.TopPeople[0].Name)
	assert.Equal(t, 3, got.TopPeople[0].Count)
	require.NotNil(t, got.MostMentionedPerson)
	assert.Equal(t, "Sam", got.MostMentionedPerson.Name)

	require.NotEmpty(t, got.PeopleSentiment)
	sam := got.PeopleSentiment[0]
	assert.Equal(t, "Sam", sam.Name)
	assert.Equal(t, 2, sam.TotalEntries, "only noted entries profiled")
	assert.Equal(t, 1, sam.Positive)
	assert.Equal(t, 1, sam.Negative)
}

func TestSummarize_Keywords(t *testing.T) {
	entries := []contracts.Entry{
		entryOn("2024-01-01", "A", "Phoebe Bridgers", withNotes("midnight drive through empty streets"), withPeople("Sam")),
		entryOn("2024-01-02", "B", "Phoebe Bridgers", withNotes("another midnight drive")),
	}

	got := newTestSummarizer().Summarize("owner-1", 2024, entries, nil)

	require.NotEmpty(t, got.ArtistKeywords)
	assert.Equal(t, "Phoebe Bridgers", got.ArtistKeywords[0].Artist)
	require.NotEmpty(t, got.ArtistKeywords[0].Keywords)
	assert.Equal(t, "drive", got.ArtistKeywords[0].Keywords[0].Word)
	assert.Equal(t, 2, got.ArtistKeywords[0].Keywords[0].Count)

	require.NotEmpty(t, got.PeopleKeywords)
	assert.Equal(t, "Sam", got.PeopleKeywords[0].Person)
}

func TestExtractWords(t *testing.T) {
	got := extractWords("The drive was so long and I loved it")
	assert.Equal(t, []string{"drive", "long", "loved"}, got)
}

func TestPct(t *testing.T) {
	assert.Equal(t, float64(0), pct(5, 0), "zero denominator guards to 0")
	assert.InDelta(t, 50.0, pct(1, 2), 0.001)
}
