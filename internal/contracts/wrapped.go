package contracts

import "time"

// Season is one quarter of the calendar year, assigned by the month
// component of an entry's LocalDate. The four seasons partition a
// year's entries.
type Season string

const (
	SeasonWinter Season = "winter" // Jan–Mar
	SeasonSpring Season = "spring" // Apr–Jun
	SeasonSummer Season = "summer" // Jul–Sep
	SeasonFall   Season = "fall"   // Oct–Dec
)

// Seasons lists all seasons in calendar order.
func Seasons() []Season {
	return []Season{SeasonWinter, SeasonSpring, SeasonSummer, SeasonFall}
}

// ArtistCount is one artist with an entry count, ranked by the shared
// comparator (count desc, earliest log asc).
type ArtistCount struct {
	Artist string `json:"artist"`
	Count  int    `json:"count"`
}

// SongCount is one song with an entry count.
type SongCount struct {
	Song  SongIdentity `json:"song"`
	Count int          `json:"count"`
}

// SeasonalBucket holds one season's slice of the year.
type SeasonalBucket struct {
	Season     Season        `json:"season"`
	EntryCount int           `json:"entry_count"`
	TopArtists []ArtistCount `json:"top_artists"`
	TopSongs   []SongCount   `json:"top_songs"`
}

// ReturningArtist is an artist logged in at least two distinct calendar
// months within the year.
type ReturningArtist struct {
	Artist         string `json:"artist"`
	DistinctMonths int    `json:"distinct_months"`
	TotalCount     int    `json:"total_count"`
}

// SentimentBreakdown is the note-only sentiment distribution over all
// entries that carry note text. Rates are percentages in [0, 100] and
// 0 when no entries have notes.
type SentimentBreakdown struct {
	TotalWithNotes int     `json:"total_with_notes"`
	Positive       int     `json:"positive"`
	Negative       int     `json:"negative"`
	Neutral        int     `json:"neutral"`
	PositiveRate   float64 `json:"positive_rate"`
	NegativeRate   float64 `json:"negative_rate"`
	NeutralRate    float64 `json:"neutral_rate"`
}

// TrackSentiment is one entry's song with its note score and, when
// lyric text was available, the lyric score.
type TrackSentiment struct {
	Song       SongIdentity    `json:"song"`
	NoteScore  SentimentScore  `json:"note_score"`
	LyricScore *SentimentScore `json:"lyric_score,omitempty"`
	NetScore   int             `json:"net_score"`
	LoggedAt   time.Time       `json:"logged_at"`
}

// SentimentAlignment compares note sentiment against lyric sentiment
// for entries that have both texts. AlignmentRate is a percentage in
// [0, 100], 0 when no entry has both.
type SentimentAlignment struct {
	TotalWithBoth int             `json:"total_with_both"`
	Aligned       int             `json:"aligned"`
	Diverged      int             `json:"diverged"`
	AlignmentRate float64         `json:"alignment_rate"`
	MostAligned   *TrackSentiment `json:"most_aligned,omitempty"`
	MostDiverged  *TrackSentiment `json:"most_diverged,omitempty"`
}

// PersonCount is one tagged person with a mention count.
type PersonCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// KeywordCount is one note keyword with its frequency.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ArtistKeywords pairs a top artist with the words most used in notes
// about their songs.
type ArtistKeywords struct {
	Artist   string         `json:"artist"`
	Keywords []KeywordCount `json:"keywords"`
}

// PersonKeywords pairs a top person with the words most used in notes
// that tag them.
type PersonKeywords struct {
	Person   string         `json:"person"`
	Keywords []KeywordCount `json:"keywords"`
}

// PersonSentiment is the note-sentiment profile of entries tagging one
// person.
type PersonSentiment struct {
	Name         string `json:"name"`
	TotalEntries int    `json:"total_entries"`
	Positive     int    `json:"positive"`
	Negative     int    `json:"negative"`
	Neutral      int    `json:"neutral"`
}

// WrappedSummary is the composite yearly summary for one owner. A year
// with zero entries yields a zero-value summary with TotalEntries 0:
// valid "no data", not an error.
type WrappedSummary struct {
	OwnerID      string `json:"owner_id"`
	Year         int    `json:"year"`
	TotalEntries int    `json:"total_entries"`

	LongestStreak int `json:"longest_streak"`

	TopArtists []ArtistCount    `json:"top_artists"`
	TopSongs   []SongCount      `json:"top_songs"`
	Seasons    []SeasonalBucket `json:"seasons"`

	ReturningArtists []ReturningArtist `json:"returning_artists"`

	Notes     SentimentBreakdown `json:"notes"`
	Alignment SentimentAlignment `json:"alignment"`

	MostPositive   *TrackSentiment  `json:"most_positive,omitempty"`
	MostNegative   *TrackSentiment  `json:"most_negative,omitempty"`
	HappiestTracks []TrackSentiment `json:"happiest_tracks"`
	SaddestTracks  []TrackSentiment `json:"saddest_tracks"`

	TopPeople           []PersonCount `json:"top_people"`
	MostMentionedPerson *PersonCount  `json:"most_mentioned_person,omitempty"`

	ArtistKeywords  []ArtistKeywords  `json:"artist_keywords"`
	PeopleKeywords  []PersonKeywords  `json:"people_keywords"`
	PeopleSentiment []PersonSentiment `json:"people_sentiment"`
}
