package wrapped

import (
	"sort"

	"github.com/songbird/backend/internal/contracts"
)

// scoredEntry is one entry with its note score and, when lyric text was
// available for its song, the lyric score.
type scoredEntry struct {
	entry contracts.Entry
	note  contracts.SentimentScore
	lyric *contracts.SentimentScore
}

// scoreSentiment fills the note-sentiment breakdown, the note/lyric
// alignment pass, and the extremal track lists.
func (s *Summarizer) scoreSentiment(summary *contracts.WrappedSummary, entries []contracts.Entry, lyricsBySong map[string]string) {
	var withNotes []scoredEntry
	for _, e := range entries {
		if e.Notes == "" {
			continue
		}
		sc := scoredEntry{entry: e, note: s.scorer.Score(e.Notes)}
		if lyrics, ok := lyricsBySong[e.Song.Key()]; ok && lyrics != "" {
			ls := s.scorer.ScoreLyrics(lyrics)
			sc.lyric = &ls
		}
		withNotes = append(withNotes, sc)
	}

	// Note-only distribution over every entry that has notes,
	// regardless of lyric availability.
	breakdown := contracts.SentimentBreakdown{TotalWithNotes: len(withNotes)}
	for _, sc := range withNotes {
		switch sc.note.Label {
		case contracts.SentimentPositive:
			breakdown.Positive++
		case contracts.SentimentNegative:
			breakdown.Negative++
		default:
			breakdown.Neutral++
		}
	}
	breakdown.PositiveRate = pct(breakdown.Positive, breakdown.TotalWithNotes)
	breakdown.NegativeRate = pct(breakdown.Negative, breakdown.TotalWithNotes)
	breakdown.NeutralRate = pct(breakdown.Neutral, breakdown.TotalWithNotes)
	summary.Notes = breakdown

	summary.Alignment = s.alignLyrics(withNotes)

	summary.HappiestTracks = []contracts.TrackSentiment{}
	summary.SaddestTracks = []contracts.TrackSentiment{}
	if len(withNotes) == 0 {
		return
	}

	// Happiest first: net score desc, earlier log wins ties.
	happiest := make([]scoredEntry, len(withNotes))
	copy(happiest, withNotes)
	sort.SliceStable(happiest, func(i, j int) bool {
		a, b := happiest[i], happiest[j]
		if a.note.Net() != b.note.Net() {
			return a.note.Net() > b.note.Net()
		}
		return a.entry.LoggedAt.Before(b.entry.LoggedAt)
	})

	saddest := make([]scoredEntry, len(withNotes))
	copy(saddest, withNotes)
	sort.SliceStable(saddest, func(i, j int) bool {
		a, b := saddest[i], saddest[j]
		if a.note.Net() != b.note.Net() {
			return a.note.Net() < b.note.Net()
		}
		return a.entry.LoggedAt.Before(b.entry.LoggedAt)
	})

	summary.MostPositive = happiest[0].track()
	summary.MostNegative = saddest[0].track()
	summary.HappiestTracks = tracksOf(limit(happiest, s.cfg.TopTracks))
	summary.SaddestTracks = tracksOf(limit(saddest, s.cfg.TopTracks))
}

// alignLyrics compares note labels against lyric labels for entries
// that carry both texts. The rate is guarded to 0 when nothing
// qualifies.
func (s *Summarizer) alignLyrics(withNotes []scoredEntry) contracts.SentimentAlignment {
	alignment := contracts.SentimentAlignment{}

	var bestAligned, worstDiverged *scoredEntry
	worstGap := -1

	for i := range withNotes {
		sc := &withNotes[i]
		if sc.lyric == nil {
			continue
		}
		alignment.TotalWithBoth++

		if sc.note.Label == sc.lyric.Label {
			alignment.Aligned++
			if bestAligned == nil || sc.note.Net() > bestAligned.note.Net() {
				bestAligned = sc
			}
			continue
		}

		alignment.Diverged++
		gap := sc.note.Net() - sc.lyric.Net()
		if gap < 0 {
			gap = -gap
		}
		if gap > worstGap {
			worstDiverged = sc
			worstGap = gap
		}
	}

	alignment.AlignmentRate = pct(alignment.Aligned, alignment.TotalWithBoth)
	if bestAligned != nil {
		alignment.MostAligned = bestAligned.track()
	}
	if worstDiverged != nil {
		alignment.MostDiverged = worstDiverged.track()
	}
	return alignment
}

func (sc scoredEntry) track() *contracts.TrackSentiment {
	return &contracts.TrackSentiment{
		Song:       sc.entry.Song,
		NoteScore:  sc.note,
		LyricScore: sc.lyric,
		NetScore:   sc.note.Net(),
		LoggedAt:   sc.entry.LoggedAt,
	}
}

func tracksOf(scored []scoredEntry) []contracts.TrackSentiment {
	out := make([]contracts.TrackSentiment, 0, len(scored))
	for _, sc := range scored {
		out = append(out, *sc.track())
	}
	return out
}
