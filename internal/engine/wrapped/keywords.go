package wrapped

import (
	"sort"

	"github.com/songbird/backend/internal/contracts"
	"github.com/songbird/backend/internal/engine/sentiment"
)

// stopWords are excluded from keyword extraction. Function words only;
// the sentiment lexicon is a separate, swappable asset.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "from": {}, "as": {}, "is": {}, "was": {},
	"are": {}, "were": {}, "been": {}, "be": {}, "have": {}, "has": {},
	"had": {}, "do": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"could": {}, "should": {}, "may": {}, "might": {}, "must": {},
	"can": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {},
	"they": {}, "me": {}, "him": {}, "her": {}, "us": {}, "them": {},
}

// extractWords tokenizes note text, dropping stop words and tokens
// shorter than three characters.
func extractWords(text string) []string {
	var words []string
	for _, token := range sentiment.Tokenize(text) {
		if len(token) <= 2 {
			continue
		}
		if _, ok := stopWords[token]; ok {
			continue
		}
		words = append(words, token)
	}
	return words
}

// summarizePeople ranks tagged people by mention count and profiles the
// note sentiment of entries tagging each of them.
func (s *Summarizer) summarizePeople(summary *contracts.WrappedSummary, entries []contracts.Entry) {
	counts := make(map[string]int)
	profiles := make(map[string]*contracts.PersonSentiment)

	for _, e := range entries {
		var note contracts.SentimentScore
		if e.Notes != "" {
			note = s.scorer.Score(e.Notes)
		}
		for _, p := range e.People {
			counts[p.Name]++

			if e.Notes == "" {
				continue
			}
			prof := profiles[p.Name]
			if prof == nil {
				prof = &contracts.PersonSentiment{Name: p.Name}
				profiles[p.Name] = prof
			}
			prof.TotalEntries++
			switch note.Label {
			case contracts.SentimentPositive:
				prof.Positive++
			case contracts.SentimentNegative:
				prof.Negative++
			default:
				prof.Neutral++
			}
		}
	}

	people := make([]contracts.PersonCount, 0, len(counts))
	for name, count := range counts {
		people = append(people, contracts.PersonCount{Name: name, Count: count})
	}
	sort.Slice(people, func(i, j int) bool {
		if people[i].Count != people[j].Count {
			return people[i].Count > people[j].Count
		}
		return people[i].Name < people[j].Name
	})

	summary.TopPeople = limit(people, s.cfg.TopPeople)
	if len(summary.TopPeople) > 0 {
		top := summary.TopPeople[0]
		summary.MostMentionedPerson = &top
	}

	sentiments := make([]contracts.PersonSentiment, 0, len(profiles))
	for _, prof := range profiles {
		sentiments = append(sentiments, *prof)
	}
	sort.Slice(sentiments, func(i, j int) bool {
		if sentiments[i].TotalEntries != sentiments[j].TotalEntries {
			return sentiments[i].TotalEntries > sentiments[j].TotalEntries
		}
		return sentiments[i].Name < sentiments[j].Name
	})
	summary.PeopleSentiment = limit(sentiments, s.cfg.TopPeople)
}

// extractKeywords attaches the most-used note words to the top artists
// and top people. Subjects without any keywords are skipped.
func (s *Summarizer) extractKeywords(summary *contracts.WrappedSummary, entries []contracts.Entry) {
	byArtist := make(map[string]map[string]int)
	byPerson := make(map[string]map[string]int)

	for _, e := range entries {
		if e.Notes == "" {
			continue
		}
		words := extractWords(e.Notes)
		if len(words) == 0 {
			continue
		}

		if byArtist[e.Song.Artist] == nil {
			byArtist[e.Song.Artist] = make(map[string]int)
		}
		for _, w := range words {
			byArtist[e.Song.Artist][w]++
		}

		for _, p := range e.People {
			if byPerson[p.Name] == nil {
				byPerson[p.Name] = make(map[string]int)
			}
			for _, w := range words {
				byPerson[p.Name][w]++
			}
		}
	}

	summary.ArtistKeywords = []contracts.ArtistKeywords{}
	for _, artist := range summary.TopArtists {
		if len(summary.ArtistKeywords) >= s.cfg.KeywordSubjects {
			break
		}
		keywords := topKeywords(byArtist[artist.Artist], s.cfg.KeywordLimit)
		if len(keywords) == 0 {
			continue
		}
		summary.ArtistKeywords = append(summary.ArtistKeywords, contracts.ArtistKeywords{
			Artist:   artist.Artist,
			Keywords: keywords,
		})
	}

	summary.PeopleKeywords = []contracts.PersonKeywords{}
	for _, person := range summary.TopPeople {
		if len(summary.PeopleKeywords) >= s.cfg.KeywordSubjects {
			break
		}
		keywords := topKeywords(byPerson[person.Name], s.cfg.KeywordLimit)
		if len(keywords) == 0 {
			continue
		}
		summary.PeopleKeywords = append(summary.PeopleKeywords, contracts.PersonKeywords{
			Person:   person.Name,
			Keywords: keywords,
		})
	}
}

func topKeywords(counts map[string]int, n int) []contracts.KeywordCount {
	if len(counts) == 0 {
		return nil
	}
	keywords := make([]contracts.KeywordCount, 0, len(counts))
	for word, count := range counts {
		keywords = append(keywords, contracts.KeywordCount{Word: word, Count: count})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Word < keywords[j].Word
	})
	return limit(keywords, n)
}
