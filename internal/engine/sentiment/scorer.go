// Package sentiment scores free text against fixed positive/negative
// keyword sets. Exact token membership only, no stemming or partial
// matches, so the heuristic stays auditable and testable.
package sentiment

import (
	"strings"
	"unicode"

	"github.com/songbird/backend/internal/contracts"
)

// Scorer counts lexicon hits in tokenized text. Scorers are immutable
// after construction and safe for concurrent use.
type Scorer struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// NewScorer builds a scorer from a lexicon. Words are lowercased on the
// way in so membership checks match the tokenizer's output.
func NewScorer(lex *Lexicon) *Scorer {
	s := &Scorer{
		positive: make(map[string]struct{}, len(lex.Positive)),
		negative: make(map[string]struct{}, len(lex.Negative)),
	}
	for _, w := range lex.Positive {
		s.positive[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range lex.Negative {
		s.negative[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Score tokenizes text on word boundaries, lowercases each token, and
// counts matches against the two keyword sets. Equal hit counts,
// including zero/zero, resolve to neutral.
func (s *Scorer) Score(text string) contracts.SentimentScore {
	score := contracts.SentimentScore{Label: contracts.SentimentNeutral}

	for _, token := range Tokenize(text) {
		if _, ok := s.positive[token]; ok {
			score.PositiveHits++
		}
		if _, ok := s.negative[token]; ok {
			score.NegativeHits++
		}
	}

	switch {
	case score.PositiveHits > score.NegativeHits:
		score.Label = contracts.SentimentPositive
	case score.NegativeHits > score.PositiveHits:
		score.Label = contracts.SentimentNegative
	}

	return score
}

// ScoreLyrics scores externally fetched lyric text with the exact same
// mechanism as Score, so note sentiment and lyric sentiment are
// directly comparable.
func (s *Scorer) ScoreLyrics(text string) contracts.SentimentScore {
	return s.Score(text)
}

// Tokenize splits text into lowercased word tokens. Anything that is
// not a letter or digit is a boundary.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
