package sentiment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songbird/backend/internal/contracts"
)

func TestScorer_Score(t *testing.T) {
	scorer := NewScorer(DefaultLexicon())

	tests := []struct {
		name         string
		text         string
		wantLabel    contracts.SentimentLabel
		wantPositive int
		wantNegative int
	}{
		{
			name:         "two positive zero negative",
			text:         "this song makes me so happy, pure joy",
			wantLabel:    contracts.SentimentPositive,
			wantPositive: 2,
		},
		{
			name:         "one each is neutral",
			text:         "happy but also sad today",
			wantLabel:    contracts.SentimentNeutral,
			wantPositive: 1,
			wantNegative: 1,
		},
		{
			name:      "zero zero is neutral",
			text:      "played this on the drive home",
			wantLabel: contracts.SentimentNeutral,
		},
		{
			name:         "negative wins",
			text:         "crying alone again, this one hurts",
			wantLabel:    contracts.SentimentNegative,
			wantNegative: 3,
		},
		{
			name:         "punctuation and case ignored",
			text:         "LOVE this!! Absolutely LOVE.",
			wantLabel:    contracts.SentimentPositive,
			wantPositive: 2,
		},
		{
			name:      "no partial matches",
			text:      "lovely sadly", // not in the lexicon as-is
			wantLabel: contracts.SentimentNeutral,
		},
		{
			name:      "empty text",
			text:      "",
			wantLabel: contracts.SentimentNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.text)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantPositive, got.PositiveHits)
			assert.Equal(t, tt.wantNegative, got.NegativeHits)
		})
	}
}

func TestScorer_ScoreLyricsMatchesScore(t *testing.T) {
	scorer := NewScorer(DefaultLexicon())
	text := "dancing in the golden light, never felt so alive"

	assert.Equal(t, scorer.Score(text), scorer.ScoreLyrics(text))
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Don't stop—believing, 2024!")
	assert.Equal(t, []string{"don", "t", "stop", "believing", "2024"}, got)
}

func TestLoadLexicon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("positive: [up]\nnegative: [down]\n"), 0o644))

	lex, err := LoadLexicon(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"up"}, lex.Positive)
	assert.Equal(t, []string{"down"}, lex.Negative)

	scorer := NewScorer(lex)
	assert.Equal(t, contracts.SentimentPositive, scorer.Score("up up and away").Label)
}

func TestLoadLexicon_UnknownField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("positive: [up]\nnegative: [down]\nneutral: [meh]\n"), 0o644))

	_, err := LoadLexicon(path)
	assert.Error(t, err)
}

func TestLoadLexicon_MissingSet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("positive: [up]\n"), 0o644))

	_, err := LoadLexicon(path)
	assert.Error(t, err)
}
