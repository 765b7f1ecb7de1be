package sentiment

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Lexicon holds the positive and negative keyword sets the scorer
// matches against. It is a data asset, not code: the default ships with
// the binary, and deployments can swap in their own via LoadLexicon.
type Lexicon struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

// LoadLexicon reads a lexicon from a YAML file. Unknown fields fail
// immediately so a typo in the asset is caught at startup, not at
// scoring time.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	var lex Lexicon
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&lex); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	if len(lex.Positive) == 0 || len(lex.Negative) == 0 {
		return nil, fmt.Errorf("lexicon %s: both positive and negative word sets are required", path)
	}

	return &lex, nil
}

// DefaultLexicon returns the built-in keyword sets, tuned for the short
// free-text notes users attach to daily song entries.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Positive: []string{
			"love", "loved", "happy", "happiness", "joy", "joyful",
			"amazing", "beautiful", "great", "best", "fun", "sweet",
			"smile", "smiling", "dance", "dancing", "perfect", "good",
			"warm", "bright", "laugh", "laughing", "favorite", "excited",
			"peaceful", "grateful", "hope", "hopeful", "calm", "alive",
			"sunshine", "celebrate", "free", "golden", "glow",
		},
		Negative: []string{
			"sad", "sadness", "cry", "crying", "cried", "lonely",
			"miss", "missed", "missing", "hurt", "hurts", "pain",
			"angry", "hate", "hated", "tired", "broken", "dark",
			"lost", "fear", "afraid", "worst", "bad", "gloomy",
			"regret", "empty", "ache", "sorrow", "anxious", "goodbye",
			"tears", "alone", "cold", "grief", "heartbreak",
		},
	}
}
