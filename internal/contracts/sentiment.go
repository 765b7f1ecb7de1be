package contracts

// SentimentLabel classifies a scored text blob.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// SentimentScore is the lexicon-hit count for one text blob. The label
// is positive iff PositiveHits > NegativeHits, negative iff the
// reverse, neutral otherwise (including the 0/0 case).
type SentimentScore struct {
	Label        SentimentLabel `json:"label"`
	PositiveHits int            `json:"positive_hits"`
	NegativeHits int            `json:"negative_hits"`
}

// Net returns positive minus negative hits. Used to rank entries from
// happiest to saddest.
func (s SentimentScore) Net() int {
	return s.PositiveHits - s.NegativeHits
}
