package faq

import "errors"

var (
	// ErrEmptyCorpus is returned when an index is built from zero entries.
	ErrEmptyCorpus = errors.New("faq corpus is empty")
	// ErrEmptyVocabulary is returned when no entry contributes an indexable term.
	ErrEmptyVocabulary = errors.New("faq corpus has no indexable terms")
)

// Entry is a single question/answer pair of the static FAQ table.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
}

// MatchMethod names the signal that accepted a match.
type MatchMethod string

const (
	// MatchMethodTFIDF means the cosine similarity cleared the threshold.
	MatchMethodTFIDF MatchMethod = "tfidf"
	// MatchMethodFuzzy means only the token-set ratio cleared its threshold.
	MatchMethodFuzzy MatchMethod = "fuzzy"
)

// Match is the outcome of a single lookup against the index.
type Match struct {
	Entry    *Entry      `json:"entry,omitempty"`
	Position int         `json:"position"`
	Score    float64     `json:"score"`
	Fuzzy    float64     `json:"fuzzy"`
	Accepted bool        `json:"accepted"`
	Method   MatchMethod `json:"method,omitempty"`
}

// Confidence returns the score of the signal that accepted the match.
func (m Match) Confidence() float64 {
	if m.Method == MatchMethodFuzzy {
		return m.Fuzzy
	}
	return m.Score
}
