package faq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatcherIdenticalQuestion(t *testing.T) {
	m, err := NewMatcher(Config{}, testEntries(), newTestLogger())
	require.NoError(t, err)

	got := m.Match("How do I claim travel reimbursement?")
	require.True(t, got.Accepted)
	require.Equal(t, MatchMethodTFIDF, got.Method)
	require.Equal(t, 1, got.Position)
	require.NotNil(t, got.Entry)
	require.Equal(t, "Submit the claim under Expenses with receipts.", got.Entry.Answer)
	require.InDelta(t, 1.0, got.Score, 1e-9)
	require.InDelta(t, 1.0, got.Confidence(), 1e-9)
}

func TestMatcherRejectsEmptyAndNonsense(t *testing.T) {
	m, err := NewMatcher(Config{}, testEntries(), newTestLogger())
	require.NoError(t, err)

	for _, q := range []string{"", "   ", "xyzzy plugh", "?!"} {
		got := m.Match(q)
		require.False(t, got.Accepted, q)
		require.Nil(t, got.Entry, q)
		require.Equal(t, -1, got.Position, q)
	}
}

func TestMatcherFuzzyFallback(t *testing.T) {
	m, err := NewMatcher(Config{SimilarityThreshold: 0.9}, testEntries(), newTestLogger())
	require.NoError(t, err)

	got := m.Match("calculatd overtme pay")
	require.True(t, got.Accepted)
	require.Equal(t, MatchMethodFuzzy, got.Method)
	require.Equal(t, 3, got.Position)
	require.Less(t, got.Score, 0.9)
	require.GreaterOrEqual(t, got.Fuzzy, 0.75)
	require.Equal(t, got.Fuzzy, got.Confidence())
}

func TestMatcherPartialQueryAboveThreshold(t *testing.T) {
	m, err := NewMatcher(Config{}, testEntries(), newTestLogger())
	require.NoError(t, err)

	got := m.Match("notice period?")
	require.True(t, got.Accepted)
	require.Equal(t, 2, got.Position)
	require.Greater(t, got.Score, 0.45)
}

func TestMatcherReload(t *testing.T) {
	m, err := NewMatcher(Config{}, testEntries(), newTestLogger())
	require.NoError(t, err)
	require.True(t, m.Match("What is HRA?").Accepted)

	err = m.Reload([]Entry{{Question: "Where is the cafeteria menu?", Answer: "On the intranet."}})
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())
	require.False(t, m.Match("What is HRA?").Accepted)
	require.True(t, m.Match("cafeteria menu").Accepted)

	require.ErrorIs(t, m.Reload(nil), ErrEmptyCorpus)
	require.Equal(t, 1, m.Len())
	require.Equal(t, "Where is the cafeteria menu?", m.Entries()[0].Question)
}

func TestNewMatcherFailsOnEmptyCorpus(t *testing.T) {
	_, err := NewMatcher(Config{}, nil, newTestLogger())
	require.ErrorIs(t, err, ErrEmptyCorpus)
}
