package faq

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// snapshot pairs an index with the memoised results computed against it, so a
// reload never serves a result from the previous corpus.
type snapshot struct {
	index *Index
	cache *lru.Cache[string, Match]
}

// Matcher answers queries against the current FAQ index.
type Matcher struct {
	cfg     Config
	current atomic.Pointer[snapshot]
	logger  *slog.Logger
}

// NewMatcher builds the initial index from entries.
func NewMatcher(cfg Config, entries []Entry, logger *slog.Logger) (*Matcher, error) {
	m := &Matcher{
		cfg:    cfg.withDefaults(),
		logger: logger.With("component", "faq.matcher"),
	}
	if err := m.Reload(entries); err != nil {
		return nil, err
	}
	return m, nil
}

// Reload builds a fresh index from entries and swaps it in atomically.
// The previous index keeps serving if the build fails.
func (m *Matcher) Reload(entries []Entry) error {
	index, err := NewIndex(entries)
	if err != nil {
		return err
	}
	cache, err := lru.New[string, Match](m.cfg.CacheSize)
	if err != nil {
		return fmt.Errorf("faq match cache: %w", err)
	}
	m.current.Store(&snapshot{index: index, cache: cache})
	m.logger.Info("faq index built", "entries", index.Len(), "terms", index.Vocabulary())
	return nil
}

// Match looks up the best FAQ entry for query.
func (m *Matcher) Match(query string) Match {
	snap := m.current.Load()
	key := Normalize(query)
	if cached, ok := snap.cache.Get(key); ok {
		return cached
	}
	result := m.match(snap.index, key)
	snap.cache.Add(key, result)
	return result
}

func (m *Matcher) match(index *Index, query string) Match {
	pos, score := index.Best(query)
	result := Match{Position: -1, Score: score}
	if score >= m.cfg.SimilarityThreshold {
		return accept(index, result, pos, MatchMethodTFIDF)
	}

	fuzzyPos, fuzzy := index.BestFuzzy(query)
	result.Fuzzy = fuzzy
	if fuzzy >= m.cfg.FuzzyThreshold {
		return accept(index, result, fuzzyPos, MatchMethodFuzzy)
	}
	return result
}

func accept(index *Index, result Match, pos int, method MatchMethod) Match {
	entry := index.Entry(pos)
	result.Entry = &entry
	result.Position = pos
	result.Accepted = true
	result.Method = method
	return result
}

// Entries returns the entries of the current index.
func (m *Matcher) Entries() []Entry {
	return m.current.Load().index.Entries()
}

// Len returns the size of the current index.
func (m *Matcher) Len() int {
	return m.current.Load().index.Len()
}
