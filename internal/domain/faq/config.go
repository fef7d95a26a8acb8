package faq

const (
	defaultSimilarityThreshold = 0.45
	defaultFuzzyThreshold      = 0.75
	defaultCacheSize           = 256
)

// Config holds runtime knobs for FAQ matching.
type Config struct {
	SimilarityThreshold float64
	FuzzyThreshold      float64
	CacheSize           int
}

func (c Config) withDefaults() Config {
	if c.SimilarityThreshold <= 0 {
		c.SimilarityThreshold = defaultSimilarityThreshold
	}
	if c.FuzzyThreshold <= 0 {
		c.FuzzyThreshold = defaultFuzzyThreshold
	}
	if c.CacheSize <= 0 {
		c.CacheSize = defaultCacheSize
	}
	return c
}
