package faq

import (
	"math"
	"sort"
)

// Vector is an L2-normalised sparse TF-IDF vector with ascending term indices.
type Vector struct {
	indices []int
	weights []float64
}

// IsZero reports whether the vector has no non-zero component.
func (v Vector) IsZero() bool {
	return len(v.indices) == 0
}

const cosineEpsilon = 1e-12

// Cosine returns the cosine similarity of two normalised vectors, clamped to [0, 1].
func Cosine(a, b Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.indices) && j < len(b.indices) {
		switch {
		case a.indices[i] == b.indices[j]:
			sum += a.weights[i] * b.weights[j]
			i++
			j++
		case a.indices[i] < b.indices[j]:
			i++
		default:
			j++
		}
	}
	// rounding can leave an identical pair a few ulps short of 1
	if sum >= 1-cosineEpsilon {
		return 1
	}
	if sum < 0 {
		return 0
	}
	return sum
}

// Vectorizer maps text onto a fixed TF-IDF vocabulary learned from a corpus.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// FitVectorizer learns the vocabulary and smoothed IDF weights of docs.
func FitVectorizer(docs []string) (*Vectorizer, error) {
	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range terms(doc) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}
	if len(df) == 0 {
		return nil, ErrEmptyVocabulary
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	n := float64(len(docs))
	v := &Vectorizer{
		vocabulary: make(map[string]int, len(vocab)),
		idf:        make([]float64, len(vocab)),
	}
	for i, term := range vocab {
		v.vocabulary[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v, nil
}

// Dimension is the vocabulary size.
func (v *Vectorizer) Dimension() int {
	return len(v.idf)
}

// Transform vectorises text; terms outside the vocabulary are ignored.
func (v *Vectorizer) Transform(text string) Vector {
	counts := make(map[int]int)
	for _, term := range terms(text) {
		if idx, ok := v.vocabulary[term]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return Vector{}
	}

	indices := make([]int, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	weights := make([]float64, len(indices))
	var norm float64
	for i, idx := range indices {
		w := float64(counts[idx]) * v.idf[idx]
		weights[i] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for i := range weights {
		weights[i] /= norm
	}
	return Vector{indices: indices, weights: weights}
}
