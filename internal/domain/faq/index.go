package faq

// Index is the fitted TF-IDF matrix over the questions of an FAQ corpus.
// It is immutable once built and safe for concurrent reads.
type Index struct {
	entries    []Entry
	vectorizer *Vectorizer
	rows       []Vector
	terms      [][]string
}

// NewIndex fits a vectorizer on the entry questions and builds one row per entry.
func NewIndex(entries []Entry) (*Index, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCorpus
	}
	docs := make([]string, len(entries))
	for i, e := range entries {
		docs[i] = e.Question
	}
	vectorizer, err := FitVectorizer(docs)
	if err != nil {
		return nil, err
	}

	idx := &Index{
		entries:    append([]Entry(nil), entries...),
		vectorizer: vectorizer,
		rows:       make([]Vector, len(entries)),
		terms:      make([][]string, len(entries)),
	}
	for i, doc := range docs {
		idx.rows[i] = vectorizer.Transform(doc)
		idx.terms[i] = terms(doc)
	}
	return idx, nil
}

// Len returns the number of indexed entries.
func (i *Index) Len() int {
	return len(i.entries)
}

// Entries returns a copy of the indexed entries in corpus order.
func (i *Index) Entries() []Entry {
	return append([]Entry(nil), i.entries...)
}

// Entry returns the entry at pos.
func (i *Index) Entry(pos int) Entry {
	return i.entries[pos]
}

// Vocabulary returns the number of distinct terms in the index.
func (i *Index) Vocabulary() int {
	return i.vectorizer.Dimension()
}

// Similarities returns the cosine similarity of query against every row.
func (i *Index) Similarities(query string) []float64 {
	qv := i.vectorizer.Transform(query)
	scores := make([]float64, len(i.rows))
	if qv.IsZero() {
		return scores
	}
	for pos, row := range i.rows {
		scores[pos] = Cosine(qv, row)
	}
	return scores
}

// Best returns the position and similarity of the highest scoring row.
// Ties resolve to the earliest row.
func (i *Index) Best(query string) (int, float64) {
	return argmax(i.Similarities(query))
}

// BestFuzzy returns the position and token-set ratio of the closest question.
func (i *Index) BestFuzzy(query string) (int, float64) {
	qt := terms(query)
	scores := make([]float64, len(i.terms))
	if len(qt) > 0 {
		for pos, rowTerms := range i.terms {
			scores[pos] = tokenSetRatio(qt, rowTerms)
		}
	}
	return argmax(scores)
}

func argmax(scores []float64) (int, float64) {
	best := 0
	for pos := 1; pos < len(scores); pos++ {
		if scores[pos] > scores[best] {
			best = pos
		}
	}
	return best, scores[best]
}
