package faqsource

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/hr-assistant/internal/domain/faq"
)

// PostgresSource reads the FAQ table from the faq_entries table.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource constructs the source.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Name implements faq.EntrySource.
func (s *PostgresSource) Name() string {
	return "postgres:faq_entries"
}

// Load implements faq.EntrySource. Rows keep their id order.
func (s *PostgresSource) Load(ctx context.Context) ([]faq.Entry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT question, answer, COALESCE(category, '')
		FROM faq_entries
		ORDER BY id
	`)
	if err != nil {
		return nil, corpusError("query faq entries", err)
	}
	defer rows.Close()

	var entries []faq.Entry
	for row := 1; rows.Next(); row++ {
		var question, answer, category string
		if err := rows.Scan(&question, &answer, &category); err != nil {
			return nil, corpusError("scan faq entry", err)
		}
		entry, ok, err := buildEntry(question, answer, category)
		if err != nil {
			return nil, corpusError(fmt.Sprintf("faq_entries row %d", row), err)
		}
		if ok {
			entries = append(entries, entry)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, corpusError("read faq entries", err)
	}
	if len(entries) == 0 {
		return nil, corpusError("faq_entries", faq.ErrEmptyCorpus)
	}
	return entries, nil
}

var _ faq.EntrySource = (*PostgresSource)(nil)
