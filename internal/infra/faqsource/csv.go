package faqsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yanqian/hr-assistant/internal/domain/faq"
)

// FileSource reads the FAQ table from a CSV file with question, answer and optional category columns.
type FileSource struct {
	path string
}

// NewFileSource constructs a source for the CSV at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name implements faq.EntrySource.
func (s *FileSource) Name() string {
	return "file:" + s.path
}

// Path returns the CSV location.
func (s *FileSource) Path() string {
	return s.path
}

// Load implements faq.EntrySource.
func (s *FileSource) Load(_ context.Context) ([]faq.Entry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, corpusError("open faq csv", err)
	}
	defer f.Close()
	entries, err := ParseCSV(f)
	if err != nil {
		return nil, corpusError("parse "+s.path, err)
	}
	return entries, nil
}

// ParseCSV decodes FAQ rows. The header is matched case-insensitively; blank rows are skipped.
func ParseCSV(r io.Reader) ([]faq.Entry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, faq.ErrEmptyCorpus
		}
		return nil, fmt.Errorf("read faq csv header: %w", err)
	}
	cols := columnIndex(header)
	qCol, ok := cols["question"]
	if !ok {
		return nil, errors.New("faq csv: missing question column")
	}
	aCol, ok := cols["answer"]
	if !ok {
		return nil, errors.New("faq csv: missing answer column")
	}
	cCol, hasCategory := cols["category"]

	var entries []faq.Entry
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read faq csv: %w", err)
		}
		category := ""
		if hasCategory {
			category = record[cCol]
		}
		entry, ok, err := buildEntry(record[qCol], record[aCol], category)
		if err != nil {
			return nil, fmt.Errorf("faq csv line %d: %w", line, err)
		}
		if ok {
			entries = append(entries, entry)
		}
	}
	if len(entries) == 0 {
		return nil, faq.ErrEmptyCorpus
	}
	return entries, nil
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := cols[key]; !dup {
			cols[key] = i
		}
	}
	return cols
}

var _ faq.EntrySource = (*FileSource)(nil)
