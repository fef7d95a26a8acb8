package faqsource

import (
	"errors"

	"github.com/yanqian/hr-assistant/internal/domain/faq"
	apperrors "github.com/yanqian/hr-assistant/pkg/errors"
)

var errIncompleteRow = errors.New("question and answer are both required")

// buildEntry cleans one corpus row. ok is false for a row with no content at all.
func buildEntry(question, answer, category string) (entry faq.Entry, ok bool, err error) {
	entry = faq.Entry{
		Question: plainText(question),
		Answer:   plainAnswer(answer),
		Category: plainText(category),
	}
	if entry.Question == "" && entry.Answer == "" {
		return faq.Entry{}, false, nil
	}
	if entry.Question == "" || entry.Answer == "" {
		return faq.Entry{}, false, errIncompleteRow
	}
	return entry, true, nil
}

func corpusError(message string, err error) error {
	return apperrors.Wrap(apperrors.CodeCorpusError, message, err)
}
