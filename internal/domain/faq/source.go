package faq

import "context"

// EntrySource loads the static FAQ table the index is built from.
type EntrySource interface {
	Load(ctx context.Context) ([]Entry, error)
	Name() string
}
