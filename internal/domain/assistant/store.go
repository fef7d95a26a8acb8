package assistant

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store persists follow-up memory and query counters.
type Store interface {
	GetConversation(ctx context.Context, id uuid.UUID) (Conversation, bool, error)
	SaveConversation(ctx context.Context, conv Conversation, ttl time.Duration) error
	IncrementQuery(ctx context.Context, canonical, display string) error
	TopQueries(ctx context.Context, limit int) ([]TrendingQuery, error)
}
