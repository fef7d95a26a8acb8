package convstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/hr-assistant/internal/domain/assistant"
	"github.com/yanqian/hr-assistant/pkg/util"
)

type conversationRecord struct {
	payload   assistant.Conversation
	expiresAt time.Time
}

// MemoryStore is an in-memory assistant.Store for single-instance deployments and tests.
type MemoryStore struct {
	mu            sync.RWMutex
	conversations map[uuid.UUID]conversationRecord
	trending      map[string]int64
	displays      map[string]string
	now           func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		conversations: make(map[uuid.UUID]conversationRecord),
		trending:      make(map[string]int64),
		displays:      make(map[string]string),
		now:           util.NowUTC,
	}
}

// GetConversation implements assistant.Store.
func (s *MemoryStore) GetConversation(_ context.Context, id uuid.UUID) (assistant.Conversation, bool, error) {
	s.mu.RLock()
	record, ok := s.conversations[id]
	s.mu.RUnlock()
	if !ok {
		return assistant.Conversation{}, false, nil
	}
	if util.Expired(record.expiresAt, s.now()) {
		s.mu.Lock()
		delete(s.conversations, id)
		s.mu.Unlock()
		return assistant.Conversation{}, false, nil
	}
	return record.payload, true, nil
}

// SaveConversation stores conv with an optional TTL and sweeps expired conversations.
func (s *MemoryStore) SaveConversation(_ context.Context, conv assistant.Conversation, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	var exp time.Time
	if ttl > 0 {
		exp = now.Add(ttl)
	}
	s.conversations[conv.ID] = conversationRecord{payload: conv, expiresAt: exp}
	for id, record := range s.conversations {
		if util.Expired(record.expiresAt, now) {
			delete(s.conversations, id)
		}
	}
	return nil
}

// IncrementQuery bumps the counter for a canonical query and records a display string.
func (s *MemoryStore) IncrementQuery(_ context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trending[canonical]++
	if _, exists := s.displays[canonical]; !exists {
		s.displays[canonical] = display
	}
	return nil
}

// TopQueries returns the most frequent canonical questions.
func (s *MemoryStore) TopQueries(_ context.Context, limit int) ([]assistant.TrendingQuery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.trending)
	}
	items := make([]assistant.TrendingQuery, 0, len(s.trending))
	for canonical, count := range s.trending {
		display := s.displays[canonical]
		if display == "" {
			display = canonical
		}
		items = append(items, assistant.TrendingQuery{Query: display, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Query < items[j].Query
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ assistant.Store = (*MemoryStore)(nil)
