package convstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/hr-assistant/internal/domain/assistant"
)

// ValkeyStore persists conversations and trending counters in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "hrassist"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) GetConversation(ctx context.Context, id uuid.UUID) (assistant.Conversation, bool, error) {
	payload, err := s.client.Do(ctx, s.client.B().Get().Key(s.conversationKey(id)).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return assistant.Conversation{}, false, nil
		}
		return assistant.Conversation{}, false, err
	}
	var conv assistant.Conversation
	if err := json.Unmarshal([]byte(payload), &conv); err != nil {
		return assistant.Conversation{}, false, err
	}
	return conv, true, nil
}

func (s *ValkeyStore) SaveConversation(ctx context.Context, conv assistant.Conversation, ttl time.Duration) error {
	payload, err := json.Marshal(conv)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.conversationKey(conv.ID)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) IncrementQuery(ctx context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	if err := s.client.Do(ctx, s.client.B().Zincrby().Key(s.trendingKey()).Increment(1).Member(canonical).Build()).Error(); err != nil {
		return err
	}
	if display != "" {
		_ = s.client.Do(ctx, s.client.B().Set().Key(s.displayKey(canonical)).Value(display).Nx().Build()).Error()
	}
	return nil
}

func (s *ValkeyStore) TopQueries(ctx context.Context, limit int) ([]assistant.TrendingQuery, error) {
	if limit <= 0 {
		limit = 10
	}
	scores, err := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.trendingKey()).Start(0).Stop(int64(limit-1)).Withscores().Build()).AsZScores()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]assistant.TrendingQuery, 0, len(scores))
	for _, z := range scores {
		out = append(out, assistant.TrendingQuery{Query: s.fetchDisplay(ctx, z.Member), Count: int64(z.Score)})
	}
	return out, nil
}

func (s *ValkeyStore) fetchDisplay(ctx context.Context, canonical string) string {
	display, err := s.client.Do(ctx, s.client.B().Get().Key(s.displayKey(canonical)).Build()).ToString()
	if err != nil || display == "" {
		return canonical
	}
	return display
}

func (s *ValkeyStore) conversationKey(id uuid.UUID) string {
	return fmt.Sprintf("%s:conv:%s", s.prefix, id)
}

func (s *ValkeyStore) trendingKey() string {
	return fmt.Sprintf("%s:trending", s.prefix)
}

func (s *ValkeyStore) displayKey(canonical string) string {
	return fmt.Sprintf("%s:display:%s", s.prefix, canonical)
}

var _ assistant.Store = (*ValkeyStore)(nil)
