package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/hr-assistant/internal/domain/employee"
	"github.com/yanqian/hr-assistant/internal/domain/faq"
	apperrors "github.com/yanqian/hr-assistant/pkg/errors"
)

func TestAnswerIdenticalFAQQuestion(t *testing.T) {
	svc, _ := newServiceUnderTest(t)

	resp, err := svc.Answer(context.Background(), Request{Question: "How do I claim travel reimbursement?"})
	require.NoError(t, err)
	require.Equal(t, SourceFAQ, resp.Source)
	require.Equal(t, "Submit the claim under Expenses with receipts.", resp.Answer)
	require.Equal(t, "How do I claim travel reimbursement?", resp.MatchedQuestion)
	require.Equal(t, "expenses", resp.Category)
	require.InDelta(t, 1.0, resp.Score, 1e-9)
	_, err = uuid.Parse(resp.ConversationID)
	require.NoError(t, err)
}

func TestAnswerFallbackForEmptyAndNonsense(t *testing.T) {
	svc, store := newServiceUnderTest(t)

	for _, q := range []string{"", "   ", "xyzzy plugh frobnicate"} {
		resp, err := svc.Answer(context.Background(), Request{Question: q})
		require.NoError(t, err, q)
		require.Equal(t, SourceFallback, resp.Source, q)
		require.Equal(t, DefaultFallbackMessage, resp.Answer, q)
		require.NotEmpty(t, resp.ConversationID, q)
	}
	require.Equal(t, int64(1), store.counts["xyzzy plugh frobnicate"])
	require.NotContains(t, store.counts, "")
}

func TestAnswerRuleWinsOverIdenticalFAQ(t *testing.T) {
	svc, _ := newServiceUnderTest(t)

	// the corpus holds this exact question, the rule must still take it
	resp, err := svc.Answer(context.Background(), Request{Question: "What is my leave balance?"})
	require.NoError(t, err)
	require.Equal(t, SourceRule, resp.Source)
	require.Equal(t, IntentLeaveBalance, resp.Intent)
	require.Equal(t, DefaultLeavePrompt, resp.Answer)
	require.Equal(t, IntentLeaveBalance, resp.PendingIntent)
}

func TestAnswerFollowUpFulfilsPendingIntent(t *testing.T) {
	svc, store := newServiceUnderTest(t)
	ctx := context.Background()

	first, err := svc.Answer(ctx, Request{Question: "How many leaves do I have?"})
	require.NoError(t, err)
	require.Equal(t, DefaultLeavePrompt, first.Answer)

	id := uuid.MustParse(first.ConversationID)
	require.Equal(t, IntentLeaveBalance, store.conversations[id].PendingIntent)

	second, err := svc.Answer(ctx, Request{Question: "EMP10234", ConversationID: first.ConversationID})
	require.NoError(t, err)
	require.Equal(t, SourceRule, second.Source)
	require.Equal(t, IntentLeaveBalance, second.Intent)
	require.Equal(t, "EMP10234", second.EmployeeID)
	require.Contains(t, second.Answer, "Leave Balance for Asha Rao (EMP10234)")
	require.Empty(t, second.PendingIntent)
	require.Empty(t, store.conversations[id].PendingIntent)

	// the intent is consumed, a bare ID now falls through to the fallback
	third, err := svc.Answer(ctx, Request{Question: "EMP10234", ConversationID: first.ConversationID})
	require.NoError(t, err)
	require.Equal(t, SourceFallback, third.Source)
}

func TestAnswerDetailsFollowUp(t *testing.T) {
	svc, _ := newServiceUnderTest(t)
	ctx := context.Background()

	first, err := svc.Answer(ctx, Request{Question: "show employee details"})
	require.NoError(t, err)
	require.Equal(t, DefaultDetailsPrompt, first.Answer)

	second, err := svc.Answer(ctx, Request{Question: "it is emp56789", ConversationID: first.ConversationID})
	require.NoError(t, err)
	require.Equal(t, IntentEmployeeDetails, second.Intent)
	require.Contains(t, second.Answer, "- **Role:** Engineer")
}

func TestAnswerRuleWithInlineEmployeeID(t *testing.T) {
	svc, _ := newServiceUnderTest(t)

	resp, err := svc.Answer(context.Background(), Request{Question: "Show details for EMP90877"})
	require.NoError(t, err)
	require.Equal(t, IntentEmployeeDetails, resp.Intent)
	require.Equal(t, "Employee ID **EMP90877** not found.", resp.Answer)

	resp, err = svc.Answer(context.Background(), Request{Question: "Check leaves for EMP10234"})
	require.NoError(t, err)
	require.Contains(t, resp.Answer, "- **Paid Leaves:** 12")
}

func TestAnswerStaticRules(t *testing.T) {
	svc, _ := newServiceUnderTest(t)

	resp, err := svc.Answer(context.Background(), Request{Question: "How to update bank details?"})
	require.NoError(t, err)
	require.Equal(t, IntentBankUpdate, resp.Intent)
	require.Equal(t, DefaultBankUpdate, resp.Answer)

	resp, err = svc.Answer(context.Background(), Request{Question: "download payslip"})
	require.NoError(t, err)
	require.Equal(t, IntentPayslip, resp.Intent)
	require.Equal(t, DefaultPayslipAnswer, resp.Answer)
}

func TestAnswerStaticRuleClearsPendingIntent(t *testing.T) {
	svc, store := newServiceUnderTest(t)
	ctx := context.Background()

	first, err := svc.Answer(ctx, Request{Question: "leave balance"})
	require.NoError(t, err)
	_, err = svc.Answer(ctx, Request{Question: "where is my payslip", ConversationID: first.ConversationID})
	require.NoError(t, err)
	require.Empty(t, store.conversations[uuid.MustParse(first.ConversationID)].PendingIntent)
}

func TestAnswerDirectoryFailure(t *testing.T) {
	svc, _ := newServiceUnderTest(t)
	svc.directory = &stubDirectory{err: errors.New("connection reset")}

	_, err := svc.Answer(context.Background(), Request{Question: "leaves for EMP10234"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeAssistantError))
}

func TestAnswerSurvivesStoreFailures(t *testing.T) {
	svc, store := newServiceUnderTest(t)
	store.err = errors.New("valkey down")
	id := uuid.New()

	resp, err := svc.Answer(context.Background(), Request{Question: "What is HRA?", ConversationID: id.String()})
	require.NoError(t, err)
	require.Equal(t, SourceFAQ, resp.Source)
	require.Equal(t, id.String(), resp.ConversationID)
	require.NotNil(t, resp.Recommendations)
	require.Empty(t, resp.Recommendations)
}

func TestAnswerEmptyQuestionStillListsRecommendations(t *testing.T) {
	svc, _ := newServiceUnderTest(t)
	ctx := context.Background()

	resp, err := svc.Answer(ctx, Request{Question: ""})
	require.NoError(t, err)
	require.NotNil(t, resp.Recommendations)
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"recommendations":[]`)

	_, err = svc.Answer(ctx, Request{Question: "What is HRA?"})
	require.NoError(t, err)
	resp, err = svc.Answer(ctx, Request{Question: "  "})
	require.NoError(t, err)
	require.Equal(t, []TrendingQuery{{Query: "What is HRA?", Count: 1}}, resp.Recommendations)
}

func TestAnswerReplacesMalformedConversationID(t *testing.T) {
	svc, _ := newServiceUnderTest(t)

	resp, err := svc.Answer(context.Background(), Request{Question: "What is HRA?", ConversationID: "not-a-uuid"})
	require.NoError(t, err)
	require.NotEqual(t, "not-a-uuid", resp.ConversationID)
	_, err = uuid.Parse(resp.ConversationID)
	require.NoError(t, err)
}

func TestAnswerReturnsRecommendations(t *testing.T) {
	svc, _ := newServiceUnderTest(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Answer(ctx, Request{Question: "What is HRA?"})
		require.NoError(t, err)
	}
	resp, err := svc.Answer(ctx, Request{Question: "notice period?"})
	require.NoError(t, err)
	require.Equal(t, []TrendingQuery{
		{Query: "What is HRA?", Count: 2},
		{Query: "notice period?", Count: 1},
	}, resp.Recommendations)

	trending, err := svc.Trending(ctx)
	require.NoError(t, err)
	require.Len(t, trending, 2)
}

func newServiceUnderTest(t *testing.T) (*service, *stubStore) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	matcher, err := faq.NewMatcher(faq.Config{}, []faq.Entry{
		{Question: "What is HRA?", Answer: "House Rent Allowance is part of your CTC.", Category: "compensation"},
		{Question: "How do I claim travel reimbursement?", Answer: "Submit the claim under Expenses with receipts.", Category: "expenses"},
		{Question: "What is the notice period for resignation?", Answer: "The notice period is 60 days.", Category: "policy"},
		{Question: "What is my leave balance?", Answer: "Check the leave tab.", Category: "leave"},
	}, logger)
	require.NoError(t, err)

	store := newStubStore()
	directory := &stubDirectory{employees: map[string]employee.Employee{
		"EMP10234": {ID: "EMP10234", Name: "Asha Rao", Department: "Finance", Role: "Analyst", Location: "Pune", PaidLeaves: 12, SickLeaves: 4},
		"EMP56789": {ID: "EMP56789", Name: "Vikram Shah", Department: "Platform", Role: "Engineer", Location: "Bengaluru", PaidLeaves: 8, SickLeaves: 6},
	}}
	svc := NewService(Config{TopRecommendations: 5}, matcher, directory, store, logger).(*service)
	svc.now = func() time.Time { return time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC) }
	return svc, store
}

type stubDirectory struct {
	employees map[string]employee.Employee
	err       error
}

func (d *stubDirectory) Find(_ context.Context, id string) (employee.Employee, bool, error) {
	if d.err != nil {
		return employee.Employee{}, false, d.err
	}
	e, ok := d.employees[employee.CanonicalID(id)]
	return e, ok, nil
}

type stubStore struct {
	mu            sync.Mutex
	conversations map[uuid.UUID]Conversation
	counts        map[string]int64
	displays      map[string]string
	err           error
}

func newStubStore() *stubStore {
	return &stubStore{
		conversations: make(map[uuid.UUID]Conversation),
		counts:        make(map[string]int64),
		displays:      make(map[string]string),
	}
}

func (s *stubStore) GetConversation(_ context.Context, id uuid.UUID) (Conversation, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return Conversation{}, false, s.err
	}
	conv, ok := s.conversations[id]
	return conv, ok, nil
}

func (s *stubStore) SaveConversation(_ context.Context, conv Conversation, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.conversations[conv.ID] = conv
	return nil
}

func (s *stubStore) IncrementQuery(_ context.Context, canonical, display string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.counts[canonical]++
	if _, ok := s.displays[canonical]; !ok {
		s.displays[canonical] = display
	}
	return nil
}

func (s *stubStore) TopQueries(_ context.Context, limit int) ([]TrendingQuery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]TrendingQuery, 0, len(s.counts))
	for canonical, count := range s.counts {
		out = append(out, TrendingQuery{Query: s.displays[canonical], Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Query < out[j].Query
		}
		return out[i].Count > out[j].Count
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestAnswerRejectsOverlongQuestion(t *testing.T) {
	svc, store := newServiceUnderTest(t)
	svc.cfg.MaxQuestionLength = 10

	_, err := svc.Answer(context.Background(), Request{Question: "What is the notice period?"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
	require.Empty(t, store.counts)

	resp, err := svc.Answer(context.Background(), Request{Question: "  HRA?     "})
	require.NoError(t, err)
	require.Equal(t, "HRA?", resp.Question)
}
