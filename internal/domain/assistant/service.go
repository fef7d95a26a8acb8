package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/yanqian/hr-assistant/internal/domain/employee"
	"github.com/yanqian/hr-assistant/internal/domain/faq"
	apperrors "github.com/yanqian/hr-assistant/pkg/errors"
	"github.com/yanqian/hr-assistant/pkg/util"
)

// Service answers HR questions.
type Service interface {
	Answer(ctx context.Context, req Request) (Response, error)
	Trending(ctx context.Context) ([]TrendingQuery, error)
}

// FAQMatcher looks up the closest FAQ entry for a query.
type FAQMatcher interface {
	Match(query string) faq.Match
}

type service struct {
	cfg       Config
	matcher   FAQMatcher
	directory employee.Directory
	store     Store
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires up the assistant pipeline.
func NewService(cfg Config, matcher FAQMatcher, directory employee.Directory, store Store, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg.withDefaults(),
		matcher:   matcher,
		directory: directory,
		store:     store,
		logger:    logger.With("component", "assistant.service"),
		now:       util.NowUTC,
	}
}

// Answer runs follow-up fulfilment, rules, the FAQ match and finally the fallback, in that order.
func (s *service) Answer(ctx context.Context, req Request) (Response, error) {
	question := strings.TrimSpace(req.Question)
	conv := s.loadConversation(ctx, req.ConversationID)

	resp := Response{
		ConversationID: conv.ID.String(),
		Question:       question,
	}
	if question == "" {
		resp.Answer = s.cfg.FallbackMessage
		resp.Source = SourceFallback
		resp.Recommendations = s.recommendations(ctx)
		return resp, nil
	}

	if n := utf8.RuneCountInString(question); n > s.cfg.MaxQuestionLength {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("question is %d characters, the limit is %d", n, s.cfg.MaxQuestionLength), nil)
	}

	pending := conv.PendingIntent
	if err := s.route(ctx, question, &conv, &resp); err != nil {
		return Response{}, err
	}
	resp.PendingIntent = conv.PendingIntent

	if conv.PendingIntent != "" || pending != conv.PendingIntent {
		conv.UpdatedAt = s.now()
		if err := s.store.SaveConversation(ctx, conv, s.cfg.ConversationTTL); err != nil {
			s.logger.Warn("conversation save failed", "conversation_id", conv.ID, "error", err)
		}
	}

	if err := s.store.IncrementQuery(ctx, faq.Normalize(question), question); err != nil {
		s.logger.Warn("trending increment failed", "error", err)
	}
	resp.Recommendations = s.recommendations(ctx)

	s.logger.Debug("question answered", "source", resp.Source, "intent", resp.Intent, "score", resp.Score)
	return resp, nil
}

func (s *service) Trending(ctx context.Context) ([]TrendingQuery, error) {
	recs, err := s.store.TopQueries(ctx, s.cfg.TopRecommendations)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeAssistantError, "failed to load trending queries", err)
	}
	return recs, nil
}

// recommendations never returns nil so clients always receive a list.
func (s *service) recommendations(ctx context.Context) []TrendingQuery {
	recs, err := s.store.TopQueries(ctx, s.cfg.TopRecommendations)
	if err != nil {
		s.logger.Warn("trending fetch failed", "error", err)
	}
	if recs == nil {
		recs = []TrendingQuery{}
	}
	return recs
}

func (s *service) route(ctx context.Context, question string, conv *Conversation, resp *Response) error {
	empID, hasID := employee.ExtractID(question)

	if hasID && conv.PendingIntent != "" {
		intent := conv.PendingIntent
		conv.PendingIntent = ""
		switch intent {
		case IntentLeaveBalance, IntentEmployeeDetails:
			return s.employeeReply(ctx, intent, empID, resp)
		}
	}

	if intent, ok := detectIntent(question); ok {
		resp.Source = SourceRule
		resp.Intent = intent
		resp.Score = 1
		switch intent {
		case IntentBankUpdate:
			conv.PendingIntent = ""
			resp.Answer = s.cfg.BankUpdateAnswer
		case IntentPayslip:
			conv.PendingIntent = ""
			resp.Answer = s.cfg.PayslipAnswer
		case IntentLeaveBalance, IntentEmployeeDetails:
			if hasID {
				conv.PendingIntent = ""
				return s.employeeReply(ctx, intent, empID, resp)
			}
			conv.PendingIntent = intent
			resp.Answer = s.promptFor(intent)
		}
		return nil
	}

	match := s.matcher.Match(question)
	if match.Accepted {
		conv.PendingIntent = ""
		resp.Source = SourceFAQ
		resp.Answer = match.Entry.Answer
		resp.Score = match.Confidence()
		resp.MatchedQuestion = match.Entry.Question
		resp.Category = match.Entry.Category
		return nil
	}

	resp.Source = SourceFallback
	resp.Answer = s.cfg.FallbackMessage
	resp.Score = match.Score
	return nil
}

func (s *service) employeeReply(ctx context.Context, intent Intent, empID string, resp *Response) error {
	resp.Source = SourceRule
	resp.Intent = intent
	resp.Score = 1
	resp.EmployeeID = empID

	emp, found, err := s.directory.Find(ctx, empID)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeAssistantError, "employee lookup failed", err)
	}
	switch {
	case !found:
		resp.Answer = employee.NotFound(empID)
	case intent == IntentLeaveBalance:
		resp.Answer = employee.LeaveBalance(emp)
	default:
		resp.Answer = employee.Details(emp)
	}
	return nil
}

func (s *service) promptFor(intent Intent) string {
	if intent == IntentLeaveBalance {
		return s.cfg.LeavePrompt
	}
	return s.cfg.DetailsPrompt
}

// loadConversation resolves the client supplied ID, minting a new one when it is missing or malformed.
func (s *service) loadConversation(ctx context.Context, raw string) Conversation {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Conversation{ID: uuid.New()}
	}
	conv, found, err := s.store.GetConversation(ctx, id)
	if err != nil {
		s.logger.Warn("conversation lookup failed", "conversation_id", id, "error", err)
		return Conversation{ID: id}
	}
	if !found {
		return Conversation{ID: id}
	}
	return conv
}
