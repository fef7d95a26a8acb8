package assistant

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies which stage of the pipeline produced the answer.
type Source string

const (
	SourceFAQ      Source = "faq"
	SourceRule     Source = "rule"
	SourceFallback Source = "fallback"
)

// Intent is a rule-based action recognised from keywords.
type Intent string

const (
	IntentLeaveBalance    Intent = "leave_balance"
	IntentEmployeeDetails Intent = "employee_details"
	IntentPayslip         Intent = "payslip"
	IntentBankUpdate      Intent = "bank_update"
)

// Request is a single chat turn.
type Request struct {
	Question       string `json:"question"`
	ConversationID string `json:"conversationId,omitempty"`
}

// Response is returned to the HTTP transport.
type Response struct {
	ConversationID  string          `json:"conversationId"`
	Question        string          `json:"question"`
	Answer          string          `json:"answer"`
	Source          Source          `json:"source"`
	Intent          Intent          `json:"intent,omitempty"`
	Score           float64         `json:"score"`
	MatchedQuestion string          `json:"matchedQuestion,omitempty"`
	Category        string          `json:"category,omitempty"`
	EmployeeID      string          `json:"employeeId,omitempty"`
	PendingIntent   Intent          `json:"pendingIntent,omitempty"`
	Recommendations []TrendingQuery `json:"recommendations"`
}

// TrendingQuery represents a frequently asked question.
type TrendingQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

// Conversation is the one-turn follow-up memory kept between requests.
type Conversation struct {
	ID            uuid.UUID `json:"id"`
	PendingIntent Intent    `json:"pendingIntent,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
