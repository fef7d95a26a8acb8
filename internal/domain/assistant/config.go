package assistant

import "time"

const (
	DefaultFallbackMessage = "I couldn't find an exact answer. You can try:\n- `Check leaves for EMP10234`\n- `Show employee details EMP56789`\n- `How to download payslip?`"
	DefaultPayslipAnswer   = "You can download your payslip from **Payroll → Payslips → Select month → Download** in the portal."
	DefaultBankUpdate      = "To update bank details: Go to **Profile → Bank Details → Edit**, enter new account details and submit. Changes will be verified."
	DefaultLeavePrompt     = "Please provide your Employee ID to check leave balance. Example: `EMP10234`"
	DefaultDetailsPrompt   = "Please provide the Employee ID to fetch details. Example: `EMP56789`"
)

// DefaultMaxQuestionLength is the rune limit applied when none is configured.
const DefaultMaxQuestionLength = 500

// Config holds the canned replies and memory settings of the assistant.
type Config struct {
	FallbackMessage    string
	PayslipAnswer      string
	BankUpdateAnswer   string
	LeavePrompt        string
	DetailsPrompt      string
	ConversationTTL    time.Duration
	TopRecommendations int
	// MaxQuestionLength caps a question in runes.
	MaxQuestionLength  int
}

func (c Config) withDefaults() Config {
	if c.FallbackMessage == "" {
		c.FallbackMessage = DefaultFallbackMessage
	}
	if c.PayslipAnswer == "" {
		c.PayslipAnswer = DefaultPayslipAnswer
	}
	if c.BankUpdateAnswer == "" {
		c.BankUpdateAnswer = DefaultBankUpdate
	}
	if c.LeavePrompt == "" {
		c.LeavePrompt = DefaultLeavePrompt
	}
	if c.DetailsPrompt == "" {
		c.DetailsPrompt = DefaultDetailsPrompt
	}
	if c.ConversationTTL <= 0 {
		c.ConversationTTL = 30 * time.Minute
	}
	if c.MaxQuestionLength <= 0 {
		c.MaxQuestionLength = DefaultMaxQuestionLength
	}
	return c
}
