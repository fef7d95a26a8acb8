package assistant

import (
	"strings"

	"github.com/yanqian/hr-assistant/internal/domain/faq"
)

type rule struct {
	intent Intent
	// every group needs at least one phrase present
	groups [][]string
}

// Evaluated in order; bank updates mention "details" and must win over the profile rule.
var rules = []rule{
	{intent: IntentBankUpdate, groups: [][]string{{"bank"}, {"update", "change", "updating", "changing"}}},
	{intent: IntentLeaveBalance, groups: [][]string{{"leave", "leaves", "leave balance"}}},
	{intent: IntentEmployeeDetails, groups: [][]string{{"details", "profile"}}},
	{intent: IntentPayslip, groups: [][]string{{"payslip", "payslips", "salary", "payroll"}}},
}

func detectIntent(query string) (Intent, bool) {
	padded := " " + faq.Normalize(query) + " "
	if strings.TrimSpace(padded) == "" {
		return "", false
	}
	for _, r := range rules {
		if r.matches(padded) {
			return r.intent, true
		}
	}
	return "", false
}

func (r rule) matches(padded string) bool {
	for _, group := range r.groups {
		if !containsAny(padded, group) {
			return false
		}
	}
	return true
}

func containsAny(padded string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(padded, " "+p+" ") {
			return true
		}
	}
	return false
}
