package assistant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectIntent(t *testing.T) {
	cases := []struct {
		query  string
		intent Intent
		ok     bool
	}{
		{query: "what is my leave balance", intent: IntentLeaveBalance, ok: true},
		{query: "How many leaves do I have?", intent: IntentLeaveBalance, ok: true},
		{query: "Check leaves for EMP10234", intent: IntentLeaveBalance, ok: true},
		{query: "Show details for EMP90877", intent: IntentEmployeeDetails, ok: true},
		{query: "open my profile", intent: IntentEmployeeDetails, ok: true},
		{query: "How to update bank details?", intent: IntentBankUpdate, ok: true},
		{query: "I want to change my bank account", intent: IntentBankUpdate, ok: true},
		{query: "Where is my payslip?", intent: IntentPayslip, ok: true},
		{query: "salary credit date", intent: IntentPayslip, ok: true},
		{query: "which bank branch is closest", ok: false},
		{query: "cleaver sharpening", ok: false},
		{query: "What is HRA?", ok: false},
		{query: "", ok: false},
	}
	for _, tc := range cases {
		intent, ok := detectIntent(tc.query)
		require.Equal(t, tc.ok, ok, tc.query)
		require.Equal(t, tc.intent, intent, tc.query)
	}
}
