package employee

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractID(t *testing.T) {
	cases := []struct {
		in string
		id string
		ok bool
	}{
		{in: "Check leaves for EMP10234", id: "EMP10234", ok: true},
		{in: "emp56789 details please", id: "EMP56789", ok: true},
		{in: "EMP", ok: false},
		{in: "10234", ok: false},
		{in: "", ok: false},
	}
	for _, tc := range cases {
		id, ok := ExtractID(tc.in)
		require.Equal(t, tc.ok, ok, tc.in)
		require.Equal(t, tc.id, id, tc.in)
	}
}

func TestFormatting(t *testing.T) {
	e := Employee{ID: "EMP10234", Name: "Asha Rao", Department: "Finance", Role: "Analyst", Location: "Pune", PaidLeaves: 12, SickLeaves: 4}

	balance := LeaveBalance(e)
	require.True(t, strings.HasPrefix(balance, "### Leave Balance for Asha Rao (EMP10234)"))
	require.Contains(t, balance, "- **Paid Leaves:** 12")
	require.Contains(t, balance, "- **Sick Leaves:** 4")
	require.NotContains(t, balance, "Role")

	details := Details(e)
	require.Contains(t, details, "- **Role:** Analyst")
	require.Contains(t, details, "- **Location:** Pune")

	require.Equal(t, "Employee ID **EMP99999** not found.", NotFound(" emp99999 "))
}
