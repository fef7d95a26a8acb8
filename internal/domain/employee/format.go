package employee

import (
	"fmt"
	"strings"
)

// NotFound is the reply used when a directory lookup misses.
func NotFound(id string) string {
	return fmt.Sprintf("Employee ID **%s** not found.", CanonicalID(id))
}

// LeaveBalance renders the leave balance block for e.
func LeaveBalance(e Employee) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### Leave Balance for %s (%s)\n", e.Name, e.ID)
	fmt.Fprintf(&b, "- **Paid Leaves:** %d\n", e.PaidLeaves)
	fmt.Fprintf(&b, "- **Sick Leaves:** %d\n", e.SickLeaves)
	fmt.Fprintf(&b, "- **Department:** %s", e.Department)
	return b.String()
}

// Details renders the full profile block for e.
func Details(e Employee) string {
	var b strings.Builder
	b.WriteString("### Employee Details\n")
	fmt.Fprintf(&b, "- **Name:** %s\n", e.Name)
	fmt.Fprintf(&b, "- **Employee ID:** %s\n", e.ID)
	fmt.Fprintf(&b, "- **Department:** %s\n", e.Department)
	fmt.Fprintf(&b, "- **Role:** %s\n", e.Role)
	fmt.Fprintf(&b, "- **Location:** %s\n", e.Location)
	fmt.Fprintf(&b, "- **Paid Leaves:** %d\n", e.PaidLeaves)
	fmt.Fprintf(&b, "- **Sick Leaves:** %d", e.SickLeaves)
	return b.String()
}
