package employee

import (
	"context"
	"regexp"
	"strings"
)

var idPattern = regexp.MustCompile(`EMP\d+`)

// Employee is a read-only record of the mock HR directory.
type Employee struct {
	ID         string `json:"employeeId"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Location   string `json:"location"`
	PaidLeaves int    `json:"paidLeaves"`
	SickLeaves int    `json:"sickLeaves"`
}

// Directory looks up employees by ID.
type Directory interface {
	Find(ctx context.Context, id string) (Employee, bool, error)
}

// CanonicalID upper-cases and trims an employee ID.
func CanonicalID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// ExtractID returns the first EMP<digits> token found in text, upper-cased.
func ExtractID(text string) (string, bool) {
	id := idPattern.FindString(strings.ToUpper(text))
	return id, id != ""
}
