package employeerepo

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/yanqian/hr-assistant/internal/domain/employee"
)

var requiredColumns = []string{"employee_id", "name", "department", "role", "location", "paid_leaves", "sick_leaves"}

// MemoryRepository is an in-memory employee.Directory seeded from CSV.
type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]employee.Employee
}

// NewMemoryRepository constructs a directory holding employees.
func NewMemoryRepository(employees ...employee.Employee) *MemoryRepository {
	r := &MemoryRepository{byID: make(map[string]employee.Employee, len(employees))}
	for _, e := range employees {
		e.ID = employee.CanonicalID(e.ID)
		r.byID[e.ID] = e
	}
	return r
}

// LoadCSV reads the mock employee table at path.
func LoadCSV(path string) (*MemoryRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open employee csv: %w", err)
	}
	defer f.Close()
	employees, err := ParseCSV(f)
	if err != nil {
		return nil, err
	}
	return NewMemoryRepository(employees...), nil
}

// ParseCSV decodes the employee table; every column in requiredColumns must be present.
func ParseCSV(r io.Reader) ([]employee.Employee, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read employee csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("employee csv: missing %s column", name)
		}
	}

	var out []employee.Employee
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read employee csv: %w", err)
		}
		field := func(name string) string { return strings.TrimSpace(record[cols[name]]) }
		paid, err := strconv.Atoi(field("paid_leaves"))
		if err != nil {
			return nil, fmt.Errorf("employee csv line %d: paid_leaves: %w", line, err)
		}
		sick, err := strconv.Atoi(field("sick_leaves"))
		if err != nil {
			return nil, fmt.Errorf("employee csv line %d: sick_leaves: %w", line, err)
		}
		out = append(out, employee.Employee{
			ID:         employee.CanonicalID(field("employee_id")),
			Name:       field("name"),
			Department: field("department"),
			Role:       field("role"),
			Location:   field("location"),
			PaidLeaves: paid,
			SickLeaves: sick,
		})
	}
}

// Find implements employee.Directory.
func (r *MemoryRepository) Find(_ context.Context, id string) (employee.Employee, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[employee.CanonicalID(id)]
	return e, ok, nil
}

// Len returns the number of employees held.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

var _ employee.Directory = (*MemoryRepository)(nil)
