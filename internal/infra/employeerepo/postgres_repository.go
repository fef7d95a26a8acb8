package employeerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/hr-assistant/internal/domain/employee"
)

// PostgresRepository implements employee.Directory using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Find fetches an employee by canonical ID.
func (r *PostgresRepository) Find(ctx context.Context, id string) (employee.Employee, bool, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT employee_id, name, department, role, location, paid_leaves, sick_leaves
		FROM employees
		WHERE employee_id = $1
	`, employee.CanonicalID(id))
	var e employee.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Department, &e.Role, &e.Location, &e.PaidLeaves, &e.SickLeaves)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, false, nil
	}
	if err != nil {
		return employee.Employee{}, false, err
	}
	return e, true, nil
}

var _ employee.Directory = (*PostgresRepository)(nil)
