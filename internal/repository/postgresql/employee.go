package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffsync/leave-backend-go/internal/domain/employee"
	"github.com/staffsync/leave-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.first_name, e.last_name, e.department_id,
			   e.created_at, e.updated_at, d.name
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE e.user_id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, userID).Scan(
		&emp.ID,
		&emp.UserID,
		&emp.FirstName,
		&emp.LastName,
		&emp.DepartmentID,
		&emp.CreatedAt,
		&emp.UpdatedAt,
		&emp.DepartmentName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrProfileNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) ListAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.first_name, e.last_name, e.department_id,
			   e.created_at, e.updated_at, d.name
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		ORDER BY e.last_name, e.first_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID,
			&emp.UserID,
			&emp.FirstName,
			&emp.LastName,
			&emp.DepartmentID,
			&emp.CreatedAt,
			&emp.UpdatedAt,
			&emp.DepartmentName,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) ListDepartments(ctx context.Context) ([]employee.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name
		FROM departments d
		ORDER BY d.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var departments []employee.Department
	for rows.Next() {
		var d employee.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}
