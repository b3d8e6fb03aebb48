package employee

import "context"

// Repository - read-only interface over the employees and departments
// tables owned by the profile subsystem.
type Repository interface {
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	ListAll(ctx context.Context) ([]Employee, error)
	ListDepartments(ctx context.Context) ([]Department, error)
}
