package employee

import "time"

// Department entity, consumed read-only for organizational grouping.
type Department struct {
	ID   string
	Name string
}

// Employee entity, consumed read-only. Profile lifecycle belongs to the
// profile-management subsystem; this service only joins leave records to
// the owning profile and its department.
type Employee struct {
	ID           string
	UserID       string
	FirstName    string
	LastName     string
	DepartmentID *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationship (for responses)
	DepartmentName *string
}

func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
