package leave

import (
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// AllStatuses lists every lifecycle status, in the order reports show them.
var AllStatuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusCancelled}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Type maps to the leave_type_enum in DB
type Type string

const (
	TypeSick      Type = "sick"
	TypeCasual    Type = "casual"
	TypeEmergency Type = "emergency"
	TypeStudy     Type = "study"
)

// AllTypes lists every leave category, in display order.
var AllTypes = []Type{TypeSick, TypeCasual, TypeEmergency, TypeStudy}

func (t Type) Valid() bool {
	switch t {
	case TypeSick, TypeCasual, TypeEmergency, TypeStudy:
		return true
	}
	return false
}

// DisplayName returns the human-readable label used in organizational
// type distributions.
func (t Type) DisplayName() string {
	switch t {
	case TypeSick:
		return "Sick Leave"
	case TypeCasual:
		return "Casual Leave"
	case TypeEmergency:
		return "Emergency Leave"
	case TypeStudy:
		return "Study Leave"
	}
	return string(t)
}

// Leave entity. Status is the single source of lifecycle truth; boolean
// views are derived, never stored.
type Leave struct {
	ID     string
	UserID string

	StartDate time.Time
	EndDate   time.Time

	Type   Type
	Reason string

	// DefaultDays snapshots the allowance policy at creation time and is
	// not recomputed afterwards.
	DefaultDays int

	HRComments *string

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Days returns the span length in days, end minus start. At least 1 for
// any record that passed creation validation.
func (l Leave) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours() / 24)
}

// InclusiveDays counts both boundary dates, so it is Days() + 1. This is
// the figure charged against the allowance.
func (l Leave) InclusiveDays() int {
	return l.Days() + 1
}

func (l Leave) IsApproved() bool {
	return l.Status == StatusApproved
}

func (l Leave) IsRejected() bool {
	return l.Status == StatusRejected
}

// ValidateDateRange enforces the creation-time date rules: neither date may
// precede today, and the leave must span at least one day (start strictly
// before end). Views of existing records never re-validate.
func ValidateDateRange(startDate, endDate, today time.Time) error {
	if startDate.Before(today) || endDate.Before(today) {
		return ErrInvalidDateRange
	}
	if !startDate.Before(endDate) {
		return ErrInvalidDateRange
	}
	return nil
}
