package leave

import (
	"time"

	"github.com/staffsync/leave-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	UserID    string `json:"-"`
	StartDate string `json:"startdate"`
	EndDate   string `json:"enddate"`
	LeaveType string `json:"leavetype"`
	Reason    string `json:"reason,omitempty"`
}

// Validate checks field shape only; the calendar rules (no past dates,
// start before end) are applied by the service against its notion of today.
func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "startdate",
			Message: "startdate is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "startdate",
			Message: "startdate must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "enddate",
			Message: "enddate is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "enddate",
			Message: "enddate must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leavetype",
			Message: "leavetype is required",
		})
	} else if !Type(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leavetype",
			Message: "leavetype must be one of sick, casual, emergency, study",
		})
	}

	if len(r.Reason) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Dates returns the parsed date range. Call after Validate.
func (r *CreateLeaveRequest) Dates() (startDate, endDate time.Time, err error) {
	startDate, err = time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDate, err = time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return startDate, endDate, nil
}

type UpdateHRCommentsRequest struct {
	ID         string `json:"-"`
	HRComments string `json:"hrcomments"`
}

func (r *UpdateHRCommentsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "leave id is required",
		})
	}
	if len(r.HRComments) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "hrcomments",
			Message: "hrcomments must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LeaveResponse is the wire shape of a single record, with the derived day
// counts included so callers never redo the arithmetic.
type LeaveResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	StartDate     string  `json:"startdate"`
	EndDate       string  `json:"enddate"`
	LeaveType     string  `json:"leavetype"`
	LeaveTypeName string  `json:"leavetype_name"`
	Reason        string  `json:"reason,omitempty"`
	DefaultDays   int     `json:"defaultdays"`
	HRComments    *string `json:"hrcomments,omitempty"`
	Status        string  `json:"status"`
	IsApproved    bool    `json:"is_approved"`
	IsRejected    bool    `json:"is_rejected"`
	LeaveDays     int     `json:"leave_days"`
	InclusiveDays int     `json:"inclusive_days"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func NewLeaveResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:            l.ID,
		UserID:        l.UserID,
		StartDate:     l.StartDate.Format("2006-01-02"),
		EndDate:       l.EndDate.Format("2006-01-02"),
		LeaveType:     string(l.Type),
		LeaveTypeName: l.Type.DisplayName(),
		Reason:        l.Reason,
		DefaultDays:   l.DefaultDays,
		HRComments:    l.HRComments,
		Status:        string(l.Status),
		IsApproved:    l.IsApproved(),
		IsRejected:    l.IsRejected(),
		LeaveDays:     l.Days(),
		InclusiveDays: l.InclusiveDays(),
		CreatedAt:     l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     l.UpdatedAt.Format(time.RFC3339),
	}
}

func NewLeaveResponses(leaves []Leave) []LeaveResponse {
	responses := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, NewLeaveResponse(l))
	}
	return responses
}
