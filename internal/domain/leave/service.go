package leave

import (
	"context"

	"github.com/staffsync/leave-backend-go/internal/domain/user"
)

// LeaveDetailResponse joins a record to its owner's employee profile for
// the single-leave view.
type LeaveDetailResponse struct {
	LeaveResponse
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department,omitempty"`
}

// Service covers creation, the admin lifecycle transitions, and the read
// views. Transitions take the acting user explicitly; the admin check is a
// precondition inside the service, not ambient session state.
type Service interface {
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetLeave(ctx context.Context, id string) (LeaveDetailResponse, error)
	ListMyLeaves(ctx context.Context, userID string) ([]LeaveResponse, error)
	ListLeaves(ctx context.Context, actor user.Actor, status Status) ([]LeaveResponse, error)

	Approve(ctx context.Context, actor user.Actor, id string) (LeaveResponse, error)
	Unapprove(ctx context.Context, actor user.Actor, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actor user.Actor, id string) (LeaveResponse, error)
	Unreject(ctx context.Context, actor user.Actor, id string) (LeaveResponse, error)
	Cancel(ctx context.Context, actor user.Actor, id string) (LeaveResponse, error)
	Uncancel(ctx context.Context, actor user.Actor, id string) (LeaveResponse, error)

	UpdateHRComments(ctx context.Context, actor user.Actor, req UpdateHRCommentsRequest) (LeaveResponse, error)
}
