package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffsync/leave-backend-go/internal/domain/employee"
	"github.com/staffsync/leave-backend-go/internal/domain/leave"
	"github.com/staffsync/leave-backend-go/internal/domain/user"
	"github.com/staffsync/leave-backend-go/internal/pkg/database"
	"github.com/staffsync/leave-backend-go/internal/repository/postgresql"
)

// LifecycleService implements leave.Service: creation plus the six
// admin transitions, each a single read-modify-write on the store.
type LifecycleService struct {
	leaveRepo    leave.Repository
	employeeRepo employee.Repository

	// defaultAllowance is snapshotted onto each record at creation.
	defaultAllowance int

	now func() time.Time

	// inTx runs fn with a transaction carried on the context, so the
	// repository calls inside a transition share one atomic write set.
	inTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewLifecycleService(db *database.DB, leaveRepo leave.Repository, employeeRepo employee.Repository, defaultAllowance int) *LifecycleService {
	return &LifecycleService{
		leaveRepo:        leaveRepo,
		employeeRepo:     employeeRepo,
		defaultAllowance: defaultAllowance,
		now:              time.Now,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
				return fn(postgresql.WithTx(ctx, tx))
			})
		},
	}
}

func (s *LifecycleService) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, endDate, err := req.Dates()
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse dates: %w", err)
	}

	if err := leave.ValidateDateRange(startDate, endDate, s.today()); err != nil {
		return leave.LeaveResponse{}, err
	}

	now := s.now()
	record := leave.Leave{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		StartDate:   startDate,
		EndDate:     endDate,
		Type:        leave.Type(req.LeaveType),
		Reason:      req.Reason,
		DefaultDays: s.defaultAllowance,
		Status:      leave.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.leaveRepo.Create(ctx, record)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.NewLeaveResponse(created), nil
}

func (s *LifecycleService) GetLeave(ctx context.Context, id string) (leave.LeaveDetailResponse, error) {
	record, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveDetailResponse{}, err
	}

	emp, err := s.employeeRepo.GetByUserID(ctx, record.UserID)
	if err != nil {
		// A leave without a profile is visible in lists but its detail
		// view surfaces the broken linkage.
		return leave.LeaveDetailResponse{}, fmt.Errorf("leave %s: %w", id, err)
	}

	detail := leave.LeaveDetailResponse{
		LeaveResponse: leave.NewLeaveResponse(record),
		EmployeeName:  emp.FullName(),
	}
	if emp.DepartmentName != nil {
		detail.Department = *emp.DepartmentName
	}
	return detail, nil
}

func (s *LifecycleService) ListMyLeaves(ctx context.Context, userID string) ([]leave.LeaveResponse, error) {
	records, err := s.leaveRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	return leave.NewLeaveResponses(records), nil
}

func (s *LifecycleService) ListLeaves(ctx context.Context, actor user.Actor, status leave.Status) ([]leave.LeaveResponse, error) {
	if !actor.IsAdministrator() {
		return nil, user.ErrAdminPrivilegeRequired
	}

	var (
		records []leave.Leave
		err     error
	)
	if status == "" {
		records, err = s.leaveRepo.ListAll(ctx)
	} else {
		records, err = s.leaveRepo.ListByStatus(ctx, status)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	return leave.NewLeaveResponses(records), nil
}

func (s *LifecycleService) Approve(ctx context.Context, actor user.Actor, id string) (leave.LeaveResponse, error) {
	return s.transition(ctx, actor, id, leave.StatusApproved)
}

func (s *LifecycleService) Unapprove(ctx context.Context, actor user.Actor, id string) (leave.LeaveResponse, error) {
	return s.transition(ctx, actor, id, leave.StatusPending)
}

func (s *LifecycleService) Reject(ctx context.Context, actor user.Actor, id string) (leave.LeaveResponse, error) {
	return s.transition(ctx, actor, id, leave.StatusRejected)
}

func (s *LifecycleService) Unreject(ctx context.Context, actor user.Actor, id string) (leave.LeaveResponse, error) {
	return s.transition(ctx, actor, id, leave.StatusPending)
}

func (s *LifecycleService) Cancel(ctx context.Context, actor user.Actor, id string) (leave.LeaveResponse, error) {
	return s.transition(ctx, actor, id, leave.StatusCancelled)
}

func (s *LifecycleService) Uncancel(ctx context.Context, actor user.Actor, id string) (leave.LeaveResponse, error) {
	return s.transition(ctx, actor, id, leave.StatusPending)
}

func (s *LifecycleService) UpdateHRComments(ctx context.Context, actor user.Actor, req leave.UpdateHRCommentsRequest) (leave.LeaveResponse, error) {
	if !actor.IsAdministrator() {
		return leave.LeaveResponse{}, user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	var record leave.Leave
	err := s.inTx(ctx, func(ctx context.Context) error {
		var err error
		record, err = s.leaveRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		comments := req.HRComments
		record.HRComments = &comments
		record.UpdatedAt = s.now()

		if err := s.leaveRepo.Update(ctx, record); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.NewLeaveResponse(record), nil
}

// transition moves a record to the target status. Re-applying the current
// status is not an error; only the updated timestamp changes. Every
// transition is one read plus one write against the store. Transitions act
// on the record alone: the owner's profile linkage is not consulted, so a
// leave whose profile was removed can still be approved or rejected. The
// detail view is where a broken linkage surfaces.
func (s *LifecycleService) transition(ctx context.Context, actor user.Actor, id string, target leave.Status) (leave.LeaveResponse, error) {
	if !actor.IsAdministrator() {
		return leave.LeaveResponse{}, user.ErrAdminPrivilegeRequired
	}

	var record leave.Leave
	err := s.inTx(ctx, func(ctx context.Context) error {
		var err error
		record, err = s.leaveRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		record.Status = target
		record.UpdatedAt = s.now()

		if err := s.leaveRepo.Update(ctx, record); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.NewLeaveResponse(record), nil
}

// today truncates the clock to a UTC calendar date, matching the parsed
// request dates.
func (s *LifecycleService) today() time.Time {
	year, month, day := s.now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
