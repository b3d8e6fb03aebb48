package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffsync/leave-backend-go/internal/domain/employee"
	"github.com/staffsync/leave-backend-go/internal/domain/leave"
	"github.com/staffsync/leave-backend-go/internal/domain/stats"
	"github.com/staffsync/leave-backend-go/internal/domain/user"
)

type fakeLeaveRepo struct {
	leaves []leave.Leave
}

func (r *fakeLeaveRepo) Create(_ context.Context, l leave.Leave) (leave.Leave, error) {
	r.leaves = append(r.leaves, l)
	return l, nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.Leave, error) {
	for _, l := range r.leaves {
		if l.ID == id {
			return l, nil
		}
	}
	return leave.Leave{}, leave.ErrLeaveNotFound
}

func (r *fakeLeaveRepo) Update(_ context.Context, l leave.Leave) error {
	for i := range r.leaves {
		if r.leaves[i].ID == l.ID {
			r.leaves[i] = l
			return nil
		}
	}
	return leave.ErrLeaveNotFound
}

func (r *fakeLeaveRepo) ListByUser(_ context.Context, userID string) ([]leave.Leave, error) {
	out := make([]leave.Leave, 0, len(r.leaves))
	for _, l := range r.leaves {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListByStatus(_ context.Context, status leave.Status) ([]leave.Leave, error) {
	out := make([]leave.Leave, 0, len(r.leaves))
	for _, l := range r.leaves {
		if l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListAll(_ context.Context) ([]leave.Leave, error) {
	return r.leaves, nil
}

type fakeEmployeeRepo struct {
	employees   []employee.Employee
	departments []employee.Department
}

func (r *fakeEmployeeRepo) GetByUserID(_ context.Context, userID string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrProfileNotFound
}

func (r *fakeEmployeeRepo) ListAll(_ context.Context) ([]employee.Employee, error) {
	return r.employees, nil
}

func (r *fakeEmployeeRepo) ListDepartments(_ context.Context) ([]employee.Department, error) {
	return r.departments, nil
}

func newTestStatsService(leaveRepo *fakeLeaveRepo, employeeRepo *fakeEmployeeRepo) *StatsServiceImpl {
	return &StatsServiceImpl{
		leaveRepo:        leaveRepo,
		employeeRepo:     employeeRepo,
		defaultAllowance: 30,
		now:              func() time.Time { return day(2024, time.June, 15) },
	}
}

func TestStatsService_PersonalSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := &fakeLeaveRepo{leaves: []leave.Leave{
		makeLeave("l1", "u1", leave.TypeSick, leave.StatusApproved, day(2024, time.January, 10), day(2024, time.January, 12)),
		makeLeave("l2", "u2", leave.TypeSick, leave.StatusApproved, day(2024, time.January, 10), day(2024, time.January, 12)),
	}}
	svc := newTestStatsService(repo, &fakeEmployeeRepo{})

	got, err := svc.PersonalSnapshot(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalLeaves)
	assert.Equal(t, 3, got.TotalDaysUsed)
	assert.Equal(t, 27, got.DaysRemaining)
}

func TestStatsService_OrganizationalSnapshot_AdminOnly(t *testing.T) {
	ctx := context.Background()
	svc := newTestStatsService(&fakeLeaveRepo{}, &fakeEmployeeRepo{})

	_, err := svc.OrganizationalSnapshot(ctx, user.Actor{ID: "u1", Admin: false})
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
}

func TestStatsService_OrganizationalSnapshot(t *testing.T) {
	ctx := context.Background()
	eng := "dept-eng"
	leaveRepo := &fakeLeaveRepo{leaves: []leave.Leave{
		makeLeave("l1", "u1", leave.TypeSick, leave.StatusApproved, day(2024, time.January, 10), day(2024, time.January, 12)),
		makeLeave("l2", "u2", leave.TypeCasual, leave.StatusPending, day(2024, time.February, 1), day(2024, time.February, 3)),
	}}
	employeeRepo := &fakeEmployeeRepo{
		employees: []employee.Employee{
			{ID: "e1", UserID: "u1", DepartmentID: &eng},
			{ID: "e2", UserID: "u2"},
		},
		departments: []employee.Department{{ID: eng, Name: "Engineering"}},
	}
	svc := newTestStatsService(leaveRepo, employeeRepo)

	got, err := svc.OrganizationalSnapshot(ctx, user.Actor{ID: "admin", Admin: true})

	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalEmployees)
	assert.Equal(t, 2, got.TotalLeaves)
	require.Len(t, got.DepartmentStats, 1)
	assert.Equal(t, "Engineering", got.DepartmentStats[0].Name)
	assert.Equal(t, 1, got.DepartmentStats[0].Leaves)
}

func TestStatsService_History_FiltersAndPaginates(t *testing.T) {
	ctx := context.Background()
	repo := &fakeLeaveRepo{leaves: []leave.Leave{
		makeLeave("l1", "u1", leave.TypeSick, leave.StatusApproved, day(2024, time.January, 10), day(2024, time.January, 12)),
		makeLeave("l2", "u1", leave.TypeCasual, leave.StatusPending, day(2024, time.February, 1), day(2024, time.February, 3)),
		makeLeave("l3", "u2", leave.TypeSick, leave.StatusApproved, day(2024, time.March, 1), day(2024, time.March, 3)),
	}}
	svc := newTestStatsService(repo, &fakeEmployeeRepo{})

	got, err := svc.History(ctx, "u1", stats.HistoryFilter{Status: "approved"}, 1)

	require.NoError(t, err)
	require.Len(t, got.Leaves, 1)
	assert.Equal(t, "l1", got.Leaves[0].ID)
	assert.Equal(t, 1, got.TotalItems)
	assert.Equal(t, 3, got.TotalDays)
	assert.Equal(t, 15, got.PerPage)
}

func TestStatsService_Analytics_AdminOnly(t *testing.T) {
	ctx := context.Background()
	svc := newTestStatsService(&fakeLeaveRepo{}, &fakeEmployeeRepo{})

	_, err := svc.Analytics(ctx, user.Actor{ID: "u1", Admin: false}, stats.AnalyticsFilter{})
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
}

func TestStatsService_Analytics(t *testing.T) {
	ctx := context.Background()
	repo := &fakeLeaveRepo{leaves: []leave.Leave{
		makeLeave("l1", "u1", leave.TypeSick, leave.StatusApproved, day(2024, time.January, 10), day(2024, time.January, 12)),
		makeLeave("l2", "u2", leave.TypeCasual, leave.StatusRejected, day(2024, time.February, 1), day(2024, time.February, 3)),
	}}
	svc := newTestStatsService(repo, &fakeEmployeeRepo{})

	got, err := svc.Analytics(ctx, user.Actor{ID: "admin", Admin: true}, stats.AnalyticsFilter{})

	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalLeaves)
	assert.InDelta(t, 50.0, got.ApprovedRate, 0.0001)
}
