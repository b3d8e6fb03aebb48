package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/staffsync/leave-backend-go/internal/domain/employee"
	"github.com/staffsync/leave-backend-go/internal/domain/leave"
	"github.com/staffsync/leave-backend-go/internal/domain/stats"
	"github.com/staffsync/leave-backend-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

// historyPerPage matches the history view's display page size. Totals are
// always computed before pagination.
const historyPerPage = 15

type StatsServiceImpl struct {
	leaveRepo    leave.Repository
	employeeRepo employee.Repository

	defaultAllowance int

	now func() time.Time
}

func NewStatsService(leaveRepo leave.Repository, employeeRepo employee.Repository, defaultAllowance int) stats.Service {
	return &StatsServiceImpl{
		leaveRepo:        leaveRepo,
		employeeRepo:     employeeRepo,
		defaultAllowance: defaultAllowance,
		now:              time.Now,
	}
}

func (s *StatsServiceImpl) PersonalSnapshot(ctx context.Context, userID string) (*stats.PersonalStats, error) {
	records, err := s.leaveRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves for user: %w", err)
	}
	return BuildPersonalStats(records, s.defaultAllowance, s.now()), nil
}

// OrganizationalSnapshot fetches the three record sets in parallel and
// aggregates in memory.
func (s *StatsServiceImpl) OrganizationalSnapshot(ctx context.Context, actor user.Actor) (*stats.OrgStats, error) {
	if !actor.IsAdministrator() {
		return nil, user.ErrAdminPrivilegeRequired
	}

	var (
		records     []leave.Leave
		employees   []employee.Employee
		departments []employee.Department
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		records, err = s.leaveRepo.ListAll(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.ListAll(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		departments, err = s.employeeRepo.ListDepartments(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load snapshot data: %w", err)
	}

	return BuildOrgStats(records, employees, departments, s.now()), nil
}

func (s *StatsServiceImpl) History(ctx context.Context, userID string, filter stats.HistoryFilter, page int) (*stats.HistoryPage, error) {
	records, err := s.leaveRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves for user: %w", err)
	}

	filtered := FilterHistory(records, filter)
	return BuildHistoryPage(filtered, page, historyPerPage), nil
}

func (s *StatsServiceImpl) Analytics(ctx context.Context, actor user.Actor, filter stats.AnalyticsFilter) (*stats.AnalyticsReport, error) {
	if !actor.IsAdministrator() {
		return nil, user.ErrAdminPrivilegeRequired
	}

	records, err := s.leaveRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}

	filtered := FilterAnalytics(records, filter)
	return BuildAnalyticsReport(filtered), nil
}
