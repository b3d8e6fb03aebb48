package stats

import (
	"sort"
	"time"

	"github.com/staffsync/leave-backend-go/internal/domain/employee"
	"github.com/staffsync/leave-backend-go/internal/domain/leave"
	"github.com/staffsync/leave-backend-go/internal/domain/stats"
)

// BuildPersonalStats aggregates one user's records into their dashboard
// snapshot. Pure; the caller supplies the record set, the allowance policy,
// and the clock.
func BuildPersonalStats(records []leave.Leave, allowance int, now time.Time) *stats.PersonalStats {
	byStatus := countByStatus(records)

	leaveTypes := make(map[string]int)
	for _, r := range records {
		leaveTypes[string(r.Type)]++
	}

	totalDaysUsed := 0
	for _, r := range records {
		if r.Status == leave.StatusApproved {
			totalDaysUsed += r.InclusiveDays()
		}
	}

	daysRemaining := allowance - totalDaysUsed
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	var usage float64
	if allowance > 0 {
		usage = float64(totalDaysUsed) / float64(allowance) * 100
	}
	if usage > 100 {
		usage = 100
	}

	return &stats.PersonalStats{
		TotalLeaves:     len(records),
		ApprovedLeaves:  byStatus[leave.StatusApproved],
		PendingLeaves:   byStatus[leave.StatusPending],
		RejectedLeaves:  byStatus[leave.StatusRejected],
		CancelledLeaves: byStatus[leave.StatusCancelled],
		LeaveTypes:      leaveTypes,
		MonthlyData:     monthlyHistogram(records, now.Year()),
		RecentLeaves:    leave.NewLeaveResponses(recent(records, 5)),
		TotalDaysUsed:   totalDaysUsed,
		DaysRemaining:   daysRemaining,
		DefaultDays:     allowance,
		UsagePercentage: usage,
	}
}

// BuildOrgStats aggregates every record into the administrator snapshot.
// Records whose owner has no employee profile or department stay in the
// global counts but are skipped from the department breakdown.
func BuildOrgStats(records []leave.Leave, employees []employee.Employee, departments []employee.Department, now time.Time) *stats.OrgStats {
	byStatus := countByStatus(records)

	statusDistribution := make(map[string]int, len(leave.AllStatuses))
	for _, s := range leave.AllStatuses {
		statusDistribution[string(s)] = byStatus[s]
	}

	typeStats := make(map[string]int)
	for _, r := range records {
		typeStats[r.Type.DisplayName()]++
	}

	return &stats.OrgStats{
		TotalEmployees:     len(employees),
		TotalLeaves:        len(records),
		PendingLeaves:      byStatus[leave.StatusPending],
		ApprovedLeaves:     byStatus[leave.StatusApproved],
		RejectedLeaves:     byStatus[leave.StatusRejected],
		StatusDistribution: statusDistribution,
		DepartmentStats:    departmentBreakdown(records, employees, departments),
		MonthlyTrends:      monthlyHistogram(records, now.Year()),
		LeaveTypeStats:     typeStats,
		RecentLeaves:       leave.NewLeaveResponses(recent(records, 10)),
		TopLeaveTakers:     TopLeaveTakers(records, 5),
	}
}

func countByStatus(records []leave.Leave) map[leave.Status]int {
	counts := make(map[leave.Status]int)
	for _, r := range records {
		counts[r.Status]++
	}
	return counts
}

// monthlyHistogram buckets records by startdate month for the given year,
// regardless of status. Always 12 buckets, Jan through Dec.
func monthlyHistogram(records []leave.Leave, year int) []stats.MonthBucket {
	buckets := make([]stats.MonthBucket, 0, 12)
	for month := time.January; month <= time.December; month++ {
		count := 0
		for _, r := range records {
			if r.StartDate.Year() == year && r.StartDate.Month() == month {
				count++
			}
		}
		buckets = append(buckets, stats.MonthBucket{
			Month: month.String()[:3],
			Count: count,
		})
	}
	return buckets
}

// departmentBreakdown joins leave records to the owning employee's
// department. Employees without a department, and leaves whose owner has no
// profile, do not contribute to any row.
func departmentBreakdown(records []leave.Leave, employees []employee.Employee, departments []employee.Department) []stats.DepartmentStat {
	deptByUser := make(map[string]string, len(employees))
	employeesByDept := make(map[string]int, len(departments))
	for _, e := range employees {
		if e.DepartmentID == nil {
			continue
		}
		deptByUser[e.UserID] = *e.DepartmentID
		employeesByDept[*e.DepartmentID]++
	}

	rows := make([]stats.DepartmentStat, 0, len(departments))
	for _, d := range departments {
		row := stats.DepartmentStat{
			Name:      d.Name,
			Employees: employeesByDept[d.ID],
		}
		for _, r := range records {
			if deptByUser[r.UserID] != d.ID {
				continue
			}
			row.Leaves++
			switch r.Status {
			case leave.StatusPending:
				row.Pending++
			case leave.StatusApproved:
				row.Approved++
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// recent returns up to n records ordered by creation time descending, ties
// broken by id so the order is stable.
func recent(records []leave.Leave, n int) []leave.Leave {
	sorted := make([]leave.Leave, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
