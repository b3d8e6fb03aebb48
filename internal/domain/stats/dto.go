package stats

import (
	"github.com/staffsync/leave-backend-go/internal/domain/leave"
)

// ========== PERSONAL SNAPSHOT ==========

// MonthBucket is one Jan-Dec histogram bucket, counting records whose
// startdate falls in that month of the snapshot year.
type MonthBucket struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// PersonalStats is the dashboard snapshot for an ordinary user, computed
// over their own records only.
type PersonalStats struct {
	TotalLeaves     int `json:"total_leaves"`
	ApprovedLeaves  int `json:"approved_leaves"`
	PendingLeaves   int `json:"pending_leaves"`
	RejectedLeaves  int `json:"rejected_leaves"`
	CancelledLeaves int `json:"cancelled_leaves"`

	// LeaveTypes counts by type code; zero-count types are omitted.
	LeaveTypes map[string]int `json:"leave_types"`

	MonthlyData  []MonthBucket         `json:"monthly_data"`
	RecentLeaves []leave.LeaveResponse `json:"recent_leaves"`

	TotalDaysUsed   int     `json:"total_days_used"`
	DaysRemaining   int     `json:"days_remaining"`
	DefaultDays     int     `json:"default_days"`
	UsagePercentage float64 `json:"leave_usage_percentage"`
}

// ========== ORGANIZATIONAL SNAPSHOT ==========

// DepartmentStat is the per-department breakdown row.
type DepartmentStat struct {
	Name      string `json:"name"`
	Employees int    `json:"employees"`
	Leaves    int    `json:"leaves"`
	Pending   int    `json:"pending"`
	Approved  int    `json:"approved"`
}

// LeaveTaker is one row of the top-leave-takers ranking.
type LeaveTaker struct {
	UserID     string `json:"user_id"`
	LeaveCount int    `json:"leave_count"`
}

// OrgStats is the organization-wide snapshot for administrators.
type OrgStats struct {
	TotalEmployees int `json:"total_employees"`
	TotalLeaves    int `json:"total_leaves"`
	PendingLeaves  int `json:"pending_leaves"`
	ApprovedLeaves int `json:"approved_leaves"`
	RejectedLeaves int `json:"rejected_leaves"`

	// StatusDistribution always carries all four statuses, including
	// cancelled, even at zero.
	StatusDistribution map[string]int `json:"status_distribution"`

	DepartmentStats []DepartmentStat `json:"department_stats"`
	MonthlyTrends   []MonthBucket    `json:"monthly_trends"`

	// LeaveTypeStats is keyed by the type's display label, zero-count
	// types omitted.
	LeaveTypeStats map[string]int `json:"leave_type_stats"`

	RecentLeaves   []leave.LeaveResponse `json:"recent_leaves"`
	TopLeaveTakers []LeaveTaker          `json:"top_leave_takers"`
}

// ========== HISTORY ==========

// HistoryFilter narrows a user's leave history. Empty fields impose no
// constraint; supplied fields combine with logical AND.
type HistoryFilter struct {
	Status    string
	LeaveType string
	Year      int
}

// HistoryPage carries one display page plus totals computed over the whole
// filtered set, never the page.
type HistoryPage struct {
	Leaves     []leave.LeaveResponse `json:"leaves"`
	TotalDays  int                   `json:"total_days"`
	TotalItems int                   `json:"total_items"`
	Page       int                   `json:"page"`
	PerPage    int                   `json:"per_page"`
	TotalPages int                   `json:"total_pages"`
}

// ========== ADMIN ANALYTICS ==========

// AnalyticsFilter narrows the admin analytics record set. The date range is
// inclusive on startdate and only applies when both ends are supplied.
type AnalyticsFilter struct {
	Status    string
	LeaveType string
	Year      int
	StartDate string
	EndDate   string
}

// TypeCount pairs a leave type with its frequency in a filtered set.
type TypeCount struct {
	LeaveType string `json:"leavetype"`
	Count     int    `json:"count"`
}

// AnalyticsReport aggregates over the entire filtered set. AverageDuration
// is nil, not zero, when no approved records exist.
type AnalyticsReport struct {
	TotalLeaves         int                   `json:"total_leaves"`
	ApprovedRate        float64               `json:"approved_rate"`
	MostCommonLeaveType *TypeCount            `json:"most_common_leave_type,omitempty"`
	AverageDuration     *float64              `json:"average_leave_duration,omitempty"`
	RecentLeaves        []leave.LeaveResponse `json:"leaves"`
}
