package stats

import (
	"sort"
	"time"

	"github.com/staffsync/leave-backend-go/internal/domain/leave"
	"github.com/staffsync/leave-backend-go/internal/domain/stats"
)

// FilterHistory returns the subset matching every supplied criterion.
// Empty criteria impose no constraint.
func FilterHistory(records []leave.Leave, filter stats.HistoryFilter) []leave.Leave {
	matched := make([]leave.Leave, 0, len(records))
	for _, r := range records {
		if filter.Status != "" && string(r.Status) != filter.Status {
			continue
		}
		if filter.LeaveType != "" && string(r.Type) != filter.LeaveType {
			continue
		}
		if filter.Year != 0 && r.StartDate.Year() != filter.Year {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

// FilterAnalytics applies the admin analytics criteria. The date range is
// inclusive on startdate and only constrains when both ends parse.
func FilterAnalytics(records []leave.Leave, filter stats.AnalyticsFilter) []leave.Leave {
	matched := FilterHistory(records, stats.HistoryFilter{
		Status:    filter.Status,
		LeaveType: filter.LeaveType,
		Year:      filter.Year,
	})

	rangeStart, okStart := parseDate(filter.StartDate)
	rangeEnd, okEnd := parseDate(filter.EndDate)
	if !okStart || !okEnd {
		return matched
	}

	inRange := make([]leave.Leave, 0, len(matched))
	for _, r := range matched {
		if r.StartDate.Before(rangeStart) || r.StartDate.After(rangeEnd) {
			continue
		}
		inRange = append(inRange, r)
	}
	return inRange
}

// BuildHistoryPage paginates the filtered set for display while computing
// totals over the entire set. Pages are 1-based; out-of-range pages come
// back empty but keep the true totals.
func BuildHistoryPage(filtered []leave.Leave, page, perPage int) *stats.HistoryPage {
	totalDays := 0
	for _, r := range filtered {
		totalDays += r.InclusiveDays()
	}

	ordered := make([]leave.Leave, len(filtered))
	copy(ordered, filtered)
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
		}
		return ordered[i].ID < ordered[j].ID
	})

	if page < 1 {
		page = 1
	}
	totalPages := (len(ordered) + perPage - 1) / perPage
	start := (page - 1) * perPage
	if start > len(ordered) {
		start = len(ordered)
	}
	end := start + perPage
	if end > len(ordered) {
		end = len(ordered)
	}

	return &stats.HistoryPage{
		Leaves:     leave.NewLeaveResponses(ordered[start:end]),
		TotalDays:  totalDays,
		TotalItems: len(ordered),
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

// BuildAnalyticsReport aggregates over the whole filtered set. The
// approved rate of an empty set is 0, and the average duration of a set
// with no approved records is absent rather than zero.
func BuildAnalyticsReport(filtered []leave.Leave) *stats.AnalyticsReport {
	report := &stats.AnalyticsReport{
		TotalLeaves:  len(filtered),
		RecentLeaves: leave.NewLeaveResponses(recent(filtered, 20)),
	}

	approvedCount := 0
	durationSum := 0
	for _, r := range filtered {
		if r.Status == leave.StatusApproved {
			approvedCount++
			durationSum += r.Days()
		}
	}

	if len(filtered) > 0 {
		report.ApprovedRate = float64(approvedCount) / float64(len(filtered)) * 100
	}

	if approvedCount > 0 {
		avg := float64(durationSum) / float64(approvedCount)
		report.AverageDuration = &avg
	}

	report.MostCommonLeaveType = mostCommonType(filtered)

	return report
}

// mostCommonType finds the highest-frequency leave type; ties go to the
// lexicographically smallest type code.
func mostCommonType(records []leave.Leave) *stats.TypeCount {
	if len(records) == 0 {
		return nil
	}

	counts := make(map[leave.Type]int)
	for _, r := range records {
		counts[r.Type]++
	}

	var best stats.TypeCount
	for t, count := range counts {
		if count > best.Count || (count == best.Count && string(t) < best.LeaveType) {
			best = stats.TypeCount{LeaveType: string(t), Count: count}
		}
	}
	return &best
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	return t, err == nil
}
