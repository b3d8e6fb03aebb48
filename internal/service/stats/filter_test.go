package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffsync/leave-backend-go/internal/domain/leave"
	"github.com/staffsync/leave-backend-go/internal/domain/stats"
)

func historyFixture() []leave.Leave {
	return []leave.Leave{
		makeLeave("l1", "u1", leave.TypeSick, leave.StatusApproved, day(2024, time.January, 10), day(2024, time.January, 12)),
		makeLeave("l2", "u1", leave.TypeCasual, leave.StatusApproved, day(2024, time.February, 1), day(2024, time.February, 3)),
		makeLeave("l3", "u1", leave.TypeSick, leave.StatusPending, day(2024, time.March, 5), day(2024, time.March, 7)),
		makeLeave("l4", "u1", leave.TypeSick, leave.StatusApproved, day(2023, time.April, 1), day(2023, time.April, 3)),
	}
}

func TestFilterHistory_NoCriteria(t *testing.T) {
	got := FilterHistory(historyFixture(), stats.HistoryFilter{})
	assert.Len(t, got, 4)
}

func TestFilterHistory_SingleCriteria(t *testing.T) {
	records := historyFixture()

	byStatus := FilterHistory(records, stats.HistoryFilter{Status: "approved"})
	assert.Len(t, byStatus, 3)

	byType := FilterHistory(records, stats.HistoryFilter{LeaveType: "casual"})
	require.Len(t, byType, 1)
	assert.Equal(t, "l2", byType[0].ID)

	byYear := FilterHistory(records, stats.HistoryFilter{Year: 2023})
	require.Len(t, byYear, 1)
	assert.Equal(t, "l4", byYear[0].ID)
}

func TestFilterHistory_CriteriaCombineWithAnd(t *testing.T) {
	got := FilterHistory(historyFixture(), stats.HistoryFilter{
		Status:    "approved",
		LeaveType: "sick",
		Year:      2024,
	})

	require.Len(t, got, 1)
	assert.Equal(t, "l1", got[0].ID)
}

func TestFilterHistory_NoMatches(t *testing.T) {
	got := FilterHistory(historyFixture(), stats.HistoryFilter{Status: "cancelled"})
	assert.Len(t, got, 0)
}

func TestFilterAnalytics_DateRangeInclusive(t *testing.T) {
	got := FilterAnalytics(historyFixture(), stats.AnalyticsFilter{
		StartDate: "2024-01-10",
		EndDate:   "2024-02-01",
	})

	require.Len(t, got, 2)
	assert.Equal(t, "l1", got[0].ID)
	assert.Equal(t, "l2", got[1].ID)
}

func TestFilterAnalytics_HalfOpenRangeIgnored(t *testing.T) {
	records := historyFixture()

	onlyStart := FilterAnalytics(records, stats.AnalyticsFilter{StartDate: "2024-01-10"})
	assert.Len(t, onlyStart, 4)

	onlyEnd := FilterAnalytics(records, stats.AnalyticsFilter{EndDate: "2024-02-01"})
	assert.Len(t, onlyEnd, 4)

	malformed := FilterAnalytics(records, stats.AnalyticsFilter{StartDate: "not-a-date", EndDate: "2024-02-01"})
	assert.Len(t, malformed, 4)
}

func TestFilterAnalytics_RangeCombinesWithOtherCriteria(t *testing.T) {
	got := FilterAnalytics(historyFixture(), stats.AnalyticsFilter{
		Status:    "approved",
		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",
	})

	require.Len(t, got, 2)
	assert.Equal(t, "l1", got[0].ID)
	assert.Equal(t, "l2", got[1].ID)
}

func TestBuildHistoryPage_TotalsOverWholeSet(t *testing.T) {
	var records []leave.Leave
	for i := 0; i < 20; i++ {
		records = append(records, makeLeave(
			leaveID(i), "u1", leave.TypeSick, leave.StatusApproved,
			day(2024, time.January, 1).Add(time.Duration(i)*24*time.Hour),
			day(2024, time.January, 3).Add(time.Duration(i)*24*time.Hour),
		))
	}

	first := BuildHistoryPage(records, 1, 15)
	assert.Len(t, first.Leaves, 15)
	assert.Equal(t, 20, first.TotalItems)
	assert.Equal(t, 20*3, first.TotalDays)
	assert.Equal(t, 2, first.TotalPages)
	assert.Equal(t, 1, first.Page)

	second := BuildHistoryPage(records, 2, 15)
	assert.Len(t, second.Leaves, 5)
	assert.Equal(t, 20, second.TotalItems)
	assert.Equal(t, 20*3, second.TotalDays)
}

func TestBuildHistoryPage_OutOfRangePage(t *testing.T) {
	records := historyFixture()

	got := BuildHistoryPage(records, 99, 15)

	assert.Len(t, got.Leaves, 0)
	assert.Equal(t, 4, got.TotalItems)
	assert.Equal(t, 12, got.TotalDays)
}

func TestBuildHistoryPage_PageBelowOneClamped(t *testing.T) {
	got := BuildHistoryPage(historyFixture(), 0, 15)

	assert.Equal(t, 1, got.Page)
	assert.Len(t, got.Leaves, 4)
}

func TestBuildHistoryPage_NewestFirst(t *testing.T) {
	got := BuildHistoryPage(historyFixture(), 1, 15)

	require.Len(t, got.Leaves, 4)
	assert.Equal(t, "l3", got.Leaves[0].ID)
	assert.Equal(t, "l4", got.Leaves[3].ID)
}

func TestBuildAnalyticsReport_Basic(t *testing.T) {
	records := historyFixture()

	got := BuildAnalyticsReport(records)

	assert.Equal(t, 4, got.TotalLeaves)
	assert.InDelta(t, 75.0, got.ApprovedRate, 0.0001)

	require.NotNil(t, got.MostCommonLeaveType)
	assert.Equal(t, "sick", got.MostCommonLeaveType.LeaveType)
	assert.Equal(t, 3, got.MostCommonLeaveType.Count)

	// three approved records, each spanning 2 days
	require.NotNil(t, got.AverageDuration)
	assert.InDelta(t, 2.0, *got.AverageDuration, 0.0001)

	assert.Len(t, got.RecentLeaves, 4)
}

func TestBuildAnalyticsReport_EmptySet(t *testing.T) {
	got := BuildAnalyticsReport(nil)

	assert.Equal(t, 0, got.TotalLeaves)
	assert.Equal(t, 0.0, got.ApprovedRate)
	assert.Nil(t, got.MostCommonLeaveType)
	assert.Nil(t, got.AverageDuration)
	assert.Len(t, got.RecentLeaves, 0)
}

func TestBuildAnalyticsReport_NoApprovedRecords(t *testing.T) {
	records := []leave.Leave{
		makeLeave("l1", "u1", leave.TypeSick, leave.StatusPending, day(2024, time.January, 10), day(2024, time.January, 12)),
		makeLeave("l2", "u1", leave.TypeSick, leave.StatusRejected, day(2024, time.February, 1), day(2024, time.February, 3)),
	}

	got := BuildAnalyticsReport(records)

	assert.Equal(t, 0.0, got.ApprovedRate)
	assert.Nil(t, got.AverageDuration)
	assert.NotNil(t, got.MostCommonLeaveType)
}

func TestBuildAnalyticsReport_RecentCappedAtTwenty(t *testing.T) {
	var records []leave.Leave
	for i := 0; i < 25; i++ {
		records = append(records, makeLeave(
			leaveID(i), "u1", leave.TypeSick, leave.StatusPending,
			day(2024, time.January, 1).Add(time.Duration(i)*24*time.Hour),
			day(2024, time.January, 2).Add(time.Duration(i)*24*time.Hour),
		))
	}

	got := BuildAnalyticsReport(records)

	assert.Equal(t, 25, got.TotalLeaves)
	assert.Len(t, got.RecentLeaves, 20)
}

func TestMostCommonType_TieBreaksLexicographically(t *testing.T) {
	records := []leave.Leave{
		makeLeave("l1", "u1", leave.TypeStudy, leave.StatusPending, day(2024, time.January, 1), day(2024, time.January, 2)),
		makeLeave("l2", "u1", leave.TypeCasual, leave.StatusPending, day(2024, time.February, 1), day(2024, time.February, 2)),
		makeLeave("l3", "u1", leave.TypeStudy, leave.StatusPending, day(2024, time.March, 1), day(2024, time.March, 2)),
		makeLeave("l4", "u1", leave.TypeCasual, leave.StatusPending, day(2024, time.April, 1), day(2024, time.April, 2)),
	}

	got := mostCommonType(records)

	require.NotNil(t, got)
	assert.Equal(t, "casual", got.LeaveType)
	assert.Equal(t, 2, got.Count)
}

func leaveID(i int) string {
	return string(rune('a'+i/10)) + string(rune('0'+i%10))
}
