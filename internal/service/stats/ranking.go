package stats

import (
	"sort"

	"github.com/staffsync/leave-backend-go/internal/domain/leave"
	"github.com/staffsync/leave-backend-go/internal/domain/stats"
)

// TopLeaveTakers ranks users by how many leave requests they own, highest
// first. Users with no requests never appear. Equal counts order by
// ascending user id so the ranking is deterministic.
func TopLeaveTakers(records []leave.Leave, n int) []stats.LeaveTaker {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.UserID]++
	}

	ranked := make([]stats.LeaveTaker, 0, len(counts))
	for userID, count := range counts {
		ranked = append(ranked, stats.LeaveTaker{UserID: userID, LeaveCount: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].LeaveCount != ranked[j].LeaveCount {
			return ranked[i].LeaveCount > ranked[j].LeaveCount
		}
		return ranked[i].UserID < ranked[j].UserID
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
