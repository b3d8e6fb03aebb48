package stats

import (
	"context"

	"github.com/staffsync/leave-backend-go/internal/domain/user"
)

// Service computes read-only snapshots. All methods are side-effect-free
// and observe whatever state the store returns at read time.
type Service interface {
	// PersonalSnapshot aggregates the actor's own records.
	PersonalSnapshot(ctx context.Context, userID string) (*PersonalStats, error)

	// OrganizationalSnapshot aggregates all records; admin only.
	OrganizationalSnapshot(ctx context.Context, actor user.Actor) (*OrgStats, error)

	// History returns one page of the actor's filtered history with
	// whole-set totals.
	History(ctx context.Context, userID string, filter HistoryFilter, page int) (*HistoryPage, error)

	// Analytics computes the admin analytics report over the filtered set.
	Analytics(ctx context.Context, actor user.Actor, filter AnalyticsFilter) (*AnalyticsReport, error)
}
