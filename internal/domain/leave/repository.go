package leave

import (
	"context"
)

// Repository - interface for the leaves table. Listing methods return
// records ordered by created_at descending.
type Repository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	Update(ctx context.Context, l Leave) error
	ListByUser(ctx context.Context, userID string) ([]Leave, error)
	ListByStatus(ctx context.Context, status Status) ([]Leave, error)
	ListAll(ctx context.Context) ([]Leave, error)
}
