package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffsync/leave-backend-go/internal/domain/leave"
	"github.com/staffsync/leave-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	l.id, l.user_id, l.start_date, l.end_date, l.leave_type,
	l.reason, l.default_days, l.hr_comments, l.status,
	l.created_at, l.updated_at`

func (r *leaveRepositoryImpl) Create(ctx context.Context, record leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (
			id, user_id, start_date, end_date, leave_type,
			reason, default_days, status,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8,
			$9, $10
		)
	`

	_, err := q.Exec(ctx, query,
		record.ID, record.UserID, record.StartDate, record.EndDate, record.Type,
		record.Reason, record.DefaultDays, record.Status,
		record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to insert leave: %w", err)
	}

	return record, nil
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveColumns + `
		FROM leaves l
		WHERE l.id = $1
	`

	record, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, err
	}
	return record, nil
}

// Update rewrites the mutable columns in a single statement, so each
// lifecycle transition is one atomic write.
func (r *leaveRepositoryImpl) Update(ctx context.Context, record leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $2, hr_comments = $3, updated_at = $4
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, record.ID, record.Status, record.HRComments, record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update leave: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

func (r *leaveRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]leave.Leave, error) {
	query := `SELECT` + leaveColumns + `
		FROM leaves l
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC
	`
	return r.list(ctx, query, userID)
}

func (r *leaveRepositoryImpl) ListByStatus(ctx context.Context, status leave.Status) ([]leave.Leave, error) {
	query := `SELECT` + leaveColumns + `
		FROM leaves l
		WHERE l.status = $1
		ORDER BY l.created_at DESC
	`
	return r.list(ctx, query, status)
}

func (r *leaveRepositoryImpl) ListAll(ctx context.Context) ([]leave.Leave, error) {
	query := `SELECT` + leaveColumns + `
		FROM leaves l
		ORDER BY l.created_at DESC
	`
	return r.list(ctx, query)
}

func (r *leaveRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaves: %w", err)
	}
	defer rows.Close()

	var records []leave.Leave
	for rows.Next() {
		record, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var record leave.Leave
	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.StartDate,
		&record.EndDate,
		&record.Type,
		&record.Reason,
		&record.DefaultDays,
		&record.HRComments,
		&record.Status,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return leave.Leave{}, err
	}
	return record, nil
}
