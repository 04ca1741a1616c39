package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/boutique-service/internal/domain"
)

// WorklogRepository persists the append-only work ledger. There are no
// update or delete operations on purpose.
type WorklogRepository interface {
	Append(ctx context.Context, event *domain.WorkEvent) error
	ListByStaff(ctx context.Context, staffName string, workDate *string) ([]domain.WorkEvent, error)
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]domain.WorkEvent, error)
}

type worklogRepository struct {
	pool *pgxpool.Pool
}

// NewWorklogRepository instantiates the repository.
func NewWorklogRepository(pool *pgxpool.Pool) WorklogRepository {
	return &worklogRepository{pool: pool}
}

const workEventColumns = `id, work_date, order_id, staff_name, role, work_type, notes`

func (r *worklogRepository) Append(ctx context.Context, event *domain.WorkEvent) error {
	const query = `
        INSERT INTO worklog (work_date, order_id, staff_name, role, work_type, notes)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		event.WorkDate,
		event.OrderID,
		event.StaffName,
		event.Role,
		event.WorkType,
		event.Notes,
	).Scan(&event.ID)
}

func (r *worklogRepository) ListByStaff(ctx context.Context, staffName string, workDate *string) ([]domain.WorkEvent, error) {
	query := `SELECT ` + workEventColumns + ` FROM worklog WHERE staff_name=$1`
	args := []any{staffName}

	if workDate != nil {
		args = append(args, *workDate)
		query += " AND work_date=$2"
	}
	query += " ORDER BY id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWorkEvents(rows)
}

func (r *worklogRepository) ListByDateRange(ctx context.Context, startDate, endDate string) ([]domain.WorkEvent, error) {
	// ISO dates compare correctly as text.
	const query = `SELECT ` + workEventColumns + `
        FROM worklog WHERE work_date >= $1 AND work_date <= $2 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWorkEvents(rows)
}

func scanWorkEvents(rows pgx.Rows) ([]domain.WorkEvent, error) {
	var result []domain.WorkEvent
	for rows.Next() {
		var event domain.WorkEvent
		if err := rows.Scan(
			&event.ID,
			&event.WorkDate,
			&event.OrderID,
			&event.StaffName,
			&event.Role,
			&event.WorkType,
			&event.Notes,
		); err != nil {
			return nil, err
		}
		result = append(result, event)
	}
	return result, rows.Err()
}
