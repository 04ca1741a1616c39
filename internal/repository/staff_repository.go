package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/boutique-service/internal/domain"
)

// StaffRepository handles persistence for staff members.
type StaffRepository interface {
	Insert(ctx context.Context, staff *domain.StaffMember) error
	List(ctx context.Context, filter StaffFilter) ([]domain.StaffMember, error)
	Count(ctx context.Context) (int64, error)
}

// StaffFilter defines query params for staff listing.
type StaffFilter struct {
	Role   *domain.StaffRole
	Active *bool
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

func (r *staffRepository) Insert(ctx context.Context, staff *domain.StaffMember) error {
	const query = `
        INSERT INTO staff (name, role, reports_to, active)
        VALUES ($1,$2,$3,$4)`

	_, err := r.pool.Exec(ctx, query,
		staff.Name,
		staff.Role,
		staff.ReportsTo,
		staff.Active,
	)
	return err
}

func (r *staffRepository) List(ctx context.Context, filter StaffFilter) ([]domain.StaffMember, error) {
	query := `SELECT name, role, reports_to, active FROM staff`
	args := []any{}
	clauses := []string{}

	if filter.Role != nil {
		args = append(args, *filter.Role)
		clauses = append(clauses, fmt.Sprintf("role=$%d", len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		clauses = append(clauses, fmt.Sprintf("active=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	// Role-filtered listings sort by name; unfiltered ones group by role first.
	if filter.Role != nil {
		query += " ORDER BY name"
	} else {
		query += " ORDER BY role, name"
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StaffMember
	for rows.Next() {
		var staff domain.StaffMember
		if err := rows.Scan(
			&staff.Name,
			&staff.Role,
			&staff.ReportsTo,
			&staff.Active,
		); err != nil {
			return nil, err
		}
		result = append(result, staff)
	}
	return result, rows.Err()
}

func (r *staffRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM staff`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
