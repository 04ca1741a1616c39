package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/boutique-service/internal/domain"
)

// OrderFilter captures order listing parameters.
type OrderFilter struct {
	Stage *domain.Stage
}

// OrderRepository encapsulates order persistence. Stage and tailor updates
// are single UPDATE statements so a mutation is never half-applied.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	UpdateStage(ctx context.Context, id int64, stage domain.Stage, updatedAt time.Time) error
	UpdateTailor(ctx context.Context, id int64, tailor string, updatedAt time.Time) error
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates the repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

const orderColumns = `id, COALESCE(order_number,''), client_name, phone, order_date, due_date,
       needs_dyeing, needs_embroidery, needs_market,
       master_assigned, tailor_assigned, current_stage, comments, last_updated`

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	const query = `
        INSERT INTO orders (order_number, client_name, phone, order_date, due_date,
            needs_dyeing, needs_embroidery, needs_market,
            master_assigned, tailor_assigned, current_stage, comments, last_updated)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		order.OrderNumber,
		order.ClientName,
		order.Phone,
		order.OrderDate,
		order.DueDate,
		order.NeedsDyeing,
		order.NeedsEmbroidery,
		order.NeedsMarket,
		order.MasterAssigned,
		order.TailorAssigned,
		order.CurrentStage,
		order.Comments,
		order.LastUpdated,
	).Scan(&order.ID)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`

	var order domain.Order
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.OrderNumber,
		&order.ClientName,
		&order.Phone,
		&order.OrderDate,
		&order.DueDate,
		&order.NeedsDyeing,
		&order.NeedsEmbroidery,
		&order.NeedsMarket,
		&order.MasterAssigned,
		&order.TailorAssigned,
		&order.CurrentStage,
		&order.Comments,
		&order.LastUpdated,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, filter OrderFilter) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []any{}

	if filter.Stage != nil {
		args = append(args, *filter.Stage)
		query += " WHERE current_stage=$1"
	}

	// Unset due dates sort last, treated as far future.
	query += " ORDER BY NULLIF(due_date,'') ASC NULLS LAST, id ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *orderRepository) UpdateStage(ctx context.Context, id int64, stage domain.Stage, updatedAt time.Time) error {
	const query = `UPDATE orders SET current_stage=$1, last_updated=$2 WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, stage, updatedAt, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) UpdateTailor(ctx context.Context, id int64, tailor string, updatedAt time.Time) error {
	const query = `UPDATE orders SET tailor_assigned=$1, last_updated=$2 WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, tailor, updatedAt, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanOrders(rows pgx.Rows) ([]domain.Order, error) {
	var result []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID,
			&order.OrderNumber,
			&order.ClientName,
			&order.Phone,
			&order.OrderDate,
			&order.DueDate,
			&order.NeedsDyeing,
			&order.NeedsEmbroidery,
			&order.NeedsMarket,
			&order.MasterAssigned,
			&order.TailorAssigned,
			&order.CurrentStage,
			&order.Comments,
			&order.LastUpdated,
		); err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, rows.Err()
}
