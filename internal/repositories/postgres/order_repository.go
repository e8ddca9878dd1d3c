package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/toyfactory/heijunkasim/internal/models"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) BulkCreate(ctx context.Context, orders []models.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	stmt := `
        INSERT INTO orders (
            id, retailer_name, toy_type, quantity, delivery_date
        ) VALUES (
            $1, $2, $3, $4, $5
        )`

	for _, order := range orders {
		_, err = tx.Exec(ctx, stmt,
			order.ID,
			order.RetailerName,
			order.ToyType,
			order.Quantity,
			order.DeliveryDate,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	query := `
        INSERT INTO orders (
            id, retailer_name, toy_type, quantity, delivery_date
        ) VALUES (
            $1, $2, $3, $4, $5
        )`
	_, err := r.pool.Exec(ctx, query,
		order.ID,
		order.RetailerName,
		order.ToyType,
		order.Quantity,
		order.DeliveryDate,
	)
	return err
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	query := `
        SELECT id, retailer_name, toy_type, quantity, delivery_date
        FROM orders
        ORDER BY delivery_date, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		err := rows.Scan(
			&order.ID,
			&order.RetailerName,
			&order.ToyType,
			&order.Quantity,
			&order.DeliveryDate,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count)
	return count, err
}

func (r *OrderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE orders")
	return err
}
