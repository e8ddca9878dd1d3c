package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/toyfactory/heijunkasim/internal/models"
)

type SupplierRepository struct {
	pool *pgxpool.Pool
}

func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepository {
	return &SupplierRepository{pool: pool}
}

func (r *SupplierRepository) BulkCreate(ctx context.Context, suppliers []models.Supplier) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	stmt := `
        INSERT INTO suppliers (
            id, name, material_supplied, lead_time, delivery_schedule
        ) VALUES (
            $1, $2, $3, $4, $5
        )`

	for _, supplier := range suppliers {
		_, err = tx.Exec(ctx, stmt,
			supplier.ID,
			supplier.Name,
			supplier.MaterialSupplied,
			supplier.LeadTime,
			supplier.DeliverySchedule,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	query := `
        INSERT INTO suppliers (
            id, name, material_supplied, lead_time, delivery_schedule
        ) VALUES (
            $1, $2, $3, $4, $5
        )`
	_, err := r.pool.Exec(ctx, query,
		supplier.ID,
		supplier.Name,
		supplier.MaterialSupplied,
		supplier.LeadTime,
		supplier.DeliverySchedule,
	)
	return err
}

func (r *SupplierRepository) GetAll(ctx context.Context) ([]models.Supplier, error) {
	query := `
        SELECT id, name, material_supplied, lead_time, delivery_schedule
        FROM suppliers
        ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []models.Supplier
	for rows.Next() {
		var supplier models.Supplier
		err := rows.Scan(
			&supplier.ID,
			&supplier.Name,
			&supplier.MaterialSupplied,
			&supplier.LeadTime,
			&supplier.DeliverySchedule,
		)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, rows.Err()
}

func (r *SupplierRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM suppliers").Scan(&count)
	return count, err
}

func (r *SupplierRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE suppliers")
	return err
}
