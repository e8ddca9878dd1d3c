package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/toyfactory/heijunkasim/internal/models"
)

type RawMaterialRepository struct {
	pool *pgxpool.Pool
}

func NewRawMaterialRepository(pool *pgxpool.Pool) *RawMaterialRepository {
	return &RawMaterialRepository{pool: pool}
}

func (r *RawMaterialRepository) BulkCreate(ctx context.Context, rawMaterials []models.RawMaterial) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	stmt := `
        INSERT INTO raw_materials (
            id, name, unit, inventory
        ) VALUES (
            $1, $2, $3, $4
        )`

	for _, material := range rawMaterials {
		_, err = tx.Exec(ctx, stmt,
			material.ID,
			material.Name,
			material.Unit,
			material.Inventory,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *RawMaterialRepository) Create(ctx context.Context, rawMaterial *models.RawMaterial) error {
	query := `
        INSERT INTO raw_materials (
            id, name, unit, inventory
        ) VALUES (
            $1, $2, $3, $4
        )`
	_, err := r.pool.Exec(ctx, query,
		rawMaterial.ID,
		rawMaterial.Name,
		rawMaterial.Unit,
		rawMaterial.Inventory,
	)
	return err
}

func (r *RawMaterialRepository) GetAll(ctx context.Context) ([]models.RawMaterial, error) {
	query := `
        SELECT id, name, unit, inventory
        FROM raw_materials
        ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rawMaterials []models.RawMaterial
	for rows.Next() {
		var material models.RawMaterial
		err := rows.Scan(
			&material.ID,
			&material.Name,
			&material.Unit,
			&material.Inventory,
		)
		if err != nil {
			return nil, err
		}
		rawMaterials = append(rawMaterials, material)
	}
	return rawMaterials, rows.Err()
}

func (r *RawMaterialRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM raw_materials").Scan(&count)
	return count, err
}

func (r *RawMaterialRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE raw_materials")
	return err
}
