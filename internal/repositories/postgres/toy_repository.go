package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/toyfactory/heijunkasim/internal/models"
)

type ToyRepository struct {
	pool *pgxpool.Pool
}

func NewToyRepository(pool *pgxpool.Pool) *ToyRepository {
	return &ToyRepository{pool: pool}
}

func (r *ToyRepository) BulkCreate(ctx context.Context, toys []models.Toy) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	stmt := `
        INSERT INTO toys (
            id, name, assembly_time, raw_materials
        ) VALUES (
            $1, $2, $3, $4
        )`

	for _, toy := range toys {
		bom, err := json.Marshal(toy.RawMaterials)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, stmt,
			toy.ID,
			toy.Name,
			toy.AssemblyTime,
			bom,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *ToyRepository) Create(ctx context.Context, toy *models.Toy) error {
	bom, err := json.Marshal(toy.RawMaterials)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO toys (
            id, name, assembly_time, raw_materials
        ) VALUES (
            $1, $2, $3, $4
        )`
	_, err = r.pool.Exec(ctx, query,
		toy.ID,
		toy.Name,
		toy.AssemblyTime,
		bom,
	)
	return err
}

func (r *ToyRepository) GetAll(ctx context.Context) ([]models.Toy, error) {
	query := `
        SELECT id, name, assembly_time, raw_materials
        FROM toys
        ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var toys []models.Toy
	for rows.Next() {
		var toy models.Toy
		var bom []byte
		err := rows.Scan(
			&toy.ID,
			&toy.Name,
			&toy.AssemblyTime,
			&bom,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(bom, &toy.RawMaterials); err != nil {
			return nil, err
		}
		toys = append(toys, toy)
	}
	return toys, rows.Err()
}

func (r *ToyRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM toys").Scan(&count)
	return count, err
}

func (r *ToyRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE toys")
	return err
}
