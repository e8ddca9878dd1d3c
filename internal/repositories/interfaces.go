package repositories

import (
	"context"

	"github.com/toyfactory/heijunkasim/internal/models"
)

type OrderRepository interface {
	BulkCreate(ctx context.Context, orders []models.Order) error
	Create(ctx context.Context, order *models.Order) error
	GetAll(ctx context.Context) ([]models.Order, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type ToyRepository interface {
	BulkCreate(ctx context.Context, toys []models.Toy) error
	Create(ctx context.Context, toy *models.Toy) error
	GetAll(ctx context.Context) ([]models.Toy, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type RawMaterialRepository interface {
	BulkCreate(ctx context.Context, rawMaterials []models.RawMaterial) error
	Create(ctx context.Context, rawMaterial *models.RawMaterial) error
	GetAll(ctx context.Context) ([]models.RawMaterial, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type SupplierRepository interface {
	BulkCreate(ctx context.Context, suppliers []models.Supplier) error
	Create(ctx context.Context, supplier *models.Supplier) error
	GetAll(ctx context.Context) ([]models.Supplier, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
