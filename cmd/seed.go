package cmd

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/toyfactory/heijunkasim/internal/factories"
	"github.com/toyfactory/heijunkasim/internal/models"
	"github.com/toyfactory/heijunkasim/internal/repositories/file"
	"github.com/toyfactory/heijunkasim/internal/repositories/postgres"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generates demo orders, toys, materials and suppliers",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := runSeed(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Seed failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().Int("seed-orders", 25, "Number of demo orders")
	seedCmd.Flags().Int("seed-toys", 8, "Number of demo toys")
	seedCmd.Flags().Int("seed-materials", 12, "Number of demo raw materials")
	seedCmd.Flags().Int("seed-suppliers", 6, "Number of demo suppliers")
}

func runSeed(cfg *models.Config) error {
	if cfg.Seed != 0 {
		rand.Seed(int64(cfg.Seed))
	}

	counts := seedCounts(cfg)
	dataset := generateDataset(counts)

	switch cfg.InputSource {
	case "postgres":
		return seedPostgres(cfg, dataset)
	case "file", "":
		if err := file.SaveDataset(cfg.InputFile, dataset); err != nil {
			return err
		}
		log.Printf("Wrote %d orders, %d toys, %d materials, %d suppliers to %s",
			len(dataset.Orders), len(dataset.Toys), len(dataset.RawMaterials), len(dataset.Suppliers), cfg.InputFile)
		return nil
	default:
		return fmt.Errorf("unsupported input source: %s", cfg.InputSource)
	}
}

type datasetCounts struct {
	orders, toys, materials, suppliers int
}

func seedCounts(cfg *models.Config) datasetCounts {
	counts := datasetCounts{
		orders:    cfg.SeedOrders,
		toys:      cfg.SeedToys,
		materials: cfg.SeedMaterials,
		suppliers: cfg.SeedSuppliers,
	}
	if counts.orders <= 0 {
		counts.orders = 25
	}
	if counts.toys <= 0 {
		counts.toys = 8
	}
	if counts.materials <= 0 {
		counts.materials = 12
	}
	if counts.suppliers <= 0 {
		counts.suppliers = 6
	}
	return counts
}

// generateDataset builds materials first, then toys whose BOMs reference
// them, then orders that reference toys by name, so every cross-entity
// reference in the demo data resolves.
func generateDataset(counts datasetCounts) *file.Dataset {
	materialFactory := &factories.RawMaterialFactory{}
	toyFactory := &factories.ToyFactory{}
	orderFactory := &factories.OrderFactory{}
	supplierFactory := &factories.SupplierFactory{}

	dataset := &file.Dataset{}
	for i := 0; i < counts.materials; i++ {
		dataset.RawMaterials = append(dataset.RawMaterials, materialFactory.CreateRawMaterial())
	}
	for i := 0; i < counts.toys; i++ {
		dataset.Toys = append(dataset.Toys, toyFactory.CreateToy(dataset.RawMaterials))
	}
	for i := 0; i < counts.orders; i++ {
		dataset.Orders = append(dataset.Orders, orderFactory.CreateOrder(dataset.Toys))
	}
	for i := 0; i < counts.suppliers; i++ {
		dataset.Suppliers = append(dataset.Suppliers, supplierFactory.CreateSupplier(dataset.RawMaterials))
	}
	return dataset
}

func seedPostgres(cfg *models.Config, dataset *file.Dataset) error {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.ConnString())
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer pool.Close()

	total := len(dataset.Orders) + len(dataset.Toys) + len(dataset.RawMaterials) + len(dataset.Suppliers)
	bar := progressbar.Default(int64(total), "seeding")

	materialRepo := postgres.NewRawMaterialRepository(pool)
	if err := materialRepo.DeleteAll(ctx); err != nil {
		return err
	}
	for _, material := range dataset.RawMaterials {
		if err := materialRepo.Create(ctx, &material); err != nil {
			return err
		}
		bar.Add(1)
	}

	toyRepo := postgres.NewToyRepository(pool)
	if err := toyRepo.DeleteAll(ctx); err != nil {
		return err
	}
	for _, toy := range dataset.Toys {
		if err := toyRepo.Create(ctx, &toy); err != nil {
			return err
		}
		bar.Add(1)
	}

	orderRepo := postgres.NewOrderRepository(pool)
	if err := orderRepo.DeleteAll(ctx); err != nil {
		return err
	}
	for _, order := range dataset.Orders {
		if err := orderRepo.Create(ctx, &order); err != nil {
			return err
		}
		bar.Add(1)
	}

	supplierRepo := postgres.NewSupplierRepository(pool)
	if err := supplierRepo.DeleteAll(ctx); err != nil {
		return err
	}
	for _, supplier := range dataset.Suppliers {
		if err := supplierRepo.Create(ctx, &supplier); err != nil {
			return err
		}
		bar.Add(1)
	}

	log.Printf("Seeded %d rows into postgres", total)
	return nil
}
