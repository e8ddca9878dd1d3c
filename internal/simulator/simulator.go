package simulator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/toyfactory/heijunkasim/internal/models"
	"github.com/toyfactory/heijunkasim/internal/output"
	"github.com/toyfactory/heijunkasim/internal/planner"
	"github.com/toyfactory/heijunkasim/internal/repositories/file"
	"github.com/toyfactory/heijunkasim/internal/repositories/postgres"
)

// Simulator wires the input collections, the leveling engine, and the output
// destinations together. One Run is one complete planning pass anchored at
// the current date; a new run replaces the stored result in full.
type Simulator struct {
	Config       *models.Config
	Orders       []models.Order
	Toys         []models.Toy
	RawMaterials []models.RawMaterial
	Suppliers    []models.Supplier
}

func NewSimulator(config *models.Config) *Simulator {
	return &Simulator{Config: config}
}

func (s *Simulator) Run() error {
	ctx := context.Background()

	if err := s.loadInputs(ctx); err != nil {
		return fmt.Errorf("failed to load input collections: %w", err)
	}

	anchor := time.Now()
	result, explanationLog := planner.Simulate(s.Orders, s.Toys, s.RawMaterials, anchor)

	dest := s.determineOutputDestination()
	defer dest.Close()

	runAt := anchor.Unix()
	if err := s.emitRows(dest, result, runAt); err != nil {
		return fmt.Errorf("failed to emit result rows: %w", err)
	}

	explanation := planner.RenderExplanation(explanationLog)
	if err := s.writeExplanation(explanation); err != nil {
		return fmt.Errorf("failed to write explanation: %w", err)
	}

	if s.Config.InputSource == "postgres" {
		if err := s.storeResult(ctx, result, explanation, anchor); err != nil {
			return fmt.Errorf("failed to store simulation result: %w", err)
		}
	}

	log.Printf("Simulation complete: %d orders leveled over %d days", len(s.Orders), len(result.ProductionPlan))
	return nil
}

// loadInputs takes an immutable snapshot of the four collections. The
// planner never sees the repositories themselves.
func (s *Simulator) loadInputs(ctx context.Context) error {
	switch s.Config.InputSource {
	case "postgres":
		pool, err := pgxpool.New(ctx, s.Config.Database.ConnString())
		if err != nil {
			return fmt.Errorf("error connecting to database: %w", err)
		}
		defer pool.Close()

		orders, err := postgres.NewOrderRepository(pool).GetAll(ctx)
		if err != nil {
			return err
		}
		toys, err := postgres.NewToyRepository(pool).GetAll(ctx)
		if err != nil {
			return err
		}
		rawMaterials, err := postgres.NewRawMaterialRepository(pool).GetAll(ctx)
		if err != nil {
			return err
		}
		suppliers, err := postgres.NewSupplierRepository(pool).GetAll(ctx)
		if err != nil {
			return err
		}
		s.Orders, s.Toys, s.RawMaterials, s.Suppliers = orders, toys, rawMaterials, suppliers
	case "file", "":
		dataset, err := file.LoadDataset(s.Config.InputFile)
		if err != nil {
			return err
		}
		s.Orders = dataset.Orders
		s.Toys = dataset.Toys
		s.RawMaterials = dataset.RawMaterials
		s.Suppliers = dataset.Suppliers
	default:
		return fmt.Errorf("unsupported input source: %s", s.Config.InputSource)
	}
	return nil
}

// emitRows flattens the three result mappings into one JSON message per
// (date, name) cell, in chronological then lexical order.
func (s *Simulator) emitRows(dest OutputDestination, result *models.SimulationResult, runAt int64) error {
	dates := result.Dates()
	sort.Strings(dates)

	unitFor := make(map[string]string, len(s.RawMaterials))
	for _, material := range s.RawMaterials {
		unitFor[material.Name] = material.Unit
	}

	for _, date := range dates {
		for _, toyName := range sortedIntKeys(result.ProductionPlan[date]) {
			entry := ProductionPlanEntry{
				RunAt:    runAt,
				Date:     date,
				ToyName:  toyName,
				Quantity: int64(result.ProductionPlan[date][toyName]),
			}
			if err := writeEntry(dest, TopicProductionPlan, entry); err != nil {
				return err
			}
		}
		for _, materialName := range sortedFloatKeys(result.MaterialRequirements[date]) {
			entry := MaterialRequirementEntry{
				RunAt:        runAt,
				Date:         date,
				MaterialName: materialName,
				Unit:         unitFor[materialName],
				Quantity:     result.MaterialRequirements[date][materialName],
			}
			if err := writeEntry(dest, TopicMaterialRequirements, entry); err != nil {
				return err
			}
		}
		for _, materialName := range sortedFloatKeys(result.InventoryLevels[date]) {
			entry := InventoryLevelEntry{
				RunAt:        runAt,
				Date:         date,
				MaterialName: materialName,
				Unit:         unitFor[materialName],
				Level:        result.InventoryLevels[date][materialName],
			}
			if err := writeEntry(dest, TopicInventoryLevels, entry); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeEntry(dest OutputDestination, topic string, entry interface{}) error {
	msg, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return dest.WriteMessage(topic, msg)
}

func (s *Simulator) writeExplanation(explanation string) error {
	if s.Config.ExplanationFile == "" {
		_, err := os.Stdout.WriteString(explanation)
		return err
	}
	return os.WriteFile(s.Config.ExplanationFile, []byte(explanation), 0644)
}

func (s *Simulator) storeResult(ctx context.Context, result *models.SimulationResult, explanation string, anchor time.Time) error {
	store, err := output.NewResultStore(s.Config.Database)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Save(ctx, result, explanation, anchor)
}

func sortedIntKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFloatKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
