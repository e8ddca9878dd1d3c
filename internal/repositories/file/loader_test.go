package file

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/toyfactory/heijunkasim/internal/models"
)

func TestLoadDataset_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	want := &Dataset{
		Orders: []models.Order{
			{
				ID:           "order-1",
				RetailerName: "Toy Kingdom",
				ToyType:      "Car",
				Quantity:     20,
				DeliveryDate: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
			},
		},
		Toys: []models.Toy{
			{ID: "toy-1", Name: "Car", AssemblyTime: 12, RawMaterials: map[string]float64{"mat-1": 2}},
		},
		RawMaterials: []models.RawMaterial{
			{ID: "mat-1", Name: "Bead", Unit: "pcs", Inventory: 100},
		},
		Suppliers: []models.Supplier{
			{ID: "sup-1", Name: "Bead Co", MaterialSupplied: "mat-1", LeadTime: 3, DeliverySchedule: models.DeliveryScheduleWeekly},
		},
	}

	if err := SaveDataset(path, want); err != nil {
		t.Fatalf("SaveDataset failed: %v", err)
	}

	got, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset failed: %v", err)
	}

	if len(got.Orders) != 1 || got.Orders[0].ToyType != "Car" || got.Orders[0].Quantity != 20 {
		t.Errorf("orders did not round-trip: %+v", got.Orders)
	}
	if !got.Orders[0].DeliveryDate.Equal(want.Orders[0].DeliveryDate) {
		t.Errorf("delivery date did not round-trip: %v", got.Orders[0].DeliveryDate)
	}
	if len(got.Toys) != 1 || got.Toys[0].RawMaterials["mat-1"] != 2 {
		t.Errorf("toy BOM did not round-trip: %+v", got.Toys)
	}
	if len(got.RawMaterials) != 1 || got.RawMaterials[0].Inventory != 100 {
		t.Errorf("raw materials did not round-trip: %+v", got.RawMaterials)
	}
	if len(got.Suppliers) != 1 || got.Suppliers[0].DeliverySchedule != "weekly" {
		t.Errorf("suppliers did not round-trip: %+v", got.Suppliers)
	}
}

func TestLoadDataset_MissingCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := SaveDataset(path, &Dataset{}); err != nil {
		t.Fatalf("SaveDataset failed: %v", err)
	}

	got, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset failed: %v", err)
	}
	if len(got.Orders) != 0 || len(got.Toys) != 0 || len(got.RawMaterials) != 0 || len(got.Suppliers) != 0 {
		t.Errorf("expected empty collections, got %+v", got)
	}
}

func TestLoadDataset_MissingFile(t *testing.T) {
	if _, err := LoadDataset(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error for a missing dataset file")
	}
}
