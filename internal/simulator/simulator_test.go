package simulator

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/toyfactory/heijunkasim/internal/models"
	"github.com/toyfactory/heijunkasim/internal/planner"
)

type memoryDestination struct {
	messages map[string][][]byte
}

func newMemoryDestination() *memoryDestination {
	return &memoryDestination{messages: make(map[string][][]byte)}
}

func (m *memoryDestination) WriteMessage(topic string, msg []byte) error {
	buf := make([]byte, len(msg))
	copy(buf, msg)
	m.messages[topic] = append(m.messages[topic], buf)
	return nil
}

func (m *memoryDestination) Close() error { return nil }

func TestEmitRows(t *testing.T) {
	anchor := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{ID: "o1", RetailerName: "Toy Kingdom", ToyType: "Car", Quantity: 20, DeliveryDate: anchor.AddDate(0, 0, 5)},
	}
	toys := []models.Toy{
		{ID: "t1", Name: "Car", RawMaterials: map[string]float64{"mat-bead": 2}},
	}
	rawMaterials := []models.RawMaterial{
		{ID: "mat-bead", Name: "Bead", Unit: "pcs", Inventory: 100},
	}

	result, _ := planner.Simulate(orders, toys, rawMaterials, anchor)

	sim := &Simulator{Config: &models.Config{}, RawMaterials: rawMaterials}
	dest := newMemoryDestination()
	if err := sim.emitRows(dest, result, anchor.Unix()); err != nil {
		t.Fatalf("emitRows failed: %v", err)
	}

	// One row per (date, name) cell: 5 days of Car production, 5 days of
	// Bead requirements, 5 days of Bead inventory.
	for _, topic := range []string{TopicProductionPlan, TopicMaterialRequirements, TopicInventoryLevels} {
		if got := len(dest.messages[topic]); got != 5 {
			t.Errorf("topic %s: expected 5 rows, got %d", topic, got)
		}
	}

	var first ProductionPlanEntry
	if err := json.Unmarshal(dest.messages[TopicProductionPlan][0], &first); err != nil {
		t.Fatalf("failed to decode production plan row: %v", err)
	}
	if first.Date != "2026-03-01" || first.ToyName != "Car" || first.Quantity != 4 {
		t.Errorf("unexpected first production row: %+v", first)
	}
	if first.RunAt != anchor.Unix() {
		t.Errorf("expected runAt %d, got %d", anchor.Unix(), first.RunAt)
	}

	var level InventoryLevelEntry
	if err := json.Unmarshal(dest.messages[TopicInventoryLevels][4], &level); err != nil {
		t.Fatalf("failed to decode inventory row: %v", err)
	}
	if level.Date != "2026-03-05" || level.Level != 60 || level.Unit != "pcs" {
		t.Errorf("unexpected final inventory row: %+v", level)
	}
}

func TestGetSchema(t *testing.T) {
	for _, topic := range []string{TopicProductionPlan, TopicMaterialRequirements, TopicInventoryLevels} {
		if _, err := GetSchema(topic); err != nil {
			t.Errorf("GetSchema(%s) failed: %v", topic, err)
		}
	}
	if _, err := GetSchema("bogus_topic"); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}
