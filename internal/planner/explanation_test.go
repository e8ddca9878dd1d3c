package planner

import (
	"strings"
	"testing"

	"github.com/toyfactory/heijunkasim/internal/models"
)

func TestFormatQty(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{8, "8"},
		{92, "92"},
		{2.5, "2.5"},
		{0, "0"},
		{0.125, "0.125"},
	}
	for _, tt := range tests {
		if got := formatQty(tt.in); got != tt.want {
			t.Errorf("formatQty(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAppendSummaries(t *testing.T) {
	result := models.NewSimulationResult()
	result.ProductionPlan["2026-03-01"] = map[string]int{"Car": 4}
	result.ProductionPlan["2026-03-02"] = map[string]int{}
	result.MaterialRequirements["2026-03-01"] = map[string]float64{"Bead": 8}
	result.MaterialRequirements["2026-03-02"] = map[string]float64{}
	result.InventoryLevels["2026-03-01"] = map[string]float64{"Bead": 92, "Paint": 25}
	result.InventoryLevels["2026-03-02"] = map[string]float64{"Bead": 92, "Paint": 25}

	text := RenderExplanation(appendSummaries(nil, result))

	for _, want := range []string{
		"Daily Production Plan:",
		"2026-03-01: 4 Car",
		"2026-03-02: No production",
		"Material Requirements:",
		"2026-03-01: 8 Bead",
		"2026-03-02: No materials required",
		"Inventory Levels:",
		"2026-03-01: Bead: 92, Paint: 25",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q in:\n%s", want, text)
		}
	}

	// Dates come out chronologically regardless of map iteration order.
	if strings.Index(text, "2026-03-01: 4 Car") > strings.Index(text, "2026-03-02: No production") {
		t.Error("production plan dates not in chronological order")
	}
}

func TestAppendSummaries_SkipsZeroEntries(t *testing.T) {
	result := models.NewSimulationResult()
	result.ProductionPlan["2026-03-01"] = map[string]int{"Car": 0}
	result.MaterialRequirements["2026-03-01"] = map[string]float64{"Bead": 0}
	result.InventoryLevels["2026-03-01"] = map[string]float64{"Bead": 0}

	text := RenderExplanation(appendSummaries(nil, result))

	if !strings.Contains(text, "2026-03-01: No production") {
		t.Error("zero-quantity toy entry should render as No production")
	}
	if !strings.Contains(text, "2026-03-01: No materials required") {
		t.Error("zero-quantity material entry should render as No materials required")
	}
	// Inventory keeps zeros: stockouts stay visible.
	if !strings.Contains(text, "2026-03-01: Bead: 0") {
		t.Error("inventory summary must include zero levels")
	}
}
