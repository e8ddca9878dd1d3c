package models

// ProductionPlan maps date keys (YYYY-MM-DD) to toy name to units scheduled
// for that day.
type ProductionPlan map[string]map[string]int

// MaterialRequirements maps date keys to material name to the quantity
// consumed that day.
type MaterialRequirements map[string]map[string]float64

// InventoryLevels maps date keys to material name to the projected stock
// remaining at end of day. Levels are clamped at zero on shortfall.
type InventoryLevels map[string]map[string]float64

// SimulationResult is the full output of one leveling run. It replaces any
// previously stored result in full; there is no incremental update.
type SimulationResult struct {
	ProductionPlan       ProductionPlan       `json:"productionPlan"`
	MaterialRequirements MaterialRequirements `json:"materialRequirements"`
	InventoryLevels      InventoryLevels      `json:"inventoryLevels"`
}

// NewSimulationResult returns an empty result with all three maps allocated.
func NewSimulationResult() *SimulationResult {
	return &SimulationResult{
		ProductionPlan:       make(ProductionPlan),
		MaterialRequirements: make(MaterialRequirements),
		InventoryLevels:      make(InventoryLevels),
	}
}

// Dates returns the date keys present in the production plan, unsorted.
func (r *SimulationResult) Dates() []string {
	dates := make([]string, 0, len(r.ProductionPlan))
	for date := range r.ProductionPlan {
		dates = append(dates, date)
	}
	return dates
}
