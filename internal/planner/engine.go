package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/toyfactory/heijunkasim/internal/models"
)

// DateLayout is the key format for every per-day mapping in a
// SimulationResult.
const DateLayout = "2006-01-02"

// Day returns t truncated to its calendar date in UTC. All leveling windows
// and inventory projections run on whole days.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Simulate levels the given orders into a day-by-day production plan,
// derives raw material consumption from each toy's bill-of-materials, and
// projects inventory depletion from the anchor date forward. It returns the
// result plus an explanation log narrating every arithmetic step.
//
// The pass is best-effort: an order whose ToyType matches no toy name is
// skipped outright, as is a BOM line whose material id is unknown. Inputs
// are never mutated and the engine holds no state between runs.
func Simulate(orders []models.Order, toys []models.Toy, rawMaterials []models.RawMaterial, anchorDate time.Time) (*models.SimulationResult, []string) {
	anchor := Day(anchorDate)
	anchorKey := anchor.Format(DateLayout)

	// Orders are leveled in delivery order. The sort is stable so that
	// same-day orders keep their input order run to run.
	sorted := make([]models.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DeliveryDate.Before(sorted[j].DeliveryDate)
	})

	result := models.NewSimulationResult()

	// The anchor day carries the starting stock of every known material;
	// later days inherit from it as the order loop touches them.
	result.InventoryLevels[anchorKey] = make(map[string]float64, len(rawMaterials))
	for _, material := range rawMaterials {
		result.InventoryLevels[anchorKey][material.Name] = material.Inventory
	}

	log := []string{"Heijunka Box Calculation Explanation:", ""}

	end := anchor
	for _, order := range sorted {
		toy := findToy(toys, order.ToyType)
		if toy == nil {
			continue
		}

		daysUntilDelivery := daysUntil(anchor, Day(order.DeliveryDate))
		dailyProduction := ceilDiv(order.Quantity, daysUntilDelivery)

		log = append(log,
			fmt.Sprintf("Order: %d %s for %s, due on %s", order.Quantity, order.ToyType, order.RetailerName, Day(order.DeliveryDate).Format(DateLayout)),
			fmt.Sprintf("Days until delivery: %d", daysUntilDelivery),
			fmt.Sprintf("Daily production: %d (%d / %d days, rounded up)", dailyProduction, order.Quantity, daysUntilDelivery),
			"",
		)

		for i := 0; i < daysUntilDelivery; i++ {
			day := anchor.AddDate(0, 0, i)
			if day.After(end) {
				end = day
			}
			key := day.Format(DateLayout)

			if result.ProductionPlan[key] == nil {
				result.ProductionPlan[key] = make(map[string]int)
			}
			result.ProductionPlan[key][order.ToyType] += dailyProduction

			for _, materialID := range sortedKeys(toy.RawMaterials) {
				material := findMaterial(rawMaterials, materialID)
				if material == nil {
					continue
				}
				perUnit := toy.RawMaterials[materialID]
				required := perUnit * float64(dailyProduction)

				if result.MaterialRequirements[key] == nil {
					result.MaterialRequirements[key] = make(map[string]float64)
				}
				result.MaterialRequirements[key][material.Name] += required

				previous := carriedLevel(result.InventoryLevels, day, anchor, material.Name)
				next := previous - required
				if next < 0 {
					next = 0
				}
				if result.InventoryLevels[key] == nil {
					result.InventoryLevels[key] = make(map[string]float64)
				}
				result.InventoryLevels[key][material.Name] = next

				log = append(log,
					"",
					fmt.Sprintf("Date: %s", key),
					fmt.Sprintf("Production: %d %s", dailyProduction, order.ToyType),
					fmt.Sprintf("Calculation: %d total / %d days = %d per day", order.Quantity, daysUntilDelivery, dailyProduction),
					fmt.Sprintf("Material: %s, Required: %s (%s per toy * %d toys)", material.Name, formatQty(required), formatQty(perUnit), dailyProduction),
					fmt.Sprintf("Inventory: %s, Previous: %s, New: %s", material.Name, formatQty(previous), formatQty(next)),
				)
			}
		}
	}

	fillDateRange(result, rawMaterials, anchor, end)
	log = appendSummaries(log, result)

	return result, log
}

// fillDateRange completes the contiguous [anchor, end] range: every date key
// exists in all three mappings, and every known material has an inventory
// entry on every day, carried forward from the previous day or zero.
func fillDateRange(result *models.SimulationResult, rawMaterials []models.RawMaterial, anchor, end time.Time) {
	for day := anchor; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(DateLayout)
		if result.ProductionPlan[key] == nil {
			result.ProductionPlan[key] = make(map[string]int)
		}
		if result.MaterialRequirements[key] == nil {
			result.MaterialRequirements[key] = make(map[string]float64)
		}
		if result.InventoryLevels[key] == nil {
			result.InventoryLevels[key] = make(map[string]float64)
		}
		for _, material := range rawMaterials {
			if _, ok := result.InventoryLevels[key][material.Name]; !ok {
				result.InventoryLevels[key][material.Name] = carriedLevel(result.InventoryLevels, day, anchor, material.Name)
			}
		}
	}
}

// carriedLevel resolves a material's inventory level on the given day by
// walking back toward the anchor until a recorded value is found. The anchor
// day is seeded with every material's starting stock, so the walk terminates
// there with zero only for materials the engine has never seen.
func carriedLevel(levels models.InventoryLevels, day, anchor time.Time, materialName string) float64 {
	for d := day; !d.Before(anchor); d = d.AddDate(0, 0, -1) {
		if value, ok := levels[d.Format(DateLayout)][materialName]; ok {
			return value
		}
	}
	return 0
}

// daysUntil counts the whole days from anchor to delivery. An order due on
// the anchor date or earlier still gets a one-day window: same-day demand is
// produced in full, never dropped.
func daysUntil(anchor, delivery time.Time) int {
	days := int(delivery.Sub(anchor).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

func ceilDiv(quantity, days int) int {
	return (quantity + days - 1) / days
}

func findToy(toys []models.Toy, name string) *models.Toy {
	for i := range toys {
		if toys[i].Name == name {
			return &toys[i]
		}
	}
	return nil
}

func findMaterial(rawMaterials []models.RawMaterial, id string) *models.RawMaterial {
	for i := range rawMaterials {
		if rawMaterials[i].ID == id {
			return &rawMaterials[i]
		}
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
