package planner

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/toyfactory/heijunkasim/internal/models"
)

// appendSummaries adds the three closing sections of the explanation log:
// the daily production plan, the daily material requirements (both skipping
// zero entries), and the full daily inventory levels.
func appendSummaries(log []string, result *models.SimulationResult) []string {
	dates := result.Dates()
	sort.Strings(dates)

	log = append(log, "", "Daily Production Plan:")
	for _, date := range dates {
		var parts []string
		for _, toy := range sortedPlanKeys(result.ProductionPlan[date]) {
			if quantity := result.ProductionPlan[date][toy]; quantity > 0 {
				parts = append(parts, fmt.Sprintf("%d %s", quantity, toy))
			}
		}
		if len(parts) == 0 {
			log = append(log, fmt.Sprintf("%s: No production", date))
		} else {
			log = append(log, fmt.Sprintf("%s: %s", date, strings.Join(parts, ", ")))
		}
	}

	log = append(log, "", "Material Requirements:")
	for _, date := range dates {
		var parts []string
		for _, name := range sortedKeys(result.MaterialRequirements[date]) {
			if quantity := result.MaterialRequirements[date][name]; quantity > 0 {
				parts = append(parts, fmt.Sprintf("%s %s", formatQty(quantity), name))
			}
		}
		if len(parts) == 0 {
			log = append(log, fmt.Sprintf("%s: No materials required", date))
		} else {
			log = append(log, fmt.Sprintf("%s: %s", date, strings.Join(parts, ", ")))
		}
	}

	log = append(log, "", "Inventory Levels:")
	for _, date := range dates {
		var parts []string
		for _, name := range sortedKeys(result.InventoryLevels[date]) {
			parts = append(parts, fmt.Sprintf("%s: %s", name, formatQty(result.InventoryLevels[date][name])))
		}
		log = append(log, fmt.Sprintf("%s: %s", date, strings.Join(parts, ", ")))
	}

	return log
}

// RenderExplanation joins the log lines into the plain-text report handed to
// the presentation layer.
func RenderExplanation(log []string) string {
	return strings.Join(log, "\n") + "\n"
}

// formatQty renders a quantity without trailing zeros, so whole-number
// amounts read as integers ("8", not "8.000000").
func formatQty(quantity float64) string {
	return strconv.FormatFloat(quantity, 'f', -1, 64)
}

func sortedPlanKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
