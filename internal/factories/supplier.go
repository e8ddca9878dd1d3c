package factories

import (
	"math/rand"

	"github.com/lucsky/cuid"
	"github.com/toyfactory/heijunkasim/internal/models"
)

type SupplierFactory struct{}

// CreateSupplier builds a supplier for one of the given materials. Lead
// times are in days; they are recorded for future lead-time-aware
// scheduling.
func (sf *SupplierFactory) CreateSupplier(rawMaterials []models.RawMaterial) models.Supplier {
	materialSupplied := ""
	if len(rawMaterials) > 0 {
		materialSupplied = rawMaterials[rand.Intn(len(rawMaterials))].ID
	}

	schedule := models.DeliveryScheduleDaily
	if fake.Bool() {
		schedule = models.DeliveryScheduleWeekly
	}

	return models.Supplier{
		ID:               cuid.New(),
		Name:             fake.Company().Name(),
		MaterialSupplied: materialSupplied,
		LeadTime:         fake.IntBetween(1, 14),
		DeliverySchedule: schedule,
	}
}
