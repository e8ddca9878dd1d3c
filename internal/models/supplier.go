package models

// Supplier delivery schedules.
const (
	DeliveryScheduleDaily  = "daily"
	DeliveryScheduleWeekly = "weekly"
)

// Supplier records who supplies a raw material and on what cadence. The
// planner does not consume suppliers yet; they are kept for lead-time-aware
// scheduling.
type Supplier struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	MaterialSupplied string `json:"material_supplied"`
	LeadTime         int    `json:"lead_time"`
	DeliverySchedule string `json:"delivery_schedule"`
}
