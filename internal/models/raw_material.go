package models

// RawMaterial is a purchasable input with its stock on hand. Inventory is the
// level as of the simulation anchor date; the planner projects depletion from
// it without mutating the record.
type RawMaterial struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	Inventory float64 `json:"inventory"`
}
