package models

import "time"

// Order is a retailer order for a quantity of one toy type, due on a
// delivery date. ToyType carries the toy's name, not its id; the planner
// resolves it against Toy.Name.
type Order struct {
	ID           string    `json:"id"`
	RetailerName string    `json:"retailer_name"`
	ToyType      string    `json:"toy_type"`
	Quantity     int       `json:"quantity"`
	DeliveryDate time.Time `json:"delivery_date"`
}
