package factories

import (
	"math/rand"
	"time"

	"github.com/lucsky/cuid"
	"github.com/toyfactory/heijunkasim/internal/models"
)

type OrderFactory struct{}

// CreateOrder builds a retailer order for one of the given toys, due 0 to
// 21 days from now. ToyType carries the toy name, which is how orders
// reference toys throughout the system.
func (of *OrderFactory) CreateOrder(toys []models.Toy) models.Order {
	toyType := generateRandomToyName()
	if len(toys) > 0 {
		toyType = toys[rand.Intn(len(toys))].Name
	}

	return models.Order{
		ID:           cuid.New(),
		RetailerName: fake.Company().Name(),
		ToyType:      toyType,
		Quantity:     fake.IntBetween(1, 200),
		DeliveryDate: time.Now().AddDate(0, 0, rand.Intn(22)),
	}
}
