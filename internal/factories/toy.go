package factories

import (
	"fmt"
	"math/rand"

	"github.com/lucsky/cuid"
	"github.com/toyfactory/heijunkasim/internal/models"
)

type ToyFactory struct{}

// CreateToy builds a toy with a bill-of-materials drawn from the given
// materials, 1 to 4 lines of 1-10 units each.
func (tf *ToyFactory) CreateToy(rawMaterials []models.RawMaterial) models.Toy {
	bom := make(map[string]float64)
	if len(rawMaterials) > 0 {
		lineCount := rand.Intn(4) + 1
		for i := 0; i < lineCount; i++ {
			material := rawMaterials[rand.Intn(len(rawMaterials))]
			bom[material.ID] = float64(fake.IntBetween(1, 10))
		}
	}

	return models.Toy{
		ID:           cuid.New(),
		Name:         generateRandomToyName(),
		AssemblyTime: fake.Float64(0, 5, 90),
		RawMaterials: bom,
	}
}

func generateRandomToyName() string {
	kinds := []string{"Car", "Robot", "Doll", "Kite", "Train", "Puzzle", "Teddy Bear", "Rocket", "Boat", "Drum"}
	adjectives := []string{"Turbo", "Mini", "Giant", "Classic", "Magic", "Wooden", "Deluxe", "Pocket"}
	return fmt.Sprintf("%s %s", adjectives[rand.Intn(len(adjectives))], kinds[rand.Intn(len(kinds))])
}
