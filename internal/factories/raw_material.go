package factories

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/toyfactory/heijunkasim/internal/models"
)

var fake = faker.New()

type RawMaterialFactory struct{}

func (rf *RawMaterialFactory) CreateRawMaterial() models.RawMaterial {
	return models.RawMaterial{
		ID:        cuid.New(),
		Name:      generateRandomMaterialName(),
		Unit:      generateRandomUnit(),
		Inventory: fake.Float64(0, 50, 2000),
	}
}

func generateRandomMaterialName() string {
	allMaterials := []string{"Bead", "Plastic Pellet", "Pine Board", "Steel Axle", "Rubber Wheel", "Cotton Stuffing", "Felt Sheet", "Acrylic Paint", "Gear", "Spring", "Magnet", "Copper Wire", "Birch Dowel", "Glass Eye", "Nylon Thread"}
	return allMaterials[rand.Intn(len(allMaterials))]
}

func generateRandomUnit() string {
	allUnits := []string{"pcs", "kg", "m", "l", "sheets"}
	return allUnits[rand.Intn(len(allUnits))]
}
