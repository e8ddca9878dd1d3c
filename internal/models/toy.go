package models

// Toy describes a produced toy and its bill-of-materials. RawMaterials maps
// RawMaterial ids to the quantity consumed per unit produced. AssemblyTime is
// minutes per unit; recorded but not used for leveling.
type Toy struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	AssemblyTime float64            `json:"assembly_time"`
	RawMaterials map[string]float64 `json:"raw_materials"`
}
