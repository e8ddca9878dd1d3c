package file

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/toyfactory/heijunkasim/internal/models"
)

// Dataset is a file-backed snapshot of the four input collections, the
// no-database way to feed the planner.
type Dataset struct {
	Orders       []models.Order       `json:"orders"`
	Toys         []models.Toy         `json:"toys"`
	RawMaterials []models.RawMaterial `json:"raw_materials"`
	Suppliers    []models.Supplier    `json:"suppliers"`
}

// LoadDataset reads a dataset file. Missing collections decode to empty
// slices; the planner handles those without error.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file %s: %w", path, err)
	}

	var dataset Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("failed to decode dataset file %s: %w", path, err)
	}

	return &dataset, nil
}

// SaveDataset writes the dataset as indented JSON, replacing any existing
// file.
func SaveDataset(path string, dataset *Dataset) error {
	data, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write dataset file %s: %w", path, err)
	}
	return nil
}
