package simulator

import (
	"fmt"
	"log"

	"github.com/xitongsys/parquet-go/schema"
)

// Topic names for the flattened per-day rows emitted after a run.
const (
	TopicProductionPlan       = "production_plan_entries"
	TopicMaterialRequirements = "material_requirement_entries"
	TopicInventoryLevels      = "inventory_level_entries"
)

// ProductionPlanEntry is one (date, toy) cell of the heijunka box.
type ProductionPlanEntry struct {
	RunAt    int64  `json:"runAt" parquet:"name=runAt,type=INT64"`
	Date     string `json:"date" parquet:"name=date,type=BYTE_ARRAY,convertedtype=UTF8"`
	ToyName  string `json:"toyName" parquet:"name=toyName,type=BYTE_ARRAY,convertedtype=UTF8"`
	Quantity int64  `json:"quantity" parquet:"name=quantity,type=INT64"`
}

// MaterialRequirementEntry is the quantity of one material consumed on one day.
type MaterialRequirementEntry struct {
	RunAt        int64   `json:"runAt" parquet:"name=runAt,type=INT64"`
	Date         string  `json:"date" parquet:"name=date,type=BYTE_ARRAY,convertedtype=UTF8"`
	MaterialName string  `json:"materialName" parquet:"name=materialName,type=BYTE_ARRAY,convertedtype=UTF8"`
	Unit         string  `json:"unit" parquet:"name=unit,type=BYTE_ARRAY,convertedtype=UTF8"`
	Quantity     float64 `json:"quantity" parquet:"name=quantity,type=DOUBLE"`
}

// InventoryLevelEntry is one material's projected stock at end of one day.
type InventoryLevelEntry struct {
	RunAt        int64   `json:"runAt" parquet:"name=runAt,type=INT64"`
	Date         string  `json:"date" parquet:"name=date,type=BYTE_ARRAY,convertedtype=UTF8"`
	MaterialName string  `json:"materialName" parquet:"name=materialName,type=BYTE_ARRAY,convertedtype=UTF8"`
	Unit         string  `json:"unit" parquet:"name=unit,type=BYTE_ARRAY,convertedtype=UTF8"`
	Level        float64 `json:"level" parquet:"name=level,type=DOUBLE"`
}

func GetSchema(topic string) (*schema.SchemaHandler, error) {
	var sh *schema.SchemaHandler
	var err error

	switch topic {
	case TopicProductionPlan:
		sh, err = schema.NewSchemaHandlerFromStruct(new(ProductionPlanEntry))
	case TopicMaterialRequirements:
		sh, err = schema.NewSchemaHandlerFromStruct(new(MaterialRequirementEntry))
	case TopicInventoryLevels:
		sh, err = schema.NewSchemaHandlerFromStruct(new(InventoryLevelEntry))
	default:
		return nil, fmt.Errorf("unknown topic: %s", topic)
	}

	if err != nil {
		log.Printf("Error creating schema for %s: %v", topic, err)
		return nil, fmt.Errorf("error creating schema for %s: %w", topic, err)
	}

	return sh, nil
}
