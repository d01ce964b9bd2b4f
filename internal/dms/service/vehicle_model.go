package service

import (
	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"github.com/bitfantasy/nimo-dms/internal/dms/store"
	"github.com/bitfantasy/nimo-dms/internal/dms/validation"
)

// ModelRequest 车型表单
type ModelRequest struct {
	ModelName       string  `json:"model_name" binding:"min=2"`
	Variant         string  `json:"variant" binding:"min=1"`
	FuelType        string  `json:"fuel_type" binding:"oneof=Petrol Diesel Electric Hybrid CNG"`
	Mileage         float64 `json:"mileage" binding:"gte=0"`
	Transmission    string  `json:"transmission" binding:"oneof=Manual Automatic CVT AMT"`
	EngineCapacity  string  `json:"engine_capacity" binding:"min=1"`
	PowerOutput     string  `json:"power_output" binding:"min=1"`
	Torque          string  `json:"torque" binding:"min=1"`
	SeatingCapacity int     `json:"seating_capacity" binding:"gte=1"`
	BootSpace       int     `json:"boot_space" binding:"gte=0"`
	GroundClearance int     `json:"ground_clearance" binding:"gte=0"`
	Features        string  `json:"features"`
}

var modelMessages = validation.Messages{
	"model_name":       "Model name must be at least 2 characters",
	"variant":          "Variant is required",
	"fuel_type":        "Fuel type must be one of Petrol, Diesel, Electric, Hybrid, CNG",
	"mileage":          "Mileage must be a positive number",
	"transmission":     "Transmission must be one of Manual, Automatic, CVT, AMT",
	"engine_capacity":  "Engine capacity is required",
	"power_output":     "Power output is required",
	"torque":           "Torque is required",
	"seating_capacity": "Seating capacity must be at least 1",
	"boot_space":       "Boot space must be a positive number",
	"ground_clearance": "Ground clearance must be a positive number",
}

func modelDescriptor() Descriptor[*entity.VehicleModel, *ModelRequest] {
	return Descriptor[*entity.VehicleModel, *ModelRequest]{
		Name:     "models",
		Format:   store.IDFormat{Prefix: "MODEL", Width: 3},
		Messages: modelMessages,
		Search: func(m *entity.VehicleModel) []string {
			return []string{m.ModelName, m.Variant, m.FuelType}
		},
		Label: func(m *entity.VehicleModel) string {
			return m.ModelName + " " + m.Variant
		},
		Columns: []Column{
			{Key: "id", Title: "Model ID", Width: 12},
			{Key: "model_name", Title: "Model", Width: 24},
			{Key: "variant", Title: "Variant", Width: 10},
			{Key: "fuel_type", Title: "Fuel", Width: 10},
			{Key: "mileage", Title: "Mileage (km/l)", Width: 14},
			{Key: "transmission", Title: "Transmission", Width: 14},
			{Key: "engine_capacity", Title: "Engine", Width: 10},
			{Key: "power_output", Title: "Power", Width: 10},
			{Key: "torque", Title: "Torque", Width: 10},
			{Key: "seating_capacity", Title: "Seats", Width: 8},
			{Key: "boot_space", Title: "Boot Space (L)", Width: 14},
			{Key: "ground_clearance", Title: "Ground Clearance (mm)", Width: 20},
			{Key: "features", Title: "Features", Width: 40},
		},
		NewRequest: func() *ModelRequest { return &ModelRequest{} },
		Build: func(r *ModelRequest) *entity.VehicleModel {
			return &entity.VehicleModel{
				ModelName:       r.ModelName,
				Variant:         r.Variant,
				FuelType:        r.FuelType,
				Mileage:         r.Mileage,
				Transmission:    r.Transmission,
				EngineCapacity:  r.EngineCapacity,
				PowerOutput:     r.PowerOutput,
				Torque:          r.Torque,
				SeatingCapacity: r.SeatingCapacity,
				BootSpace:       r.BootSpace,
				GroundClearance: r.GroundClearance,
				Features:        r.Features,
			}
		},
	}
}
