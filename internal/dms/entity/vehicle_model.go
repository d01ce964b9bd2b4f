package entity

// FuelType 燃料类型
const (
	FuelPetrol   = "Petrol"
	FuelDiesel   = "Diesel"
	FuelElectric = "Electric"
	FuelHybrid   = "Hybrid"
	FuelCNG      = "CNG"
)

// Transmission 变速箱类型
const (
	TransmissionManual    = "Manual"
	TransmissionAutomatic = "Automatic"
	TransmissionCVT       = "CVT"
	TransmissionAMT       = "AMT"
)

// VehicleModel 车型
type VehicleModel struct {
	Base
	ModelName       string  `json:"model_name" gorm:"size:200;not null"`
	Variant         string  `json:"variant" gorm:"size:50"`
	FuelType        string  `json:"fuel_type" gorm:"size:20"`
	Mileage         float64 `json:"mileage"` // km/l
	Transmission    string  `json:"transmission" gorm:"size:20"`
	EngineCapacity  string  `json:"engine_capacity" gorm:"size:20"`
	PowerOutput     string  `json:"power_output" gorm:"size:20"`
	Torque          string  `json:"torque" gorm:"size:20"`
	SeatingCapacity int     `json:"seating_capacity"`
	BootSpace       int     `json:"boot_space"`       // 升
	GroundClearance int     `json:"ground_clearance"` // mm
	Features        string  `json:"features" gorm:"type:text"`
}

func (VehicleModel) TableName() string {
	return "dms_models"
}

func (m *VehicleModel) StatusValue() string { return "" }
