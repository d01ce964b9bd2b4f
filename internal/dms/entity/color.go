package entity

import "github.com/shopspring/decimal"

// ColorStatus 颜色可售状态（由 IsAvailable 派生）
const (
	ColorStatusAvailable   = "available"
	ColorStatusUnavailable = "unavailable"
)

// Color 车型颜色
type Color struct {
	Base
	ColorName           string          `json:"color_name" gorm:"size:100;not null"`
	ModelID             string          `json:"model_id" gorm:"size:32;index"`
	ModelName           string          `json:"model_name" gorm:"size:200"` // 冗余
	ColorCode           string          `json:"color_code" gorm:"size:20"`
	ApproxAvailableDate string          `json:"approx_available_date" gorm:"size:10"`
	IsAvailable         bool            `json:"is_available"`
	AdditionalCost      decimal.Decimal `json:"additional_cost" gorm:"type:decimal(12,2);default:0"`
	Description         string          `json:"description" gorm:"size:500"`
}

func (Color) TableName() string {
	return "dms_colors"
}

func (c *Color) StatusValue() string {
	if c.IsAvailable {
		return ColorStatusAvailable
	}
	return ColorStatusUnavailable
}
