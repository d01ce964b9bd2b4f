package service

import (
	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"github.com/bitfantasy/nimo-dms/internal/dms/resolver"
	"github.com/bitfantasy/nimo-dms/internal/dms/store"
	"github.com/bitfantasy/nimo-dms/internal/dms/validation"
	"github.com/shopspring/decimal"
)

// ColorRequest 车身颜色表单
type ColorRequest struct {
	ColorName           string          `json:"color_name" binding:"min=2"`
	ModelID             string          `json:"model_id" binding:"min=1"`
	ColorCode           string          `json:"color_code" binding:"min=1"`
	ApproxAvailableDate string          `json:"approx_available_date" binding:"min=1"`
	IsAvailable         bool            `json:"is_available"`
	AdditionalCost      decimal.Decimal `json:"additional_cost" binding:"gte=0"`
	Description         string          `json:"description"`
}

// ApplyDefaults 未提交 is_available 时视为可售
func (r *ColorRequest) ApplyDefaults(input map[string]any) {
	if _, ok := input["is_available"]; !ok {
		r.IsAvailable = true
	}
}

var colorMessages = validation.Messages{
	"color_name":            "Color name must be at least 2 characters",
	"model_id":              "Please select a model",
	"color_code":            "Color code is required",
	"approx_available_date": "Approximate available date is required",
	"additional_cost":       "Additional cost must be a positive number",
}

func colorDescriptor(r *refs) Descriptor[*entity.Color, *ColorRequest] {
	return Descriptor[*entity.Color, *ColorRequest]{
		Name:     "colors",
		Format:   store.IDFormat{Prefix: "COLOR", Width: 3},
		Messages: colorMessages,
		Search: func(c *entity.Color) []string {
			return []string{c.ColorName, c.ModelName, c.ColorCode}
		},
		Label:  func(c *entity.Color) string { return c.ColorName },
		Parent: func(c *entity.Color) string { return c.ModelID },
		Columns: []Column{
			{Key: "id", Title: "Color ID", Width: 12},
			{Key: "color_name", Title: "Color", Width: 20},
			{Key: "model_name", Title: "Model", Width: 24},
			{Key: "color_code", Title: "Code", Width: 10},
			{Key: "approx_available_date", Title: "Available From", Width: 14},
			{Key: "is_available", Title: "Available", Width: 10},
			{Key: "additional_cost", Title: "Additional Cost", Width: 15},
			{Key: "description", Title: "Description", Width: 30},
		},
		NewRequest: func() *ColorRequest { return &ColorRequest{} },
		Build: func(req *ColorRequest) *entity.Color {
			return &entity.Color{
				ColorName:           req.ColorName,
				ModelID:             req.ModelID,
				ModelName:           resolver.Field(r.models, req.ModelID, modelName),
				ColorCode:           req.ColorCode,
				ApproxAvailableDate: req.ApproxAvailableDate,
				IsAvailable:         req.IsAvailable,
				AdditionalCost:      req.AdditionalCost,
				Description:         req.Description,
			}
		},
	}
}
