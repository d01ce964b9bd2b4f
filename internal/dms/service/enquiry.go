package service

import (
	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"github.com/bitfantasy/nimo-dms/internal/dms/resolver"
	"github.com/bitfantasy/nimo-dms/internal/dms/store"
	"github.com/bitfantasy/nimo-dms/internal/dms/validation"
)

// EnquiryRequest 询价表单
type EnquiryRequest struct {
	CustomerID      string `json:"customer_id" binding:"min=1"`
	ModelID         string `json:"model_id" binding:"min=1"`
	Variant         string `json:"variant" binding:"min=1"`
	ColorID         string `json:"color_id" binding:"min=1"`
	AdditionalNotes string `json:"additional_notes"`
}

var enquiryMessages = validation.Messages{
	"customer_id": "Please select a customer",
	"model_id":    "Please select a model",
	"variant":     "Please select a variant",
	"color_id":    "Please select a color",
}

func enquiryDescriptor(r *refs) Descriptor[*entity.Enquiry, *EnquiryRequest] {
	return Descriptor[*entity.Enquiry, *EnquiryRequest]{
		Name:     "enquiries",
		Format:   store.IDFormat{Prefix: "ENQ", Width: 3},
		Messages: enquiryMessages,
		Search: func(e *entity.Enquiry) []string {
			return []string{e.CustomerName, e.ModelName, e.ID}
		},
		Label: func(e *entity.Enquiry) string {
			return e.ID + " - " + e.CustomerName + " (" + e.ModelName + ")"
		},
		Columns: []Column{
			{Key: "id", Title: "Enquiry ID", Width: 12},
			{Key: "customer_name", Title: "Customer", Width: 20},
			{Key: "model_name", Title: "Model", Width: 24},
			{Key: "variant", Title: "Variant", Width: 10},
			{Key: "color_name", Title: "Color", Width: 16},
			{Key: "approx_available_date", Title: "Available From", Width: 14},
			{Key: "status", Title: "Status", Width: 12},
			{Key: "additional_notes", Title: "Notes", Width: 30},
			{Key: "created_at", Title: "Created", Width: 12},
		},
		NewRequest: func() *EnquiryRequest { return &EnquiryRequest{} },
		Build: func(req *EnquiryRequest) *entity.Enquiry {
			e := &entity.Enquiry{
				CustomerID:      req.CustomerID,
				CustomerName:    resolver.Field(r.customers, req.CustomerID, customerName),
				ModelID:         req.ModelID,
				ModelName:       resolver.Field(r.models, req.ModelID, modelName),
				Variant:         req.Variant,
				ColorID:         req.ColorID,
				AdditionalNotes: req.AdditionalNotes,
				Status:          entity.EnquiryStatusPending,
			}
			if c, ok := r.colors.Lookup(req.ColorID); ok {
				e.ColorName = c.ColorName
				e.ApproxAvailableDate = c.ApproxAvailableDate
			}
			return e
		},
	}
}
