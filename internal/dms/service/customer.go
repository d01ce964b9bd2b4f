package service

import (
	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"github.com/bitfantasy/nimo-dms/internal/dms/store"
	"github.com/bitfantasy/nimo-dms/internal/dms/validation"
)

// CustomerRequest 客户表单
type CustomerRequest struct {
	CustomerName   string `json:"customer_name" binding:"min=2"`
	MobileNumber   string `json:"mobile_number" binding:"min=10"`
	Email          string `json:"email" binding:"omitempty,email"`
	BillingAddress string `json:"billing_address" binding:"min=5"`
	City           string `json:"city" binding:"min=2"`
	State          string `json:"state" binding:"min=2"`
	District       string `json:"district" binding:"min=2"`
	Pincode        string `json:"pincode" binding:"min=6"`
	PanNumber      string `json:"pan_number"`
	GstNumber      string `json:"gst_number"`
	Occupation     string `json:"occupation" binding:"min=2"`
	Profession     string `json:"profession" binding:"min=2"`
}

var customerMessages = validation.Messages{
	"customer_name":   "Customer name must be at least 2 characters",
	"mobile_number":   "Mobile number must be at least 10 digits",
	"email":           "Invalid email address",
	"billing_address": "Billing address must be at least 5 characters",
	"city":            "City must be at least 2 characters",
	"state":           "State must be at least 2 characters",
	"district":        "District must be at least 2 characters",
	"pincode":         "Pincode must be at least 6 characters",
	"occupation":      "Occupation must be at least 2 characters",
	"profession":      "Profession must be at least 2 characters",
}

func customerDescriptor() Descriptor[*entity.Customer, *CustomerRequest] {
	return Descriptor[*entity.Customer, *CustomerRequest]{
		Name:     "customers",
		Format:   store.IDFormat{Prefix: "CUST", Width: 3},
		Messages: customerMessages,
		Search: func(c *entity.Customer) []string {
			return []string{c.CustomerName, c.MobileNumber, c.Email}
		},
		Label: func(c *entity.Customer) string {
			return c.CustomerName + " - " + c.MobileNumber
		},
		Columns: []Column{
			{Key: "id", Title: "Customer ID", Width: 12},
			{Key: "customer_name", Title: "Name", Width: 20},
			{Key: "mobile_number", Title: "Mobile", Width: 15},
			{Key: "email", Title: "Email", Width: 25},
			{Key: "billing_address", Title: "Billing Address", Width: 35},
			{Key: "city", Title: "City", Width: 12},
			{Key: "state", Title: "State", Width: 12},
			{Key: "district", Title: "District", Width: 12},
			{Key: "pincode", Title: "Pincode", Width: 10},
			{Key: "pan_number", Title: "PAN", Width: 14},
			{Key: "gst_number", Title: "GST", Width: 18},
			{Key: "occupation", Title: "Occupation", Width: 15},
			{Key: "profession", Title: "Profession", Width: 15},
			{Key: "created_at", Title: "Created", Width: 12},
		},
		NewRequest: func() *CustomerRequest { return &CustomerRequest{} },
		Build: func(r *CustomerRequest) *entity.Customer {
			return &entity.Customer{
				CustomerName:   r.CustomerName,
				MobileNumber:   r.MobileNumber,
				Email:          r.Email,
				BillingAddress: r.BillingAddress,
				City:           r.City,
				State:          r.State,
				District:       r.District,
				Pincode:        r.Pincode,
				PanNumber:      r.PanNumber,
				GstNumber:      r.GstNumber,
				Occupation:     r.Occupation,
				Profession:     r.Profession,
			}
		},
	}
}
