package service

import (
	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"github.com/bitfantasy/nimo-dms/internal/dms/resolver"
	"github.com/bitfantasy/nimo-dms/internal/dms/store"
	"github.com/bitfantasy/nimo-dms/internal/dms/validation"
)

// ShippingRequest 交付安排表单
type ShippingRequest struct {
	OrderID             string `json:"order_id" binding:"min=1"`
	CustomerName        string `json:"customer_name" binding:"min=1"`
	ShippingAddress     string `json:"shipping_address" binding:"min=5"`
	City                string `json:"city" binding:"min=2"`
	State               string `json:"state" binding:"min=2"`
	District            string `json:"district" binding:"min=2"`
	Pincode             string `json:"pincode" binding:"min=6"`
	ContactPerson       string `json:"contact_person" binding:"min=2"`
	ContactNumber       string `json:"contact_number" binding:"min=10"`
	DeliveryDate        string `json:"delivery_date" binding:"min=1"`
	DeliveryTimeSlot    string `json:"delivery_time_slot" binding:"min=1"`
	SpecialInstructions string `json:"special_instructions"`
	IsSameAsBilling     bool   `json:"is_same_as_billing"`
}

var shippingMessages = validation.Messages{
	"order_id":           "Please select an order",
	"customer_name":      "Customer name is required",
	"shipping_address":   "Shipping address must be at least 5 characters",
	"city":               "City must be at least 2 characters",
	"state":              "State must be at least 2 characters",
	"district":           "District must be at least 2 characters",
	"pincode":            "Pincode must be at least 6 characters",
	"contact_person":     "Contact person must be at least 2 characters",
	"contact_number":     "Contact number must be at least 10 digits",
	"delivery_date":      "Delivery date is required",
	"delivery_time_slot": "Please select a time slot",
}

// BillingAddress 客户账单地址，用于“同账单地址”
type BillingAddress struct {
	CustomerName    string `json:"customer_name"`
	ShippingAddress string `json:"shipping_address"`
	City            string `json:"city"`
	State           string `json:"state"`
	District        string `json:"district"`
	Pincode         string `json:"pincode"`
}

// billingAddress 经订单找到客户并取其账单地址
func (r *refs) billingAddress(orderID string) (*BillingAddress, bool) {
	o, ok := r.orders.Lookup(orderID)
	if !ok {
		return nil, false
	}
	c, ok := r.customers.Lookup(o.CustomerID)
	if !ok {
		return nil, false
	}
	return &BillingAddress{
		CustomerName:    c.CustomerName,
		ShippingAddress: c.BillingAddress,
		City:            c.City,
		State:           c.State,
		District:        c.District,
		Pincode:         c.Pincode,
	}, true
}

func shippingDescriptor(r *refs) Descriptor[*entity.Shipping, *ShippingRequest] {
	return Descriptor[*entity.Shipping, *ShippingRequest]{
		Name:     "shipping",
		Format:   store.IDFormat{Prefix: "SHIP", Width: 3},
		Messages: shippingMessages,
		Search: func(s *entity.Shipping) []string {
			return []string{s.CustomerName, s.OrderID, s.City, s.State}
		},
		Label: func(s *entity.Shipping) string {
			return s.ID + " - " + s.CustomerName
		},
		Columns: []Column{
			{Key: "id", Title: "Shipping ID", Width: 12},
			{Key: "order_id", Title: "Order ID", Width: 20},
			{Key: "customer_name", Title: "Customer", Width: 20},
			{Key: "model_name", Title: "Model", Width: 24},
			{Key: "shipping_address", Title: "Address", Width: 35},
			{Key: "city", Title: "City", Width: 12},
			{Key: "state", Title: "State", Width: 12},
			{Key: "district", Title: "District", Width: 12},
			{Key: "pincode", Title: "Pincode", Width: 10},
			{Key: "contact_person", Title: "Contact Person", Width: 16},
			{Key: "contact_number", Title: "Contact Number", Width: 15},
			{Key: "delivery_date", Title: "Delivery Date", Width: 14},
			{Key: "delivery_time_slot", Title: "Time Slot", Width: 20},
			{Key: "status", Title: "Status", Width: 12},
			{Key: "special_instructions", Title: "Instructions", Width: 30},
		},
		NewRequest: func() *ShippingRequest { return &ShippingRequest{} },
		Prepare: func(form, submitted map[string]any) {
			// 仅在本次请求勾选“同账单地址”时填充，且不覆盖用户提交的地址字段
			same, _ := submitted["is_same_as_billing"].(bool)
			if !same {
				return
			}
			orderID, _ := form["order_id"].(string)
			addr, ok := r.billingAddress(orderID)
			if !ok {
				return
			}
			fill := map[string]string{
				"shipping_address": addr.ShippingAddress,
				"city":             addr.City,
				"state":            addr.State,
				"district":         addr.District,
				"pincode":          addr.Pincode,
			}
			for key, val := range fill {
				if _, sent := submitted[key]; !sent {
					form[key] = val
				}
			}
		},
		Build: func(req *ShippingRequest) *entity.Shipping {
			return &entity.Shipping{
				OrderID:             req.OrderID,
				CustomerName:        req.CustomerName,
				ModelName:           resolver.Field(r.orders, req.OrderID, orderModelName),
				ShippingAddress:     req.ShippingAddress,
				City:                req.City,
				State:               req.State,
				District:            req.District,
				Pincode:             req.Pincode,
				ContactPerson:       req.ContactPerson,
				ContactNumber:       req.ContactNumber,
				DeliveryDate:        req.DeliveryDate,
				DeliveryTimeSlot:    req.DeliveryTimeSlot,
				SpecialInstructions: req.SpecialInstructions,
				IsSameAsBilling:     req.IsSameAsBilling,
				Status:              entity.ShippingStatusScheduled,
			}
		},
	}
}
