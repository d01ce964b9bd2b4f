package service

import (
	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"github.com/bitfantasy/nimo-dms/internal/dms/pricing"
	"github.com/bitfantasy/nimo-dms/internal/dms/store"
	"github.com/bitfantasy/nimo-dms/internal/dms/validation"
	"github.com/shopspring/decimal"
)

// PriceRequest 价格单表单，总价和余额由系统计算
type PriceRequest struct {
	OrderID            string          `json:"order_id" binding:"min=1"`
	BookingAmount      decimal.Decimal `json:"booking_amount" binding:"gte=0"`
	SellingPrice       decimal.Decimal `json:"selling_price" binding:"gte=0"`
	DiscountAmount     decimal.Decimal `json:"discount_amount" binding:"gte=0"`
	ReceivedAmount     decimal.Decimal `json:"received_amount" binding:"gte=0"`
	AdditionalCharges  decimal.Decimal `json:"additional_charges" binding:"gte=0"`
	GSTAmount          decimal.Decimal `json:"gst_amount" binding:"gte=0"`
	InsuranceAmount    decimal.Decimal `json:"insurance_amount" binding:"gte=0"`
	RegistrationAmount decimal.Decimal `json:"registration_amount" binding:"gte=0"`
	Notes              string          `json:"notes"`
}

// Components 取出参与计算的金额
func (r *PriceRequest) Components() pricing.Components {
	return pricing.Components{
		SellingPrice:       r.SellingPrice,
		AdditionalCharges:  r.AdditionalCharges,
		GSTAmount:          r.GSTAmount,
		InsuranceAmount:    r.InsuranceAmount,
		RegistrationAmount: r.RegistrationAmount,
		DiscountAmount:     r.DiscountAmount,
		BookingAmount:      r.BookingAmount,
		ReceivedAmount:     r.ReceivedAmount,
	}
}

var priceMessages = validation.Messages{
	"order_id":            "Please select an order",
	"booking_amount":      "Booking amount must be a positive number",
	"selling_price":       "Selling price must be a positive number",
	"discount_amount":     "Discount amount must be a positive number",
	"received_amount":     "Received amount must be a positive number",
	"additional_charges":  "Additional charges must be a positive number",
	"gst_amount":          "GST amount must be a positive number",
	"insurance_amount":    "Insurance amount must be a positive number",
	"registration_amount": "Registration amount must be a positive number",
}

func priceComponents(p *entity.Price) pricing.Components {
	return pricing.Components{
		SellingPrice:       p.SellingPrice,
		AdditionalCharges:  p.AdditionalCharges,
		GSTAmount:          p.GSTAmount,
		InsuranceAmount:    p.InsuranceAmount,
		RegistrationAmount: p.RegistrationAmount,
		DiscountAmount:     p.DiscountAmount,
		BookingAmount:      p.BookingAmount,
		ReceivedAmount:     p.ReceivedAmount,
	}
}

func applyTotals(p *entity.Price) {
	t := pricing.Calculate(priceComponents(p))
	p.TotalAmount = t.TotalAmount
	p.BalanceAmount = t.BalanceAmount
}

func priceDescriptor(r *refs) Descriptor[*entity.Price, *PriceRequest] {
	return Descriptor[*entity.Price, *PriceRequest]{
		Name:     "prices",
		Format:   store.IDFormat{Prefix: "PRICE", Width: 3},
		Messages: priceMessages,
		Search: func(p *entity.Price) []string {
			return []string{p.CustomerName, p.OrderID, p.ModelName}
		},
		Label: func(p *entity.Price) string {
			return p.ID + " - " + p.CustomerName
		},
		Columns: []Column{
			{Key: "id", Title: "Price ID", Width: 12},
			{Key: "order_id", Title: "Order ID", Width: 20},
			{Key: "customer_name", Title: "Customer", Width: 20},
			{Key: "model_name", Title: "Model", Width: 24},
			{Key: "selling_price", Title: "Selling Price", Width: 15},
			{Key: "additional_charges", Title: "Additional Charges", Width: 18},
			{Key: "gst_amount", Title: "GST", Width: 12},
			{Key: "insurance_amount", Title: "Insurance", Width: 12},
			{Key: "registration_amount", Title: "Registration", Width: 14},
			{Key: "discount_amount", Title: "Discount", Width: 12},
			{Key: "total_amount", Title: "Total", Width: 15},
			{Key: "booking_amount", Title: "Booking", Width: 12},
			{Key: "received_amount", Title: "Received", Width: 12},
			{Key: "balance_amount", Title: "Balance", Width: 15},
			{Key: "notes", Title: "Notes", Width: 30},
		},
		NewRequest: func() *PriceRequest { return &PriceRequest{} },
		Build: func(req *PriceRequest) *entity.Price {
			p := &entity.Price{
				OrderID:            req.OrderID,
				BookingAmount:      req.BookingAmount,
				SellingPrice:       req.SellingPrice,
				DiscountAmount:     req.DiscountAmount,
				ReceivedAmount:     req.ReceivedAmount,
				AdditionalCharges:  req.AdditionalCharges,
				GSTAmount:          req.GSTAmount,
				InsuranceAmount:    req.InsuranceAmount,
				RegistrationAmount: req.RegistrationAmount,
				Notes:              req.Notes,
			}
			if o, ok := r.orders.Lookup(req.OrderID); ok {
				p.CustomerName = o.CustomerName
				p.ModelName = o.ModelName
			}
			applyTotals(p)
			return p
		},
		Derive: applyTotals,
	}
}
