// Package pricing derives order totals from the entered price components.
package pricing

import "github.com/shopspring/decimal"

// Components are the user-entered amounts of a price sheet.
type Components struct {
	SellingPrice       decimal.Decimal `json:"selling_price"`
	AdditionalCharges  decimal.Decimal `json:"additional_charges"`
	GSTAmount          decimal.Decimal `json:"gst_amount"`
	InsuranceAmount    decimal.Decimal `json:"insurance_amount"`
	RegistrationAmount decimal.Decimal `json:"registration_amount"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	BookingAmount      decimal.Decimal `json:"booking_amount"`
	ReceivedAmount     decimal.Decimal `json:"received_amount"`
}

// Totals are the derived amounts. No rounding is applied.
type Totals struct {
	TotalAmount   decimal.Decimal `json:"total_amount"`
	BalanceAmount decimal.Decimal `json:"balance_amount"`
}

// Calculate returns
//
//	total   = selling + additional + gst + insurance + registration - discount
//	balance = total - booking - received
func Calculate(c Components) Totals {
	total := c.SellingPrice.
		Add(c.AdditionalCharges).
		Add(c.GSTAmount).
		Add(c.InsuranceAmount).
		Add(c.RegistrationAmount).
		Sub(c.DiscountAmount)
	return Totals{
		TotalAmount:   total,
		BalanceAmount: total.Sub(c.BookingAmount).Sub(c.ReceivedAmount),
	}
}
