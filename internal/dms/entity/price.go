package entity

import "github.com/shopspring/decimal"

// Price 订单价格明细
type Price struct {
	Base
	OrderID            string          `json:"order_id" gorm:"size:32;index"`
	CustomerName       string          `json:"customer_name" gorm:"size:200"` // 冗余
	ModelName          string          `json:"model_name" gorm:"size:200"`    // 冗余
	BookingAmount      decimal.Decimal `json:"booking_amount" gorm:"type:decimal(14,2);default:0"`
	SellingPrice       decimal.Decimal `json:"selling_price" gorm:"type:decimal(14,2);default:0"`
	DiscountAmount     decimal.Decimal `json:"discount_amount" gorm:"type:decimal(14,2);default:0"`
	ReceivedAmount     decimal.Decimal `json:"received_amount" gorm:"type:decimal(14,2);default:0"`
	AdditionalCharges  decimal.Decimal `json:"additional_charges" gorm:"type:decimal(14,2);default:0"`
	GSTAmount          decimal.Decimal `json:"gst_amount" gorm:"type:decimal(14,2);default:0"`
	InsuranceAmount    decimal.Decimal `json:"insurance_amount" gorm:"type:decimal(14,2);default:0"`
	RegistrationAmount decimal.Decimal `json:"registration_amount" gorm:"type:decimal(14,2);default:0"`
	TotalAmount        decimal.Decimal `json:"total_amount" gorm:"type:decimal(14,2);default:0"`   // 派生
	BalanceAmount      decimal.Decimal `json:"balance_amount" gorm:"type:decimal(14,2);default:0"` // 派生
	Notes              string          `json:"notes" gorm:"type:text"`
}

func (Price) TableName() string {
	return "dms_prices"
}

func (p *Price) StatusValue() string { return "" }
