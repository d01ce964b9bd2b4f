package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus 订单状态
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
)

// OrderType 订单类型
const (
	OrderTypeNew      = "NEW"
	OrderTypeExchange = "EXCHANGE"
)

// PaymentType 付款方式
const (
	PaymentCash = "CASH"
	PaymentLoan = "LOAN"
)

// SaleType 销售类型
const (
	SaleIndividual = "INDIVIDUAL"
	SaleCorporate  = "CORPORATE"
)

// Order 车辆订单
type Order struct {
	Base
	CustomerID                string          `json:"customer_id" gorm:"size:32;index"`
	CustomerName              string          `json:"customer_name" gorm:"size:200"` // 冗余
	EnquiryID                 string          `json:"enquiry_id" gorm:"size:32"`
	ModelName                 string          `json:"model_name" gorm:"size:200"` // 冗余，取自关联询价
	OrderType                 string          `json:"order_type" gorm:"size:20"`
	PaymentType               string          `json:"payment_type" gorm:"size:20"`
	FinancierName             string          `json:"financier_name" gorm:"size:200"`
	FinanceAmount             decimal.Decimal `json:"finance_amount" gorm:"type:decimal(14,2);default:0"`
	EMIAmount                 decimal.Decimal `json:"emi_amount" gorm:"type:decimal(14,2);default:0"`
	TenureMonths              int             `json:"tenure_months"`
	DownPayment               decimal.Decimal `json:"down_payment" gorm:"type:decimal(14,2);default:0"`
	PreferredDeliveryLocation string          `json:"preferred_delivery_location" gorm:"size:200"`
	SaleType                  string          `json:"sale_type" gorm:"size:20"`
	TentativeDeliveryDate     string          `json:"tentative_delivery_date" gorm:"size:10"`
	ExpectedDeliveryDate      string          `json:"expected_delivery_date" gorm:"size:10"`
	ReasonForDelay            string          `json:"reason_for_delay" gorm:"size:500"`
	Status                    string          `json:"status" gorm:"size:20;not null;default:pending"`
	DateWarning               bool            `json:"date_warning" gorm:"-"`
}

func (Order) TableName() string {
	return "dms_orders"
}

func (o *Order) StatusValue() string { return o.Status }

// RefreshDateWarning 预计交付日期早于暂定交付日期时标记提醒
func (o *Order) RefreshDateWarning() {
	tentative, err1 := time.Parse(DateLayout, o.TentativeDeliveryDate)
	expected, err2 := time.Parse(DateLayout, o.ExpectedDeliveryDate)
	o.DateWarning = err1 == nil && err2 == nil && expected.Before(tentative)
}
