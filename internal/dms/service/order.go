package service

import (
	"strings"

	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"github.com/bitfantasy/nimo-dms/internal/dms/resolver"
	"github.com/bitfantasy/nimo-dms/internal/dms/store"
	"github.com/bitfantasy/nimo-dms/internal/dms/validation"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// noEnquiry 表单中“不关联询价”的取值
const noEnquiry = "none"

// OrderRequest 订单表单
type OrderRequest struct {
	CustomerID                string          `json:"customer_id" binding:"min=1"`
	EnquiryID                 string          `json:"enquiry_id"`
	OrderType                 string          `json:"order_type" binding:"oneof=NEW EXCHANGE"`
	PaymentType               string          `json:"payment_type" binding:"oneof=CASH LOAN"`
	FinancierName             string          `json:"financier_name"`
	FinanceAmount             decimal.Decimal `json:"finance_amount"`
	EMIAmount                 decimal.Decimal `json:"emi_amount"`
	TenureMonths              int             `json:"tenure_months"`
	DownPayment               decimal.Decimal `json:"down_payment" binding:"gte=0"`
	PreferredDeliveryLocation string          `json:"preferred_delivery_location" binding:"min=1"`
	SaleType                  string          `json:"sale_type" binding:"oneof=INDIVIDUAL CORPORATE"`
	TentativeDeliveryDate     string          `json:"tentative_delivery_date" binding:"min=1"`
	ExpectedDeliveryDate      string          `json:"expected_delivery_date" binding:"min=1"`
	ReasonForDelay            string          `json:"reason_for_delay"`
}

const loanRequiredMessage = "Finance details are required for loan payment type"

var orderMessages = validation.Messages{
	"customer_id":                 "Please select a customer",
	"order_type":                  "Order type must be NEW or EXCHANGE",
	"payment_type":                "Payment type must be CASH or LOAN",
	"down_payment":                "Down payment must be a positive number",
	"preferred_delivery_location": "Preferred delivery location is required",
	"sale_type":                   "Sale type must be INDIVIDUAL or CORPORATE",
	"tentative_delivery_date":     "Tentative delivery date is required",
	"expected_delivery_date":      "Expected delivery date is required",
	"financier_name.loan":         loanRequiredMessage,
	"finance_amount.loan":         loanRequiredMessage,
	"emi_amount.loan":             loanRequiredMessage,
	"tenure_months.loan":          loanRequiredMessage,
}

// loanRule 贷款付款时金融信息必填，在字段校验之后执行
func loanRule(sl validator.StructLevel) {
	req := sl.Current().Interface().(OrderRequest)
	if req.PaymentType != entity.PaymentLoan {
		return
	}
	if strings.TrimSpace(req.FinancierName) == "" {
		sl.ReportError(req.FinancierName, "financier_name", "FinancierName", "loan", "")
	}
	if req.FinanceAmount.IsZero() {
		sl.ReportError(req.FinanceAmount, "finance_amount", "FinanceAmount", "loan", "")
	}
	if req.EMIAmount.IsZero() {
		sl.ReportError(req.EMIAmount, "emi_amount", "EMIAmount", "loan", "")
	}
	if req.TenureMonths == 0 {
		sl.ReportError(req.TenureMonths, "tenure_months", "TenureMonths", "loan", "")
	}
}

func orderDescriptor(r *refs) Descriptor[*entity.Order, *OrderRequest] {
	return Descriptor[*entity.Order, *OrderRequest]{
		Name:     "orders",
		Format:   store.IDFormat{Prefix: "ORD", WithDate: true, Width: 3},
		Messages: orderMessages,
		Search: func(o *entity.Order) []string {
			return []string{o.CustomerName, o.ID, o.PreferredDeliveryLocation}
		},
		Label: func(o *entity.Order) string {
			return o.ID + " - " + o.CustomerName
		},
		Columns: []Column{
			{Key: "id", Title: "Order ID", Width: 20},
			{Key: "customer_name", Title: "Customer", Width: 20},
			{Key: "model_name", Title: "Model", Width: 24},
			{Key: "enquiry_id", Title: "Enquiry", Width: 12},
			{Key: "order_type", Title: "Order Type", Width: 12},
			{Key: "payment_type", Title: "Payment", Width: 10},
			{Key: "financier_name", Title: "Financier", Width: 16},
			{Key: "finance_amount", Title: "Finance Amount", Width: 15},
			{Key: "emi_amount", Title: "EMI", Width: 12},
			{Key: "tenure_months", Title: "Tenure (months)", Width: 15},
			{Key: "down_payment", Title: "Down Payment", Width: 15},
			{Key: "preferred_delivery_location", Title: "Delivery Location", Width: 20},
			{Key: "sale_type", Title: "Sale Type", Width: 12},
			{Key: "tentative_delivery_date", Title: "Tentative Delivery", Width: 18},
			{Key: "expected_delivery_date", Title: "Expected Delivery", Width: 18},
			{Key: "reason_for_delay", Title: "Reason For Delay", Width: 25},
			{Key: "status", Title: "Status", Width: 12},
		},
		NewRequest: func() *OrderRequest { return &OrderRequest{} },
		Build: func(req *OrderRequest) *entity.Order {
			enquiryID := req.EnquiryID
			if enquiryID == noEnquiry {
				enquiryID = ""
			}
			o := &entity.Order{
				CustomerID:                req.CustomerID,
				CustomerName:              resolver.Field(r.customers, req.CustomerID, customerName),
				EnquiryID:                 enquiryID,
				ModelName:                 resolver.Field(r.enquiries, enquiryID, enquiryModelName),
				OrderType:                 req.OrderType,
				PaymentType:               req.PaymentType,
				FinancierName:             req.FinancierName,
				FinanceAmount:             req.FinanceAmount,
				EMIAmount:                 req.EMIAmount,
				TenureMonths:              req.TenureMonths,
				DownPayment:               req.DownPayment,
				PreferredDeliveryLocation: req.PreferredDeliveryLocation,
				SaleType:                  req.SaleType,
				TentativeDeliveryDate:     req.TentativeDeliveryDate,
				ExpectedDeliveryDate:      req.ExpectedDeliveryDate,
				ReasonForDelay:            req.ReasonForDelay,
				Status:                    entity.OrderStatusPending,
			}
			o.RefreshDateWarning()
			return o
		},
		Derive: func(o *entity.Order) { o.RefreshDateWarning() },
	}
}
