package service

import (
	"fmt"

	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"github.com/bitfantasy/nimo-dms/internal/dms/pricing"
	"github.com/bitfantasy/nimo-dms/internal/dms/store"
	"go.uber.org/zap"
)

// OrderDraft 询价转订单时预填的订单表单
type OrderDraft struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	EnquiryID    string `json:"enquiry_id"`
	ModelName    string `json:"model_name"`
	OrderType    string `json:"order_type"`
	PaymentType  string `json:"payment_type"`
	SaleType     string `json:"sale_type"`
}

// ToggleColorAvailability 切换颜色可售状态
func (s *Services) ToggleColorAvailability(id string) (*entity.Color, error) {
	c, err := s.Colors.Mutate(id, func(c *entity.Color) error {
		c.IsAvailable = !c.IsAvailable
		return nil
	})
	if err != nil {
		return nil, err
	}
	if c != nil {
		s.logger.Info("Color availability toggled", zap.String("id", id), zap.Bool("is_available", c.IsAvailable))
	}
	return c, nil
}

// ConvertEnquiry 将待处理询价标记为已转化，并返回预填的订单草稿
func (s *Services) ConvertEnquiry(id string) (*OrderDraft, error) {
	e, err := s.Enquiries.Mutate(id, func(e *entity.Enquiry) error {
		if e.Status != entity.EnquiryStatusPending {
			return fmt.Errorf("convert enquiry %s in status %s: %w", id, e.Status, ErrInvalidStatus)
		}
		e.Status = entity.EnquiryStatusConverted
		return nil
	})
	if err != nil || e == nil {
		return nil, err
	}
	s.logger.Info("Enquiry converted", zap.String("id", id))
	return &OrderDraft{
		CustomerID:   e.CustomerID,
		CustomerName: e.CustomerName,
		EnquiryID:    e.ID,
		ModelName:    e.ModelName,
		OrderType:    entity.OrderTypeNew,
		PaymentType:  entity.PaymentCash,
		SaleType:     entity.SaleIndividual,
	}, nil
}

// ConfirmOrder 确认订单，仅限待确认状态
func (s *Services) ConfirmOrder(id string) (*entity.Order, error) {
	o, err := s.Orders.Mutate(id, func(o *entity.Order) error {
		if o.Status != entity.OrderStatusPending {
			return fmt.Errorf("confirm order %s in status %s: %w", id, o.Status, ErrInvalidStatus)
		}
		o.Status = entity.OrderStatusConfirmed
		return nil
	})
	if err != nil {
		return nil, err
	}
	if o != nil {
		s.logger.Info("Order confirmed", zap.String("id", id))
	}
	return o, nil
}

// DeliverShipping 标记交付完成
func (s *Services) DeliverShipping(id string) (*entity.Shipping, error) {
	sh, err := s.Shipping.Mutate(id, func(sh *entity.Shipping) error {
		switch sh.Status {
		case entity.ShippingStatusPending, entity.ShippingStatusScheduled:
			sh.Status = entity.ShippingStatusDelivered
			return nil
		}
		return fmt.Errorf("deliver shipping %s in status %s: %w", id, sh.Status, ErrInvalidStatus)
	})
	if err != nil {
		return nil, err
	}
	if sh != nil {
		s.logger.Info("Shipping delivered", zap.String("id", id))
	}
	return sh, nil
}

// BillingAddress 按订单取客户账单地址
func (s *Services) BillingAddress(orderID string) (*BillingAddress, error) {
	addr, ok := s.refs.billingAddress(orderID)
	if !ok {
		return nil, fmt.Errorf("billing address for order %s: %w", orderID, store.ErrNotFound)
	}
	return addr, nil
}

// CalculatePrice 实时计算总价和余额，不落库
func (s *Services) CalculatePrice(c pricing.Components) pricing.Totals {
	return pricing.Calculate(c)
}
