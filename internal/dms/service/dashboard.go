package service

import (
	"time"

	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"github.com/shopspring/decimal"
)

// DashboardStats 首页统计
type DashboardStats struct {
	Totals    map[string]int `json:"totals"`
	Enquiries StatusCount    `json:"enquiries"`
	Orders    StatusCount    `json:"orders"`
	Shipping  StatusCount    `json:"shipping"`
	FuelTypes map[string]int `json:"fuel_types"`
	Colors    ColorStats     `json:"colors"`
	Revenue   RevenueStats   `json:"revenue"`
}

// StatusCount 按状态计数
type StatusCount map[string]int

// ColorStats 颜色可售情况
type ColorStats struct {
	Available   int `json:"available"`
	Unavailable int `json:"unavailable"`
	Upcoming    int `json:"upcoming"`
}

// RevenueStats 收款统计，来自价格单
type RevenueStats struct {
	Received          decimal.Decimal `json:"received"`
	Pending           decimal.Decimal `json:"pending"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// Dashboard 汇总各实体的当前数据
func (s *Services) Dashboard() *DashboardStats {
	customers := s.Customers.Store().List()
	enquiries := s.Enquiries.Store().List()
	orders := s.Orders.Store().List()
	models := s.Models.Store().List()
	colors := s.Colors.Store().List()
	prices := s.Prices.Store().List()
	shipping := s.Shipping.Store().List()

	stats := &DashboardStats{
		Totals: map[string]int{
			"customers": len(customers),
			"enquiries": len(enquiries),
			"orders":    len(orders),
			"models":    len(models),
			"colors":    len(colors),
			"prices":    len(prices),
			"shipping":  len(shipping),
		},
		Enquiries: StatusCount{},
		Orders:    StatusCount{},
		Shipping:  StatusCount{},
		FuelTypes: map[string]int{},
	}
	for _, e := range enquiries {
		stats.Enquiries[e.Status]++
	}
	for _, o := range orders {
		stats.Orders[o.Status]++
	}
	for _, sh := range shipping {
		stats.Shipping[sh.Status]++
	}
	for _, m := range models {
		stats.FuelTypes[m.FuelType]++
	}
	stats.Colors = colorStats(colors, s.clock())
	stats.Revenue = revenueStats(prices)
	return stats
}

// colorStats 可售颜色中预计上市日期晚于今天的计为即将上市
func colorStats(colors []*entity.Color, now time.Time) ColorStats {
	today := now.Format(entity.DateLayout)
	var cs ColorStats
	for _, c := range colors {
		if !c.IsAvailable {
			cs.Unavailable++
			continue
		}
		cs.Available++
		if c.ApproxAvailableDate > today {
			cs.Upcoming++
		}
	}
	return cs
}

func revenueStats(prices []*entity.Price) RevenueStats {
	rs := RevenueStats{
		Received:          decimal.Zero,
		Pending:           decimal.Zero,
		AverageOrderValue: decimal.Zero,
	}
	if len(prices) == 0 {
		return rs
	}
	total := decimal.Zero
	for _, p := range prices {
		rs.Received = rs.Received.Add(p.ReceivedAmount)
		rs.Pending = rs.Pending.Add(p.BalanceAmount)
		total = total.Add(p.TotalAmount)
	}
	rs.AverageOrderValue = total.Div(decimal.NewFromInt(int64(len(prices))))
	return rs
}
