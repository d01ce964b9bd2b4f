// Package seed 提供启动时一次性读取的初始数据源。
package seed

import (
	"context"

	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
)

// Dataset 全部实体的初始数据
type Dataset struct {
	Customers []*entity.Customer     `json:"customers" yaml:"customers"`
	Enquiries []*entity.Enquiry      `json:"enquiries" yaml:"enquiries"`
	Orders    []*entity.Order        `json:"orders" yaml:"orders"`
	Models    []*entity.VehicleModel `json:"models" yaml:"models"`
	Colors    []*entity.Color        `json:"colors" yaml:"colors"`
	Prices    []*entity.Price        `json:"prices" yaml:"prices"`
	Shipping  []*entity.Shipping     `json:"shipping" yaml:"shipping"`
}

// Source 种子数据源，启动时读取一次
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
}

// Source kinds accepted in config
const (
	KindBuiltin  = "builtin"
	KindFile     = "file"
	KindDatabase = "database"
	KindRedis    = "redis"
)

// Count 返回各实体的记录数，用于启动日志
func (d *Dataset) Count() map[string]int {
	return map[string]int{
		"customers": len(d.Customers),
		"enquiries": len(d.Enquiries),
		"orders":    len(d.Orders),
		"models":    len(d.Models),
		"colors":    len(d.Colors),
		"prices":    len(d.Prices),
		"shipping":  len(d.Shipping),
	}
}
