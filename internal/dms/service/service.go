package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"github.com/bitfantasy/nimo-dms/internal/dms/resolver"
	"github.com/bitfantasy/nimo-dms/internal/dms/seed"
	"github.com/bitfantasy/nimo-dms/internal/dms/store"
	"github.com/bitfantasy/nimo-dms/internal/dms/validation"
	"go.uber.org/zap"
)

// ErrInvalidStatus 当前状态不允许该操作
var ErrInvalidStatus = errors.New("status does not allow this action")

// Options 服务配置
type Options struct {
	Policy store.MissingPolicy
	Clock  func() time.Time
}

// Services 服务集合
type Services struct {
	Customers *Manager[*entity.Customer, *CustomerRequest]
	Enquiries *Manager[*entity.Enquiry, *EnquiryRequest]
	Orders    *Manager[*entity.Order, *OrderRequest]
	Models    *Manager[*entity.VehicleModel, *ModelRequest]
	Colors    *Manager[*entity.Color, *ColorRequest]
	Prices    *Manager[*entity.Price, *PriceRequest]
	Shipping  *Manager[*entity.Shipping, *ShippingRequest]

	refs   *refs
	clock  func() time.Time
	logger *zap.Logger
}

// refs 跨实体引用，描述器在构建记录时通过它取快照
type refs struct {
	customers *resolver.Relation[*entity.Customer]
	enquiries *resolver.Relation[*entity.Enquiry]
	orders    *resolver.Relation[*entity.Order]
	models    *resolver.Relation[*entity.VehicleModel]
	colors    *resolver.Relation[*entity.Color]
}

// NewServices 创建服务集合，各实体存储为空，需随后调用 Seed
func NewServices(opts Options, logger *zap.Logger) *Services {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	storeOpts := []store.Option{store.WithPolicy(opts.Policy), store.WithClock(opts.Clock)}

	v := validation.New()
	v.RegisterStructRule(loanRule, OrderRequest{})

	r := &refs{}
	s := &Services{refs: r, clock: opts.Clock, logger: logger}
	s.Customers = newManager(customerDescriptor(), v, storeOpts, logger)
	s.Models = newManager(modelDescriptor(), v, storeOpts, logger)
	s.Colors = newManager(colorDescriptor(r), v, storeOpts, logger)
	s.Enquiries = newManager(enquiryDescriptor(r), v, storeOpts, logger)
	s.Orders = newManager(orderDescriptor(r), v, storeOpts, logger)
	s.Prices = newManager(priceDescriptor(r), v, storeOpts, logger)
	s.Shipping = newManager(shippingDescriptor(r), v, storeOpts, logger)

	r.customers = s.Customers.rel
	r.models = s.Models.rel
	r.colors = s.Colors.rel
	r.enquiries = s.Enquiries.rel
	r.orders = s.Orders.rel
	return s
}

func newManager[T entity.Record, R any](desc Descriptor[T, R], v *validation.Validator, opts []store.Option, logger *zap.Logger) *Manager[T, R] {
	st := store.New[T](desc.Name, desc.Format, opts...)
	rel := resolver.New(desc.Name, resolver.Source[T](st), desc.Label, desc.Parent, logger)
	return NewManager(desc, st, rel, v, logger)
}

// Seed 从数据源加载初始数据，只应在启动时调用一次
func (s *Services) Seed(ctx context.Context, src seed.Source) error {
	ds, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	s.Customers.Seed(ds.Customers)
	s.Models.Seed(ds.Models)
	s.Colors.Seed(ds.Colors)
	s.Enquiries.Seed(ds.Enquiries)
	s.Orders.Seed(ds.Orders)
	s.Prices.Seed(ds.Prices)
	s.Shipping.Seed(ds.Shipping)

	fields := make([]zap.Field, 0, 7)
	for name, n := range ds.Count() {
		fields = append(fields, zap.Int(name, n))
	}
	s.logger.Info("Seed data loaded", fields...)
	return nil
}

// Now 当前时间，测试中可注入
func (s *Services) Now() time.Time {
	return s.clock()
}

func customerName(c *entity.Customer) string    { return c.CustomerName }
func modelName(m *entity.VehicleModel) string   { return m.ModelName }
func enquiryModelName(e *entity.Enquiry) string { return e.ModelName }
func orderModelName(o *entity.Order) string     { return o.ModelName }
