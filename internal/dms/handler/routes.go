package handler

import (
	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册 DMS 接口。deleteGuard 在删除接口前执行，可为空
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers, deleteGuard ...gin.HandlerFunc) {
	registerEntity(rg, "/customers", h.Customers, deleteGuard)

	enquiries := registerEntity(rg, "/enquiries", h.Enquiries, deleteGuard)
	enquiries.POST("/:id/convert", h.Actions.ConvertEnquiry)

	orders := registerEntity(rg, "/orders", h.Orders, deleteGuard)
	orders.POST("/:id/confirm", h.Actions.ConfirmOrder)

	registerEntity(rg, "/models", h.Models, deleteGuard)

	colors := registerEntity(rg, "/colors", h.Colors, deleteGuard)
	colors.POST("/:id/toggle", h.Actions.ToggleColor)

	prices := registerEntity(rg, "/prices", h.Prices, deleteGuard)
	prices.POST("/calculate", h.Actions.CalculatePrice)

	shipping := registerEntity(rg, "/shipping", h.Shipping, deleteGuard)
	shipping.GET("/billing-address", h.Actions.BillingAddress)
	shipping.GET("/time-slots", h.Actions.TimeSlots)
	shipping.POST("/:id/deliver", h.Actions.DeliverShipping)

	rg.GET("/dashboard", h.Actions.Dashboard)
	rg.GET("/events", h.SSE.Stream)
}

func registerEntity[T entity.Record, R any](rg *gin.RouterGroup, path string, h *EntityHandler[T, R], deleteGuard []gin.HandlerFunc) *gin.RouterGroup {
	g := rg.Group(path)
	g.GET("", h.List)
	g.POST("", h.Create)
	g.POST("/validate", h.Validate)
	g.GET("/options", h.Options)
	g.GET("/export", h.Export)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	del := append(append([]gin.HandlerFunc{}, deleteGuard...), h.Delete)
	g.DELETE("/:id", del...)
	return g
}
