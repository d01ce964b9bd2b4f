package handler

import (
	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"github.com/bitfantasy/nimo-dms/internal/dms/pricing"
	"github.com/bitfantasy/nimo-dms/internal/dms/service"
	"github.com/bitfantasy/nimo-dms/internal/dms/sse"
	"github.com/gin-gonic/gin"
)

// ActionHandler 状态操作、价格试算和首页统计
type ActionHandler struct {
	svc *service.Services
	hub *sse.Hub
}

func NewActionHandler(svc *service.Services, hub *sse.Hub) *ActionHandler {
	return &ActionHandler{svc: svc, hub: hub}
}

// ToggleColor POST /colors/:id/toggle
func (h *ActionHandler) ToggleColor(c *gin.Context) {
	id := c.Param("id")
	color, err := h.svc.ToggleColorAvailability(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if color != nil {
		h.publish("colors", id)
	}
	Success(c, color)
}

// ConvertEnquiry POST /enquiries/:id/convert 返回预填的订单草稿
func (h *ActionHandler) ConvertEnquiry(c *gin.Context) {
	id := c.Param("id")
	draft, err := h.svc.ConvertEnquiry(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if draft != nil {
		h.publish("enquiries", id)
	}
	Success(c, draft)
}

// ConfirmOrder POST /orders/:id/confirm
func (h *ActionHandler) ConfirmOrder(c *gin.Context) {
	id := c.Param("id")
	order, err := h.svc.ConfirmOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if order != nil {
		h.publish("orders", id)
	}
	Success(c, order)
}

// DeliverShipping POST /shipping/:id/deliver
func (h *ActionHandler) DeliverShipping(c *gin.Context) {
	id := c.Param("id")
	sh, err := h.svc.DeliverShipping(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if sh != nil {
		h.publish("shipping", id)
	}
	Success(c, sh)
}

// BillingAddress GET /shipping/billing-address?order_id=
func (h *ActionHandler) BillingAddress(c *gin.Context) {
	orderID := c.Query("order_id")
	if orderID == "" {
		BadRequest(c, "order_id is required")
		return
	}
	addr, err := h.svc.BillingAddress(orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, addr)
}

// TimeSlots GET /shipping/time-slots
func (h *ActionHandler) TimeSlots(c *gin.Context) {
	Success(c, entity.TimeSlots)
}

// CalculatePrice POST /prices/calculate 实时试算，不保存
func (h *ActionHandler) CalculatePrice(c *gin.Context) {
	var req pricing.Components
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	Success(c, h.svc.CalculatePrice(req))
}

// Dashboard GET /dashboard
func (h *ActionHandler) Dashboard(c *gin.Context) {
	Success(c, h.svc.Dashboard())
}

func (h *ActionHandler) publish(entityName, id string) {
	if h.hub != nil {
		h.hub.PublishChange(entityName, id, sse.ActionUpdated)
	}
}
