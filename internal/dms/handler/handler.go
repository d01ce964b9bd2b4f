package handler

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"github.com/bitfantasy/nimo-dms/internal/dms/service"
	"github.com/bitfantasy/nimo-dms/internal/dms/sse"
	"github.com/bitfantasy/nimo-dms/internal/dms/store"
	"github.com/bitfantasy/nimo-dms/internal/dms/validation"
	"github.com/gin-gonic/gin"
)

// 业务错误码
const (
	CodeBadRequest    = 10001
	CodeNotFound      = 10002
	CodeInvalidStatus = 10004
	CodeInternal      = 50001
)

// Handlers DMS HTTP处理器集合
type Handlers struct {
	Customers *EntityHandler[*entity.Customer, *service.CustomerRequest]
	Enquiries *EntityHandler[*entity.Enquiry, *service.EnquiryRequest]
	Orders    *EntityHandler[*entity.Order, *service.OrderRequest]
	Models    *EntityHandler[*entity.VehicleModel, *service.ModelRequest]
	Colors    *EntityHandler[*entity.Color, *service.ColorRequest]
	Prices    *EntityHandler[*entity.Price, *service.PriceRequest]
	Shipping  *EntityHandler[*entity.Shipping, *service.ShippingRequest]
	Actions   *ActionHandler
	SSE       *SSEHandler
}

func NewHandlers(svc *service.Services, hub *sse.Hub) *Handlers {
	return &Handlers{
		Customers: NewEntityHandler(svc.Customers, svc, hub),
		Enquiries: NewEntityHandler(svc.Enquiries, svc, hub),
		Orders:    NewEntityHandler(svc.Orders, svc, hub),
		Models:    NewEntityHandler(svc.Models, svc, hub),
		Colors:    NewEntityHandler(svc.Colors, svc, hub),
		Prices:    NewEntityHandler(svc.Prices, svc, hub),
		Shipping:  NewEntityHandler(svc.Shipping, svc, hub),
		Actions:   NewActionHandler(svc, hub),
		SSE:       NewSSEHandler(hub),
	}
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": data})
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": data})
}

// BadRequest 参数错误响应
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"code": CodeBadRequest, "message": message})
}

// ValidationFailed 表单校验失败，data 为字段到错误信息的映射
func ValidationFailed(c *gin.Context, errs validation.FieldErrors) {
	c.JSON(http.StatusBadRequest, gin.H{"code": CodeBadRequest, "message": "validation failed", "data": errs})
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"code": CodeNotFound, "message": message})
}

// InternalError 服务器错误响应
func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"code": CodeInternal, "message": message})
}

// respondError 按错误类型映射响应码
func respondError(c *gin.Context, err error) {
	var fe validation.FieldErrors
	switch {
	case errors.As(err, &fe):
		ValidationFailed(c, fe)
	case errors.Is(err, store.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusConflict, gin.H{"code": CodeInvalidStatus, "message": err.Error()})
	default:
		_ = c.Error(err)
		InternalError(c, err.Error())
	}
}

// GetListParams 从请求获取列表参数，size=0 返回全部
func GetListParams(c *gin.Context) store.ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	if page < 1 {
		page = 1
	}
	if size < 0 {
		size = 0
	}
	return store.ListParams{
		Keyword: c.Query("keyword"),
		Status:  c.Query("status"),
		Page:    page,
		Size:    size,
	}
}

// readInput 读取 JSON 请求体，数字保留为 json.Number
func readInput(c *gin.Context) (map[string]any, error) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	return store.DecodeMap(raw)
}

// isNil 静默策略下缺失的记录以空指针返回
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
