package handler

import (
	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"github.com/bitfantasy/nimo-dms/internal/dms/service"
	"github.com/bitfantasy/nimo-dms/internal/dms/sse"
	"github.com/gin-gonic/gin"
)

// EntityHandler 单个实体的增删改查接口
type EntityHandler[T entity.Record, R any] struct {
	mgr *service.Manager[T, R]
	svc *service.Services
	hub *sse.Hub
}

func NewEntityHandler[T entity.Record, R any](mgr *service.Manager[T, R], svc *service.Services, hub *sse.Hub) *EntityHandler[T, R] {
	return &EntityHandler[T, R]{mgr: mgr, svc: svc, hub: hub}
}

// List GET /{entity}?keyword=&status=&page=&size=
func (h *EntityHandler[T, R]) List(c *gin.Context) {
	Success(c, h.mgr.List(GetListParams(c)))
}

// Get GET /{entity}/:id
func (h *EntityHandler[T, R]) Get(c *gin.Context) {
	rec, err := h.mgr.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, rec)
}

// Create POST /{entity}
func (h *EntityHandler[T, R]) Create(c *gin.Context) {
	input, err := readInput(c)
	if err != nil {
		BadRequest(c, "invalid JSON body: "+err.Error())
		return
	}
	rec, err := h.mgr.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	h.publish(rec.GetID(), sse.ActionCreated)
	Created(c, rec)
}

// Validate POST /{entity}/validate 只校验不保存
func (h *EntityHandler[T, R]) Validate(c *gin.Context) {
	input, err := readInput(c)
	if err != nil {
		BadRequest(c, "invalid JSON body: "+err.Error())
		return
	}
	req, errs := h.mgr.Validate(input)
	if errs != nil {
		ValidationFailed(c, errs)
		return
	}
	Success(c, req)
}

// Update PUT /{entity}/:id 支持部分字段
func (h *EntityHandler[T, R]) Update(c *gin.Context) {
	input, err := readInput(c)
	if err != nil {
		BadRequest(c, "invalid JSON body: "+err.Error())
		return
	}
	id := c.Param("id")
	rec, err := h.mgr.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	if !isNil(rec) {
		h.publish(id, sse.ActionUpdated)
	}
	Success(c, rec)
}

// Delete DELETE /{entity}/:id
func (h *EntityHandler[T, R]) Delete(c *gin.Context) {
	id := c.Param("id")
	removed, err := h.mgr.Delete(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if removed {
		h.publish(id, sse.ActionDeleted)
	}
	Success(c, nil)
}

// Options GET /{entity}/options?parent_id=
func (h *EntityHandler[T, R]) Options(c *gin.Context) {
	Success(c, h.mgr.Options(c.Query("parent_id")))
}

// Export GET /{entity}/export
func (h *EntityHandler[T, R]) Export(c *gin.Context) {
	f, filename, err := h.svc.Export(h.mgr.Name())
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}

func (h *EntityHandler[T, R]) publish(id, action string) {
	if h.hub != nil {
		h.hub.PublishChange(h.mgr.Name(), id, action)
	}
}
