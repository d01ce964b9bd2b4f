package service

import (
	"fmt"

	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"github.com/bitfantasy/nimo-dms/internal/dms/resolver"
	"github.com/bitfantasy/nimo-dms/internal/dms/store"
	"github.com/bitfantasy/nimo-dms/internal/dms/validation"
	"go.uber.org/zap"
)

// 更新时由存储层维护、不随表单改写的字段
var preservedFields = []string{"id", "created_at", "status"}

// Column 导出列
type Column struct {
	Key   string
	Title string
	Width float64
}

// Descriptor 实体列表管理的配置
type Descriptor[T entity.Record, R any] struct {
	Name     string
	Format   store.IDFormat
	Search   func(T) []string
	Messages validation.Messages
	Label    func(T) string
	Parent   func(T) string
	Columns  []Column

	// NewRequest 返回空表单
	NewRequest func() R

	// Prepare 在校验前补全表单，可为空。form 为待校验的完整表单，
	// submitted 为本次请求提交的字段，新增时二者相同
	Prepare func(form, submitted map[string]any)

	// Build 由校验通过的表单生成记录，负责快照冗余字段和初始状态
	Build func(R) T

	// Derive 重算派生字段，种子数据加载时调用，可为空
	Derive func(T)
}

// ListResult 列表结果
type ListResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
}

// Manager 单个实体的列表管理：存储、校验、搜索、引用解析
type Manager[T entity.Record, R any] struct {
	desc   Descriptor[T, R]
	store  *store.Store[T]
	rel    *resolver.Relation[T]
	valid  *validation.Validator
	logger *zap.Logger
}

// NewManager 创建实体管理器
func NewManager[T entity.Record, R any](desc Descriptor[T, R], st *store.Store[T], rel *resolver.Relation[T], v *validation.Validator, logger *zap.Logger) *Manager[T, R] {
	return &Manager[T, R]{desc: desc, store: st, rel: rel, valid: v, logger: logger}
}

func (m *Manager[T, R]) Name() string                { return m.desc.Name }
func (m *Manager[T, R]) Store() *store.Store[T]      { return m.store }
func (m *Manager[T, R]) Columns() []Column           { return m.desc.Columns }
func (m *Manager[T, R]) Policy() store.MissingPolicy { return m.store.Policy() }

// Seed 加载种子数据并重算派生字段
func (m *Manager[T, R]) Seed(records []T) {
	if m.desc.Derive != nil {
		for _, rec := range records {
			m.desc.Derive(rec)
		}
	}
	m.store.Seed(records)
	m.logger.Debug("Seeded entity", zap.String("entity", m.desc.Name), zap.Int("count", len(records)))
}

// List 按关键字、状态过滤后分页
func (m *Manager[T, R]) List(params store.ListParams) *ListResult[T] {
	items := store.Filter(m.store.List(), params.Keyword, m.desc.Search)
	items = store.FilterStatus(items, params.Status)
	return &ListResult[T]{
		Items: store.Paginate(items, params.Page, params.Size),
		Total: len(items),
		Page:  params.Page,
		Size:  params.Size,
	}
}

// Get 获取单条记录
func (m *Manager[T, R]) Get(id string) (T, error) {
	rec, ok := m.store.Get(id)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %s: %w", m.desc.Name, id, store.ErrNotFound)
	}
	return rec, nil
}

// Validate 校验表单，返回类型化的请求或全部字段错误
func (m *Manager[T, R]) Validate(input map[string]any) (R, validation.FieldErrors) {
	return m.validate(input, input)
}

func (m *Manager[T, R]) validate(form, submitted map[string]any) (R, validation.FieldErrors) {
	if m.desc.Prepare != nil {
		m.desc.Prepare(form, submitted)
	}
	req := m.desc.NewRequest()
	if errs := m.valid.Bind(form, req, m.desc.Messages); len(errs) > 0 {
		var zero R
		return zero, errs
	}
	return req, nil
}

// Create 校验并新增记录
func (m *Manager[T, R]) Create(input map[string]any) (T, error) {
	req, errs := m.Validate(input)
	if errs != nil {
		var zero T
		return zero, errs
	}
	rec := m.store.Insert(m.desc.Build(req))
	m.logger.Info("Created record", zap.String("entity", m.desc.Name), zap.String("id", rec.GetID()))
	return rec, nil
}

// Update 合并已有记录与部分输入，重新校验并按 id 替换
func (m *Manager[T, R]) Update(id string, input map[string]any) (T, error) {
	var zero T
	existing, ok := m.store.Get(id)
	if !ok {
		if m.store.Policy() == store.MissingSilent {
			return zero, nil
		}
		return zero, fmt.Errorf("%s %s: %w", m.desc.Name, id, store.ErrNotFound)
	}
	form, err := store.ToMap(existing)
	if err != nil {
		return zero, fmt.Errorf("encode %s %s: %w", m.desc.Name, id, err)
	}
	for k, v := range input {
		form[k] = v
	}
	req, errs := m.validate(form, input)
	if errs != nil {
		return zero, errs
	}
	patch, err := store.ToMap(m.desc.Build(req))
	if err != nil {
		return zero, fmt.Errorf("encode %s %s: %w", m.desc.Name, id, err)
	}
	for _, k := range preservedFields {
		delete(patch, k)
	}
	rec, err := m.store.ReplaceByID(id, patch)
	if err != nil {
		return zero, err
	}
	m.logger.Info("Updated record", zap.String("entity", m.desc.Name), zap.String("id", id))
	return rec, nil
}

// Delete 删除记录，返回是否确有记录被删除
func (m *Manager[T, R]) Delete(id string) (bool, error) {
	removed, err := m.store.DeleteByID(id)
	if err != nil || !removed {
		return false, err
	}
	m.logger.Info("Deleted record", zap.String("entity", m.desc.Name), zap.String("id", id))
	return true, nil
}

// Mutate 对单条记录做状态变更
func (m *Manager[T, R]) Mutate(id string, fn func(T) error) (T, error) {
	return m.store.Mutate(id, fn)
}

// Options 返回下拉选项，parentID 非空时按父键收窄
func (m *Manager[T, R]) Options(parentID string) []resolver.Option {
	return m.rel.Options(parentID)
}

// Rows 以字段映射形式返回全部记录，供导出使用
func (m *Manager[T, R]) Rows() ([]map[string]any, error) {
	items := m.store.List()
	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		row, err := store.ToMap(item)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", m.desc.Name, item.GetID(), err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
