// Package entity 经销商管理系统的实体定义。
//
// 冗余展示字段（customer_name、model_name 等）在创建或编辑时从关联实体快照写入，
// 之后不随源记录变化而刷新；源记录被删除时快照保持原值。
package entity

import "gorm.io/gorm"

// DateLayout 创建日期、交付日期等日期字段的格式
const DateLayout = "2006-01-02"

// Record 所有实体的公共接口
type Record interface {
	GetID() string
	GetCreatedAt() string
	// Stamp 写入标识与创建日期，仅由 store 在插入和替换时调用
	Stamp(id, createdAt string)
	// StatusValue 列表按状态筛选时使用的值，没有状态的实体返回空串
	StatusValue() string
}

// Base 实体公共字段
type Base struct {
	ID        string `json:"id" gorm:"primaryKey;size:32"`
	CreatedAt string `json:"created_at" gorm:"size:10"`
}

func (b *Base) GetID() string        { return b.ID }
func (b *Base) GetCreatedAt() string { return b.CreatedAt }

func (b *Base) Stamp(id, createdAt string) {
	b.ID = id
	b.CreatedAt = createdAt
}

// AutoMigrate 自动迁移所有DMS表（仅数据库种子源使用）
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// 基础数据
		&Customer{},
		&VehicleModel{},
		&Color{},

		// 销售
		&Enquiry{},
		&Order{},
		&Price{},

		// 交付
		&Shipping{},
	)
}
