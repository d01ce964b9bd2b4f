package seed

import (
	"context"
	"fmt"

	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type databaseSource struct {
	db *gorm.DB
}

// NewDatabaseSource 从数据库读取种子数据，只读，不回写
func NewDatabaseSource(db *gorm.DB) Source {
	return &databaseSource{db: db}
}

// OpenDatabase 按驱动名打开数据库连接，支持 postgres 和 sqlite
func OpenDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite", "":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func (s *databaseSource) Load(ctx context.Context) (*Dataset, error) {
	db := s.db.WithContext(ctx)
	var ds Dataset
	tables := []struct {
		name string
		dest interface{}
	}{
		{"customers", &ds.Customers},
		{"models", &ds.Models},
		{"colors", &ds.Colors},
		{"enquiries", &ds.Enquiries},
		{"orders", &ds.Orders},
		{"prices", &ds.Prices},
		{"shipping", &ds.Shipping},
	}
	for _, t := range tables {
		if err := db.Order("id").Find(t.dest).Error; err != nil {
			return nil, fmt.Errorf("load %s: %w", t.name, err)
		}
	}
	return &ds, nil
}

// Store 将数据集写入数据库，供初始化种子库和测试使用
func Store(ctx context.Context, db *gorm.DB, ds *Dataset) error {
	if err := entity.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate dms tables: %w", err)
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		batches := []struct {
			n    int
			rows interface{}
		}{
			{len(ds.Customers), ds.Customers},
			{len(ds.Models), ds.Models},
			{len(ds.Colors), ds.Colors},
			{len(ds.Enquiries), ds.Enquiries},
			{len(ds.Orders), ds.Orders},
			{len(ds.Prices), ds.Prices},
			{len(ds.Shipping), ds.Shipping},
		}
		for _, b := range batches {
			if b.n == 0 {
				continue
			}
			if err := tx.Create(b.rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
