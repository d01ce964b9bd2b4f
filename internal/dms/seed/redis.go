package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisSource struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisSource 从 Redis 读取种子数据，每个实体一个 key：<prefix>:<entity>，值为 JSON 数组
func NewRedisSource(rdb *redis.Client, prefix string) Source {
	if prefix == "" {
		prefix = "dms:seed"
	}
	return &redisSource{rdb: rdb, prefix: prefix}
}

func (s *redisSource) key(name string) string {
	return s.prefix + ":" + name
}

func (s *redisSource) Load(ctx context.Context) (*Dataset, error) {
	var ds Dataset
	keys := []struct {
		name string
		dest interface{}
	}{
		{"customers", &ds.Customers},
		{"enquiries", &ds.Enquiries},
		{"orders", &ds.Orders},
		{"models", &ds.Models},
		{"colors", &ds.Colors},
		{"prices", &ds.Prices},
		{"shipping", &ds.Shipping},
	}
	for _, k := range keys {
		raw, err := s.rdb.Get(ctx, s.key(k.name)).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("redis get %s: %w", s.key(k.name), err)
		}
		if err := json.Unmarshal(raw, k.dest); err != nil {
			return nil, fmt.Errorf("decode %s: %w", s.key(k.name), err)
		}
	}
	return &ds, nil
}

// Publish 将数据集写入 Redis，供其他实例作为种子源读取
func Publish(ctx context.Context, rdb *redis.Client, prefix string, ds *Dataset) error {
	src := NewRedisSource(rdb, prefix).(*redisSource)
	values := map[string]interface{}{
		"customers": ds.Customers,
		"enquiries": ds.Enquiries,
		"orders":    ds.Orders,
		"models":    ds.Models,
		"colors":    ds.Colors,
		"prices":    ds.Prices,
		"shipping":  ds.Shipping,
	}
	pipe := rdb.TxPipeline()
	for name, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		pipe.Set(ctx, src.key(name), raw, 0)
	}
	_, err := pipe.Exec(ctx)
	return err
}
