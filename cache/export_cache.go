package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ExportKey 存渲染好的 items.xlsx
const ExportKey = "inventory:export:items.xlsx"

// ExportCache 把最近一次导出的工作簿放在 redis 里。
// nil 或没有 client 时永远 miss
type ExportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewExportCache(rdb *redis.Client, ttl time.Duration) *ExportCache {
	return &ExportCache{rdb: rdb, ttl: ttl}
}

func (c *ExportCache) enabled() bool { return c != nil && c.rdb != nil }

func (c *ExportCache) Get(ctx context.Context) ([]byte, bool, error) {
	if !c.enabled() {
		return nil, false, nil
	}
	b, err := c.rdb.Get(ctx, ExportKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (c *ExportCache) Set(ctx context.Context, b []byte) error {
	if !c.enabled() {
		return nil
	}
	return c.rdb.Set(ctx, ExportKey, b, c.ttl).Err()
}

// Invalidate 在任何写操作之后调用
func (c *ExportCache) Invalidate(ctx context.Context) error {
	if !c.enabled() {
		return nil
	}
	return c.rdb.Del(ctx, ExportKey).Err()
}
