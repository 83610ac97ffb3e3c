// Package cache provides Redis caching decorators for the upstream API
// repositories.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_dashboard/internal/feature/dividends/domain/entity"
	"stock_dashboard/internal/feature/dividends/usecase"
)

// CachingDisclosureRepository decorates a DisclosureRepository with Redis
// caching. It transparently adds caching without modifying the underlying
// repository; a nil Redis client bypasses the cache entirely.
type CachingDisclosureRepository struct {
	inner     usecase.DisclosureRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.DisclosureRepository = (*CachingDisclosureRepository)(nil)

// NewCachingDisclosureRepository decorates a DisclosureRepository with Redis
// caching. If ttl is 0, it defaults to 5 minutes. If namespace is empty, it
// uses "dividends".
func NewCachingDisclosureRepository(rdb *redis.Client, ttl time.Duration, inner usecase.DisclosureRepository, namespace string) *CachingDisclosureRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "dividends"
	}
	return &CachingDisclosureRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindAllotments retrieves disclosure rows, checking the cache first and
// falling back to the DART API.
func (c *CachingDisclosureRepository) FindAllotments(ctx context.Context, corpCode string, year int) ([]entity.DividendAllotment, error) {
	if c.rdb == nil {
		return c.inner.FindAllotments(ctx, corpCode, year)
	}

	key := c.cacheKey(corpCode, year)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.DividendAllotment
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the upstream API
	out, err := c.inner.FindAllotments(ctx, corpCode, year)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

func (c *CachingDisclosureRepository) cacheKey(corpCode string, year int) string {
	return fmt.Sprintf("%s:%s:%d", c.namespace, safe(corpCode), year)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
