package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_dashboard/internal/feature/quotes/domain/entity"
	"stock_dashboard/internal/feature/quotes/usecase"
)

// CachingMarketRepository decorates a MarketRepository with Redis caching.
// History responses and quote snapshots are cached under separate keys; a
// nil Redis client bypasses the cache entirely.
type CachingMarketRepository struct {
	inner     usecase.MarketRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.MarketRepository = (*CachingMarketRepository)(nil)

// NewCachingMarketRepository decorates a MarketRepository with Redis
// caching. If ttl is 0, it defaults to 5 minutes. If namespace is empty, it
// uses "market".
func NewCachingMarketRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MarketRepository, namespace string) *CachingMarketRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "market"
	}
	return &CachingMarketRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GetHistory retrieves candles, checking the cache first and falling back to
// the market data API.
func (c *CachingMarketRepository) GetHistory(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
	if c.rdb == nil {
		return c.inner.GetHistory(ctx, symbol, period)
	}

	key := fmt.Sprintf("%s:chart:%s:%s", c.namespace, safe(symbol), safe(period))

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Candle
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.GetHistory(ctx, symbol, period)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// GetQuote retrieves a quote snapshot, checking the cache first and falling
// back to the market data API.
func (c *CachingMarketRepository) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	if c.rdb == nil {
		return c.inner.GetQuote(ctx, symbol)
	}

	key := fmt.Sprintf("%s:quote:%s", c.namespace, safe(symbol))

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Quote
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}
