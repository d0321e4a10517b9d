package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/restockly/backend/internal/config"
	"github.com/restockly/backend/internal/domain"
	"github.com/restockly/backend/internal/repository"
)

const (
	itemKeyPrefix     = "inventory:item:"
	itemScanBatchSize = 100
)

// CachedInventoryRepository decorates an InventoryRepository with a
// per-SKU redis cache. Cache misses and redis failures fall through to the
// inner repository; the cache never fails a fetch.
type CachedInventoryRepository struct {
	inner  repository.InventoryRepository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedInventoryRepository wraps inner with a redis cache. When the
// cache is disabled in config, inner is returned unchanged.
func NewCachedInventoryRepository(inner repository.InventoryRepository, cfg config.CacheConfig) (repository.InventoryRepository, error) {
	if !cfg.Enabled {
		return inner, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &CachedInventoryRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}, nil
}

func (c *CachedInventoryRepository) FetchItems(ctx context.Context, skus []string) ([]domain.InventoryItem, error) {
	cached, missing := c.lookup(ctx, skus)
	if len(missing) == 0 {
		return cached, nil
	}

	fetched, err := c.inner.FetchItems(ctx, missing)
	if err != nil {
		return nil, err
	}
	c.store(ctx, fetched)

	return append(cached, fetched...), nil
}

// FetchAll always hits the inner repository; a whole-catalog scan through
// per-SKU keys would be slower than the source query. Fetched items still
// warm the cache for subsequent targeted calls.
func (c *CachedInventoryRepository) FetchAll(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := c.inner.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, items)
	return items, nil
}

// InvalidateAll drops every cached item.
func (c *CachedInventoryRepository) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, itemKeyPrefix, itemScanBatchSize)
}

func (c *CachedInventoryRepository) lookup(ctx context.Context, skus []string) (hits []domain.InventoryItem, missing []string) {
	if len(skus) == 0 {
		return nil, nil
	}

	keys := make([]string, len(skus))
	for i, sku := range skus {
		keys[i] = itemKeyPrefix + sku
	}

	payloads, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		log.Warn().Err(err).Msg("inventory cache: mget failed, falling through")
		return nil, skus
	}

	for i, payload := range payloads {
		raw, ok := payload.(string)
		if !ok {
			missing = append(missing, skus[i])
			continue
		}

		var item domain.InventoryItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			log.Warn().Err(err).Str("sku", skus[i]).Msg("inventory cache: bad payload")
			missing = append(missing, skus[i])
			continue
		}
		hits = append(hits, item)
	}

	return hits, missing
}

func (c *CachedInventoryRepository) store(ctx context.Context, items []domain.InventoryItem) {
	for _, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			log.Warn().Err(err).Str("sku", item.SKU).Msg("inventory cache: marshal failed")
			continue
		}
		if err := c.client.Set(ctx, itemKeyPrefix+item.SKU, payload, c.ttl).Err(); err != nil {
			log.Warn().Err(err).Str("sku", item.SKU).Msg("inventory cache: set failed")
		}
	}
}
