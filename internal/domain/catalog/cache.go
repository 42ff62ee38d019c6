// internal/domain/catalog/cache.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	productsCacheKey = "catalog:products"
	loadTimeout      = 10 * time.Second
)

// CachedRepository keeps the active product list in Redis.
// Any Redis failure falls through to the wrapped repository.
type CachedRepository struct {
	next Repository
	rdb  *redis.Client
	ttl  time.Duration
	sf   singleflight.Group
	log  logrus.FieldLogger
}

// NewCachedRepository wraps next with a Redis list cache
func NewCachedRepository(next Repository, rdb *redis.Client, ttl time.Duration, log logrus.FieldLogger) *CachedRepository {
	return &CachedRepository{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
		log:  log,
	}
}

// List returns the active products, from cache when possible
func (c *CachedRepository) List(ctx context.Context) ([]Product, error) {
	data, err := c.rdb.Get(ctx, productsCacheKey).Bytes()
	if err == nil {
		var products []Product
		if err := json.Unmarshal(data, &products); err == nil {
			return products, nil
		}
		c.log.WithError(err).Warn("discarding unreadable catalog cache entry")
	} else if !errors.Is(err, redis.Nil) {
		c.log.WithError(err).Warn("catalog cache read failed")
	}

	// The load is shared by every waiting caller, so it must not end with the first one's request.
	v, err, _ := c.sf.Do(productsCacheKey, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		products, err := c.next.List(loadCtx)
		if err != nil {
			return nil, err
		}
		c.store(loadCtx, products)
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Product), nil
}

// GetBySlug looks the product up in the cached list
func (c *CachedRepository) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	products, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Slug == slug {
			p := products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// Invalidate drops the cached list
func (c *CachedRepository) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, productsCacheKey).Err()
}

func (c *CachedRepository) store(ctx context.Context, products []Product) {
	data, err := json.Marshal(products)
	if err != nil {
		c.log.WithError(err).Warn("catalog cache encode failed")
		return
	}
	if err := c.rdb.Set(ctx, productsCacheKey, data, c.ttl).Err(); err != nil {
		c.log.WithError(err).Warn("catalog cache write failed")
	}
}
