package gacha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/logger"
	"github.com/redis/go-redis/v9"

	"gacha-backend/models"
)

const catalogKeyPrefix = "gacha:catalog:pool:"

// CachedCatalog is a read-through Redis cache in front of another provider.
// Redis being down never fails a fetch; the wrapped provider is asked instead.
type CachedCatalog struct {
	client redis.UniversalClient
	next   CatalogProvider
	key    string
	ttl    time.Duration
}

func NewCachedCatalog(client redis.UniversalClient, next CatalogProvider, poolType int, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{
		client: client,
		next:   next,
		key:    fmt.Sprintf("%s%d", catalogKeyPrefix, poolType),
		ttl:    ttl,
	}
}

func (c *CachedCatalog) FetchDraftablePool(ctx context.Context) ([]models.Character, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	switch {
	case err == nil:
		var characters []models.Character
		if err := json.Unmarshal(raw, &characters); err == nil {
			return characters, nil
		}
		logger.Warningf("catalog cache: discarding undecodable entry %s", c.key)
	case !errors.Is(err, redis.Nil):
		logger.Warningf("catalog cache: get %s: %v", c.key, err)
	}

	characters, err := c.next.FetchDraftablePool(ctx)
	if err != nil {
		return nil, err
	}
	if len(characters) == 0 {
		return characters, nil
	}

	payload, err := json.Marshal(characters)
	if err != nil {
		return characters, nil
	}
	if err := c.client.Set(ctx, c.key, payload, c.ttl).Err(); err != nil {
		logger.Warningf("catalog cache: set %s: %v", c.key, err)
	}
	return characters, nil
}

// Invalidate drops the cached catalog so the next fetch hits the store.
func (c *CachedCatalog) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("invalidate catalog cache: %w", err)
	}
	return nil
}

var _ CatalogProvider = (*CachedCatalog)(nil)
