package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fablab-billing/internal/pkg/config"
	"fablab-billing/internal/pkg/errs"
	"fablab-billing/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const (
	pricingKey = "fablab:pricing:rate-card"
	defaultTTL = 5 * time.Minute
)

// PricingCache keeps the whole rate card under a single key.
type PricingCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewPricingCache(rdb redis.Cmdable, ttl time.Duration) *PricingCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &PricingCache{rdb: rdb, ttl: ttl}
}

func (c *PricingCache) Get(ctx context.Context) ([]queries.PricingRuleView, bool, error) {
	bs, err := c.rdb.Get(ctx, pricingKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "redis get rate card")
	}

	var rules []queries.PricingRuleView
	if err := json.Unmarshal(bs, &rules); err != nil {
		// undecodable payloads count as a miss
		return nil, false, nil
	}
	return rules, true, nil
}

func (c *PricingCache) Set(ctx context.Context, rules []queries.PricingRuleView) error {
	payload, err := json.Marshal(rules)
	if err != nil {
		return errs.Wrap(err, "encode rate card")
	}
	if err := c.rdb.Set(ctx, pricingKey, payload, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set rate card")
	}
	return nil
}

func (c *PricingCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, pricingKey).Err(); err != nil {
		return errs.Wrap(err, "redis del rate card")
	}
	return nil
}

// NewClient returns nil when no address is configured; callers then run without a cache.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "redis ping")
	}
	return client, nil
}
