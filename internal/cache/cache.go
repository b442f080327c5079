// Package cache provides a Redis cache-aside layer for exchange list
// views. Entries are invalidated for both parties whenever an
// exchange is created or transitioned.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/himanshu-suthar-simform/skillswap/internal/utils/config"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/logger"
)

const (
	keyPrefix  = "skillswap:"
	defaultTTL = 5 * time.Minute
)

type ICache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	DeletePattern(ctx context.Context, pattern string) error
}

// ExchangeListKey identifies one page of one user's role-scoped
// exchange list.
func ExchangeListKey(role string, userID uint, page, pageSize int) string {
	return fmt.Sprintf("exchanges:%s:%d:p%d:s%d", role, userID, page, pageSize)
}

// ExchangeListPattern matches every cached exchange list page of one
// user regardless of role.
func ExchangeListPattern(userID uint) string {
	return fmt.Sprintf("exchanges:*:%d:*", userID)
}

type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

func New(appConfig *config.AppConfig, logger *logger.Logger) ICache {
	if appConfig.Redis.Addr == "" {
		logger.Info("redis not configured, exchange list caching disabled")
		return NewNoop()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     appConfig.Redis.Addr,
		Password: appConfig.Redis.Pass,
	})

	return &Cache{
		client: client,
		ttl:    defaultTTL,
		logger: logger,
	}
}

func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil // cache miss
		}
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyPrefix+key, data, c.ttl).Err()
}

func (c *Cache) DeletePattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Noop satisfies ICache when no Redis is available; every lookup is a
// miss.
type Noop struct{}

func NewNoop() ICache {
	return &Noop{}
}

func (n *Noop) Get(_ context.Context, _ string, _ interface{}) (bool, error) { return false, nil }
func (n *Noop) Set(_ context.Context, _ string, _ interface{}) error         { return nil }
func (n *Noop) DeletePattern(_ context.Context, _ string) error              { return nil }
