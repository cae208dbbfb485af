package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyDashboard = "tips:dashboard"

// Cache guarda o dashboard classificado no Redis; é aquecido tanto pelo
// tips-service (busca sob demanda) quanto pelo tips-refresh-worker.
type Cache struct{ R *redis.Client }

func New(r *redis.Client) *Cache { return &Cache{R: r} }

func (c *Cache) GetDashboard(ctx context.Context, dst any) (bool, error) {
	b, err := c.R.Get(ctx, keyDashboard).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(b, dst)
}

func (c *Cache) SetDashboard(ctx context.Context, v any, ttl time.Duration) error {
	b, _ := json.Marshal(v)
	return c.R.Set(ctx, keyDashboard, b, ttl).Err()
}
