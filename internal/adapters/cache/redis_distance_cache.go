package cache

import (
	"context"
	"delivery-route-optimizer/internal/platform/obs"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "routeopt:dist:"

// Redis backed distance cache. Each origin is one hash whose fields are
// destination keys and whose values are meters. TTL applies per origin.
type RedisDistanceCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDistanceCache(client *redis.Client, ttl time.Duration) *RedisDistanceCache {
	return &RedisDistanceCache{Client: client, TTL: ttl}
}

// OpenRedis returns a client for addr, or nil when addr is empty.
func OpenRedis(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

// Fetch cached distances for one origin and multiple destinations.
func (r *RedisDistanceCache) GetMany(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]int64, err error) {
	defer obs.Time(ctx, "distance.cache.redis.GetMany", "n", len(destinations))(&err)

	if r.Client == nil {
		return nil, errors.New("distance cache: redis client is nil")
	}

	if origin == "" {
		return nil, errors.New("get distance cache: origin must not be empty")
	}

	uniq := uniqueKeys(destinations)
	if len(uniq) == 0 {
		return map[string]int64{}, nil
	}

	vals, err := r.Client.HMGet(ctx, redisKeyPrefix+origin, uniq...).Result()
	if err != nil {
		return nil, fmt.Errorf("get distance cache: hmget %q: %w", origin, err)
	}

	out := make(map[string]int64, len(uniq))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue // field absent
		}
		meters, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("get distance cache: parse %q for dest=%q: %w", s, uniq[i], err)
		}
		out[uniq[i]] = meters
	}

	return out, nil
}

// Store many cached distances for a single origin and refresh its TTL.
func (r *RedisDistanceCache) PutMany(ctx context.Context, origin string, results map[string]int64) (err error) {
	defer obs.Time(ctx, "distance.cache.redis.PutMany", "n", len(results))(&err)

	if r.Client == nil {
		return errors.New("distance cache: redis client is nil")
	}

	if origin == "" {
		return errors.New("insert distance cache: origin must not be empty")
	}

	if len(results) == 0 {
		return nil
	}

	fields := make(map[string]any, len(results))
	for dest, meters := range results {
		if dest == "" {
			return errors.New("insert distance cache: empty destination key")
		}
		fields[dest] = meters
	}

	key := redisKeyPrefix + origin
	_, err = r.Client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, key, fields)
		if r.TTL > 0 {
			p.Expire(ctx, key, r.TTL)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert distance cache: hset %q: %w", origin, err)
	}

	return nil
}
