// Package redislock claims (SKU, hour) cycles across engine replicas.
package redislock

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"adpilot/internal/core/port"
)

// Lock implements port.CycleLock with SET NX. A claim expires after ttl so
// a crashed replica never blocks the next hour's retry for long.
type Lock struct {
	rdb    goredis.Cmdable
	prefix string
	owner  string
	ttl    time.Duration
}

// release deletes the key only when this replica still owns it.
var release = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// New creates a lock. owner identifies this replica in the stored value.
func New(rdb goredis.Cmdable, prefix, owner string, ttl time.Duration) *Lock {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	if prefix == "" {
		prefix = "adpilot:cycle"
	}
	return &Lock{rdb: rdb, prefix: prefix, owner: owner, ttl: ttl}
}

var _ port.CycleLock = (*Lock)(nil)

// NewClient connects to Redis at addr and pings it.
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func (l *Lock) TryAcquire(ctx context.Context, skuID string, hour time.Time) (bool, error) {
	ok, err := l.rdb.SetNX(ctx, l.key(skuID, hour), l.owner, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim cycle: %w", err)
	}
	return ok, nil
}

func (l *Lock) Release(ctx context.Context, skuID string, hour time.Time) error {
	if err := release.Run(ctx, l.rdb, []string{l.key(skuID, hour)}, l.owner).Err(); err != nil {
		return fmt.Errorf("release cycle: %w", err)
	}
	return nil
}

func (l *Lock) key(skuID string, hour time.Time) string {
	return fmt.Sprintf("%s:%s:%s", l.prefix, skuID, hour.UTC().Format("2006010215"))
}
