package reportcache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/kelolalabs/kelola/internal/config"
)

// Collections whose mutations invalidate cached reports.
const (
	CollectionRentals  = "rentals"
	CollectionPayments = "payments"
	CollectionRooms    = "rooms"
)

const defaultTTL = 10 * time.Minute

// Cache stores rendered report payloads in redis under keys that embed
// a version counter per collection. A mutation bumps its collection's
// counter, which silently orphans every key built against the old
// version; nothing stale is ever served and nothing needs deleting.
type Cache struct {
	rdb *redis.Client
	log *zap.Logger
	ttl time.Duration
}

func New(cfg config.Config, log *zap.Logger) *Cache {
	c := &Cache{log: log.Named("reportcache"), ttl: defaultTTL}
	if !cfg.Redis.Enabled {
		return c
	}
	c.rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return c
}

// NewWithClient wires an existing client, used by tests.
func NewWithClient(rdb *redis.Client, log *zap.Logger) *Cache {
	return &Cache{rdb: rdb, log: log.Named("reportcache"), ttl: defaultTTL}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Key builds a versioned cache key for the given report name and
// discriminator (typically the as-of month).
func (c *Cache) Key(ctx context.Context, name, discriminator string) string {
	if !c.Enabled() {
		return fmt.Sprintf("report:%s:%s", name, discriminator)
	}
	versions := make([]string, 0, 3)
	for _, collection := range []string{CollectionRentals, CollectionPayments, CollectionRooms} {
		v, err := c.rdb.Get(ctx, versionKey(collection)).Result()
		if err != nil {
			v = "0"
		}
		versions = append(versions, v)
	}
	return fmt.Sprintf("report:%s:%s:v%s", name, discriminator, strings.Join(versions, "."))
}

func (c *Cache) Get(ctx context.Context, key string, out any) bool {
	if !c.Enabled() {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.log.Warn("dropping undecodable cache entry", zap.String("key", key), zap.Error(err))
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

func (c *Cache) Set(ctx context.Context, key string, value any) {
	if !c.Enabled() {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Bump invalidates every cached report built over the given collections.
func (c *Cache) Bump(ctx context.Context, collections ...string) {
	if !c.Enabled() {
		return
	}
	for _, collection := range collections {
		if err := c.rdb.Incr(ctx, versionKey(collection)).Err(); err != nil {
			c.log.Warn("cache version bump failed", zap.String("collection", collection), zap.Error(err))
		}
	}
}

func versionKey(collection string) string {
	return "report:version:" + collection
}

var Module = fx.Module("reportcache",
	fx.Provide(New),
)
