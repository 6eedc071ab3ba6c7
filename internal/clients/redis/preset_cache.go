package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
	"github.com/yungbote/neuroadapt-backend/internal/presets"
)

// CachedPreset is the read-model served by GET /api/presets/current.
type CachedPreset struct {
	Preset     presets.Preset     `json:"preset"`
	Settings   presets.UISettings `json:"settings"`
	DecisionID uuid.UUID          `json:"decision_id"`
	DecidedAt  time.Time          `json:"decided_at"`
}

type PresetCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*CachedPreset, error)
	Set(ctx context.Context, userID uuid.UUID, v *CachedPreset) error
	Delete(ctx context.Context, userID uuid.UUID) error
	Close() error
}

type presetCache struct {
	log    *logger.Logger
	rdb    *goredis.Client
	prefix string
	ttl    time.Duration
}

type PresetCacheConfig struct {
	Addr   string
	Prefix string
	TTL    time.Duration
}

// NewPresetCache connects to Redis. An empty address yields a cache that
// never hits, so callers fall through to the database.
func NewPresetCache(log *logger.Logger, cfg PresetCacheConfig) (PresetCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		log.Info("REDIS_ADDR not set; preset cache disabled")
		return NoopPresetCache{}, nil
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = "preset:current:"
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &presetCache{
		log:    log.With("service", "RedisPresetCache"),
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
	}, nil
}

func (c *presetCache) key(userID uuid.UUID) string {
	return c.prefix + userID.String()
}

// Get returns nil, nil on a miss.
func (c *presetCache) Get(ctx context.Context, userID uuid.UUID) (*CachedPreset, error) {
	raw, err := c.rdb.Get(ctx, c.key(userID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var v CachedPreset
	if err := json.Unmarshal(raw, &v); err != nil {
		c.log.Warn("bad cached preset payload; dropping", "user_id", userID, "error", err)
		_ = c.rdb.Del(ctx, c.key(userID)).Err()
		return nil, nil
	}
	return &v, nil
}

func (c *presetCache) Set(ctx context.Context, userID uuid.UUID, v *CachedPreset) error {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(userID), raw, c.ttl).Err()
}

func (c *presetCache) Delete(ctx context.Context, userID uuid.UUID) error {
	return c.rdb.Del(ctx, c.key(userID)).Err()
}

func (c *presetCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

type NoopPresetCache struct{}

func (NoopPresetCache) Get(context.Context, uuid.UUID) (*CachedPreset, error) { return nil, nil }
func (NoopPresetCache) Set(context.Context, uuid.UUID, *CachedPreset) error   { return nil }
func (NoopPresetCache) Delete(context.Context, uuid.UUID) error               { return nil }
func (NoopPresetCache) Close() error                                          { return nil }
