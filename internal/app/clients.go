package app

import (
	"fmt"

	"github.com/yungbote/neuroadapt-backend/internal/clients/redis"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type Clients struct {
	PresetCache redis.PresetCache
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	// Redis
	cache, err := redis.NewPresetCache(log, redis.PresetCacheConfig{
		Addr: cfg.RedisAddr,
		TTL:  cfg.PresetCacheTTL,
	})
	if err != nil {
		return Clients{}, fmt.Errorf("init redis preset cache: %w", err)
	}
	return Clients{PresetCache: cache}, nil
}

func (c Clients) Close() {
	if c.PresetCache != nil {
		_ = c.PresetCache.Close()
	}
}
