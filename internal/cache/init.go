package cache

import (
	"github.com/flexprice/clinicbilling/internal/config"
	"github.com/flexprice/clinicbilling/internal/logger"
	"github.com/flexprice/clinicbilling/internal/types"
)

// Initialize builds the cache backend selected in config
func Initialize(cfg *config.Configuration, log *logger.Logger) (Cache, error) {
	log.Infow("initializing cache", "enabled", cfg.Cache.Enabled, "backend", cfg.Cache.Backend)

	if cfg.Cache.Enabled && cfg.Cache.Backend == types.CacheKindRedis {
		c, err := NewRedisCache(cfg, log)
		if err != nil {
			return nil, err
		}
		log.Info("redis cache initialized")
		return c, nil
	}

	log.Info("in-memory cache initialized")
	return NewInMemoryCache(cfg, log), nil
}
