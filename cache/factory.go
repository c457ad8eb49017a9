package cache

import (
	"fmt"
	"log"

	"github.com/anoixa/group-gallery/cache/memory"
	"github.com/anoixa/group-gallery/cache/redis"
	"github.com/anoixa/group-gallery/config"
)

// NewProvider 按配置创建缓存提供者
func NewProvider(cfg *config.Config) (Provider, error) {
	cacheType := cfg.CacheType
	if cacheType == "" {
		cacheType = "memory"
	}

	var (
		provider Provider
		err      error
	)
	switch cacheType {
	case "memory":
		provider, err = memory.NewMemory(memory.DefaultConfig(cfg.CacheMemoryMaxMB << 20))
	case "redis":
		provider, err = redis.NewRedis(redis.Config{
			Address:  cfg.CacheRedisAddr,
			Password: cfg.CacheRedisPassword,
			DB:       cfg.CacheRedisDB,
		})
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cacheType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s cache: %w", cacheType, err)
	}

	log.Printf("[Cache] Using '%s' cache provider", provider.Name())
	return provider, nil
}
