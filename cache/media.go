package cache

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/singleflight"
)

// LoadFunc 缓存未命中时加载原始数据
type LoadFunc func(ctx context.Context) ([]byte, error)

// MediaCache 媒体字节缓存
// 上传后的媒体内容不可变，因此只需 TTL 淘汰，无需主动失效。
// 同一路径的并发未命中合并为一次加载。
type MediaCache struct {
	provider Provider
	ttl      time.Duration
	maxBytes int64
	group    singleflight.Group
}

// NewMediaCache 创建媒体缓存；maxBytes 以上的内容不写入缓存
func NewMediaCache(provider Provider, ttl time.Duration, maxBytes int64) *MediaCache {
	return &MediaCache{provider: provider, ttl: ttl, maxBytes: maxBytes}
}

// Cacheable 判断给定大小的内容是否会被缓存
func (c *MediaCache) Cacheable(size int64) bool {
	return c != nil && c.provider != nil && size > 0 && size <= c.maxBytes
}

// Load 优先从缓存读取，未命中时调用 load 并回填
func (c *MediaCache) Load(ctx context.Context, storagePath string, load LoadFunc) (data []byte, hit bool, err error) {
	key := MediaBytes.Build(storagePath)

	if err := c.provider.Get(ctx, key, &data); err == nil {
		return data, true, nil
	} else if !IsCacheMiss(err) {
		log.Printf("[Cache] Failed to read %s: %v", key, err)
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		loaded, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if int64(len(loaded)) <= c.maxBytes {
			if err := c.provider.Set(ctx, key, loaded, c.ttl); err != nil {
				log.Printf("[Cache] Failed to store %s: %v", key, err)
			}
		}
		return loaded, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.([]byte), false, nil
}
