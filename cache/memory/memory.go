package memory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/anoixa/group-gallery/cache/types"
	"github.com/dgraph-io/ristretto"
)

// Memory 基于 ristretto 的进程内缓存，[]byte 的成本按字节数计算
type Memory struct {
	client *ristretto.Cache
}

// Config 内存缓存配置
type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

// DefaultConfig 按最大字节数生成配置
func DefaultConfig(maxBytes int64) Config {
	if maxBytes <= 0 {
		maxBytes = 256 << 20
	}
	return Config{
		NumCounters: 1_000_000,
		MaxCost:     maxBytes,
		BufferItems: 64,
	}
}

// NewMemory 创建新的内存缓存提供者
func NewMemory(config Config) (*Memory, error) {
	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: config.NumCounters,
		MaxCost:     config.MaxCost,
		BufferItems: config.BufferItems,
		Metrics:     config.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Memory{client: client}, nil
}

// Set 设置缓存项；ristretto 写入是异步的，Wait 之后才对 Get 可见
func (m *Memory) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	var (
		stored interface{} = value
		cost   int64       = 1
	)
	if data, ok := value.([]byte); ok {
		cost = int64(len(data))
	} else {
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		stored = data
		cost = int64(len(data))
	}

	if m.client.SetWithTTL(key, stored, cost, expiration) {
		m.client.Wait()
	}
	return nil
}

// Get 获取缓存项
func (m *Memory) Get(ctx context.Context, key string, dest interface{}) error {
	value, found := m.client.Get(key)
	if !found {
		return types.ErrCacheMiss
	}
	data, ok := value.([]byte)
	if !ok {
		return types.ErrCacheMiss
	}

	if out, ok := dest.(*[]byte); ok {
		*out = data
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return types.ErrCacheMiss
	}
	return nil
}

// Delete 删除缓存项
func (m *Memory) Delete(ctx context.Context, key string) error {
	m.client.Del(key)
	return nil
}

// Exists 检查缓存项是否存在
func (m *Memory) Exists(ctx context.Context, key string) (bool, error) {
	_, found := m.client.Get(key)
	return found, nil
}

// Health 进程内缓存始终可用
func (m *Memory) Health(ctx context.Context) error {
	return nil
}

// Close 关闭缓存
func (m *Memory) Close() error {
	m.client.Close()
	return nil
}

// Name 返回缓存提供者名称
func (m *Memory) Name() string {
	return "memory"
}
