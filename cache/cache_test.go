package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/anoixa/group-gallery/cache/memory"
	"github.com/anoixa/group-gallery/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryProvider(t *testing.T) Provider {
	p, err := memory.NewMemory(memory.Config{NumCounters: 1000, MaxCost: 1 << 20, BufferItems: 64})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestKeyBuilder(t *testing.T) {
	kb := NewKeyBuilder("prefix")
	assert.Equal(t, "prefix", kb.Build())
	assert.Equal(t, "prefix:a:b", kb.Build("a", "b"))
	assert.Equal(t, "media_bytes:media/image/x.png", MediaBytes.Build("media/image/x.png"))
}

func TestMediaCache_LoadAndHit(t *testing.T) {
	mc := NewMediaCache(newMemoryProvider(t), time.Minute, 1024)
	ctx := context.Background()

	var calls atomic.Int32
	load := func(ctx context.Context) ([]byte, error) {
		calls.Add(1)
		return []byte("content"), nil
	}

	data, hit, err := mc.Load(ctx, "media/a.png", load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "content", string(data))

	data, hit, err = mc.Load(ctx, "media/a.png", load)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "content", string(data))
	assert.Equal(t, int32(1), calls.Load())
}

func TestMediaCache_SkipsOversized(t *testing.T) {
	mc := NewMediaCache(newMemoryProvider(t), time.Minute, 4)
	ctx := context.Background()

	var calls atomic.Int32
	load := func(ctx context.Context) ([]byte, error) {
		calls.Add(1)
		return []byte("too large"), nil
	}

	for i := 0; i < 2; i++ {
		_, hit, err := mc.Load(ctx, "media/big.png", load)
		require.NoError(t, err)
		assert.False(t, hit)
	}
	assert.Equal(t, int32(2), calls.Load())
	assert.False(t, mc.Cacheable(5))
	assert.True(t, mc.Cacheable(4))
}

func TestMediaCache_LoadError(t *testing.T) {
	mc := NewMediaCache(newMemoryProvider(t), time.Minute, 1024)
	boom := errors.New("storage down")

	_, _, err := mc.Load(context.Background(), "media/x.png", func(ctx context.Context) ([]byte, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestMediaCache_ConcurrentLoadsShareResult(t *testing.T) {
	mc := NewMediaCache(newMemoryProvider(t), time.Minute, 1024)
	ctx := context.Background()

	release := make(chan struct{})
	var calls atomic.Int32
	load := func(ctx context.Context) ([]byte, error) {
		calls.Add(1)
		<-release
		return []byte("shared"), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, _, err := mc.Load(ctx, "media/shared.png", load)
			assert.NoError(t, err)
			assert.Equal(t, "shared", string(data))
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, calls.Load(), int32(5))
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(&config.Config{CacheType: "memory", CacheMemoryMaxMB: 1})
	require.NoError(t, err)
	assert.Equal(t, "memory", p.Name())
	_ = p.Close()

	_, err = NewProvider(&config.Config{CacheType: "memcached"})
	assert.Error(t, err)
}
