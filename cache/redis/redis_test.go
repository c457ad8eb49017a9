package redis

import (
	"context"
	"testing"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestNewRedis_Validation(t *testing.T) {
	_, err := NewRedis(Config{})
	assert.Error(t, err)
}

func TestNewRedis_Unreachable(t *testing.T) {
	_, err := NewRedis(Config{Address: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond})
	assert.Error(t, err)
}

func TestRedis_UnreachableOperationsFail(t *testing.T) {
	r := newWithClient(goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	}))
	t.Cleanup(func() { _ = r.Close() })
	ctx := context.Background()

	assert.Error(t, r.Set(ctx, "k", []byte("v"), time.Minute))
	var out []byte
	assert.Error(t, r.Get(ctx, "k", &out))
	assert.Error(t, r.Health(ctx))
	assert.Equal(t, "redis", r.Name())
}
