package cache

import (
	"context"
	"time"
)

// LayeredCache implements a two-level cache: memory in front of a shared
// remote layer. Remote failures degrade to memory-only.
type LayeredCache struct {
	mem    *MemoryCache
	remote Service
	// memTTL caps how long L1 keeps a value fetched from L2.
	memTTL time.Duration
}

func NewLayeredCache(remote Service, memTTL time.Duration, opts ...MemoryOption) *LayeredCache {
	return &LayeredCache{
		mem:    NewMemoryCache(opts...),
		remote: remote,
		memTTL: memTTL,
	}
}

func (lc *LayeredCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_ = lc.mem.Set(ctx, key, value, ttl)
	return lc.remote.Set(ctx, key, value, ttl)
}

func (lc *LayeredCache) Get(ctx context.Context, key string) ([]byte, error) {
	if v, err := lc.mem.Get(ctx, key); err == nil {
		return v, nil
	}
	v, err := lc.remote.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	_ = lc.mem.Set(ctx, key, v, lc.memTTL)
	return v, nil
}

func (lc *LayeredCache) Delete(ctx context.Context, keys ...string) error {
	_ = lc.mem.Delete(ctx, keys...)
	return lc.remote.Delete(ctx, keys...)
}

func (lc *LayeredCache) Close() error {
	_ = lc.mem.Close()
	return lc.remote.Close()
}
