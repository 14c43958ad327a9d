package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"CareMap-App/internal/domain/repository"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryBoundaryCache プロセス内メモリの境界キャッシュ
type MemoryBoundaryCache struct {
	mu   sync.RWMutex
	ttl  time.Duration
	now  func() time.Time
	data map[string]memoryEntry
}

var _ repository.BoundaryCache = (*MemoryBoundaryCache)(nil)

// NewMemoryBoundaryCache は TTL 付きのメモリキャッシュを作成する（ttl<=0 は無期限）
func NewMemoryBoundaryCache(ttl time.Duration) *MemoryBoundaryCache {
	return &MemoryBoundaryCache{
		ttl:  ttl,
		now:  time.Now,
		data: make(map[string]memoryEntry),
	}
}

func (c *MemoryBoundaryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if entry.expired(c.now()) {
		c.mu.Lock()
		// ロック解放中に Set で更新されていれば残す
		if current, ok := c.data[key]; ok && current.expired(c.now()) {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

func (c *MemoryBoundaryCache) Set(_ context.Context, key string, value []byte) error {
	entry := memoryEntry{value: value}
	if c.ttl > 0 {
		entry.expiresAt = c.now().Add(c.ttl)
	}
	c.mu.Lock()
	c.data[key] = entry
	c.mu.Unlock()
	return nil
}

// RedisBoundaryCache Redisを使用した境界キャッシュ（複数インスタンスで共有する場合）
type RedisBoundaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ repository.BoundaryCache = (*RedisBoundaryCache)(nil)

// NewRedisBoundaryCache は新しいRedisBoundaryCacheインスタンスを作成
func NewRedisBoundaryCache(client *redis.Client, ttl time.Duration) *RedisBoundaryCache {
	return &RedisBoundaryCache{client: client, ttl: ttl}
}

func (c *RedisBoundaryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("Redisからの取得に失敗: %w", err)
	}
	return b, true, nil
}

func (c *RedisBoundaryCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("Redisへの保存に失敗: %w", err)
	}
	return nil
}
