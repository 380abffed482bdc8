package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/go-redis/redis/v8"
)

// ErrStateNotFound 键不存在。调用方统一按"没有历史状态"处理
var ErrStateNotFound = errors.New("state key not found")

// StateStore 用户状态键值端口：进度集合、主题偏好、视图选择、限流窗口
// 都以 JSON 字符串的形式整存整取。业务层不直接触碰存储实现，
// 生产使用 Redis，测试使用内存实现
type StateStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}

type RedisStateStore struct {
	Redis *redis.Client
}

func NewRedisStateStore(rdb *redis.Client) *RedisStateStore {
	return &RedisStateStore{Redis: rdb}
}

func (s *RedisStateStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.Redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrStateNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisStateStore) Set(ctx context.Context, key string, value string) error {
	// 状态无过期时间：与浏览器 localStorage 的生命周期语义一致
	return s.Redis.Set(ctx, key, value, 0).Err()
}

// MemoryStateStore 测试用内存实现
type MemoryStateStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{data: make(map[string]string)}
}

func (s *MemoryStateStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	if !ok {
		return "", ErrStateNotFound
	}
	return val, nil
}

func (s *MemoryStateStore) Set(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}
