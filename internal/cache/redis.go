package cache

import (
	"context"
	"encoding/json"
	"time"

	"flexygig/internal/config"
	"flexygig/internal/logger"

	"github.com/redis/go-redis/v9"
)

// Cache - read-through кэш поверх Redis. Недоступный Redis не ломает
// запросы: промах кэша эквивалентен его отсутствию.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(cfg *config.Config) *Cache {
	if cfg.Redis.Addr == "" {
		return &Cache{}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
	ttl := time.Duration(cfg.Redis.TTL) * time.Second
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Cache{client: client, ttl: ttl}
}

// GetJSON читает ключ и декодирует значение в dest. Возвращает false
// при промахе, ошибке Redis или отключённом кэше.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.CtxWarn(ctx, "redis get failed", "key", key, "error", err.Error())
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logger.CtxWarn(ctx, "redis cache payload corrupted", "key", key, "error", err.Error())
		return false
	}
	return true
}

// SetJSON сохраняет значение с TTL. Ошибки только логируются.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.CtxWarn(ctx, "redis set failed", "key", key, "error", err.Error())
	}
}

// Invalidate удаляет ключи, игнорируя ошибки Redis.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.CtxWarn(ctx, "redis del failed", "error", err.Error())
	}
}

// Close закрывает соединение с Redis.
func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
