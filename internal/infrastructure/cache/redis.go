package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"deskd/internal/shared/config"
	appLogger "deskd/internal/shared/logger"
)

var (
	client   *redis.Client
	clientMu sync.RWMutex
)

// Init establishes the redis connection. Redis is optional; callers should
// skip Init when cfg.Enabled is false.
func Init(cfg *config.RedisConfig) error {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	clientMu.Lock()
	client = rdb
	clientMu.Unlock()

	appLogger.Info("redis connection established", "addr", cfg.GetAddr())
	return nil
}

// Get returns the redis client, or nil when redis is disabled.
func Get() *redis.Client {
	clientMu.RLock()
	defer clientMu.RUnlock()
	return client
}

// Close closes the redis connection
func Close() error {
	clientMu.RLock()
	current := client
	clientMu.RUnlock()

	if current == nil {
		return nil
	}
	if err := current.Close(); err != nil {
		return fmt.Errorf("failed to close redis connection: %w", err)
	}
	appLogger.Info("redis connection closed")
	return nil
}
