package ratelimit

import (
	"context"
	"time"
)

type Config struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, cfg Config) (bool, error)
	GetRemaining(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
