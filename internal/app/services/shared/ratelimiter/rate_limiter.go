package ratelimiter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"uniacad-portal/internal/app/contracts"
)

// ResourceLimiter is a fixed-window counter stored in Redis with a TTL equal
// to the window duration. It guards expensive per-student operations such as
// payment-link creation.
type ResourceLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger) *ResourceLimiter {
	return &ResourceLimiter{redis: redis, log: log}
}

type ApplyResourceLimiterInput struct {
	// ResourceName is the entity to be limited (e.g., a student id).
	ResourceName string
	// LimiterGroupName namespaces the limiter key (e.g., payment-checkout).
	LimiterGroupName string
	// WindowDurationSec defines the fixed window length in seconds.
	WindowDurationSec int
	// MaxQuota is the max number of requests allowed within the window.
	MaxQuota int
}

type ApplyResourceLimiterOutput struct {
	Allowed        bool
	RetryAfterSecs int
}

func (l *ResourceLimiter) ApplyResourceLimiter(ctx context.Context, in *ApplyResourceLimiterInput) (*ApplyResourceLimiterOutput, error) {
	if in == nil {
		return &ApplyResourceLimiterOutput{Allowed: false}, fmt.Errorf("nil input")
	}

	resource := strings.ToLower(strings.TrimSpace(in.ResourceName))
	group := strings.ToLower(strings.TrimSpace(in.LimiterGroupName))
	windowSec := in.WindowDurationSec
	if windowSec <= 0 {
		windowSec = 60
	}
	if in.MaxQuota <= 0 {
		return &ApplyResourceLimiterOutput{Allowed: true}, nil
	}

	windowStart := time.Now().UTC().Unix() / int64(windowSec)
	key := fmt.Sprintf("limiter:%s:%s:%d", group, resource, windowStart)

	count, err := l.redis.Increment(ctx, key)
	if err != nil {
		return nil, err
	}
	if count == 1 {
		if err := l.redis.Expire(ctx, key, time.Duration(windowSec)*time.Second); err != nil {
			return nil, err
		}
	}

	if count > int64(in.MaxQuota) {
		nextWindow := (windowStart + 1) * int64(windowSec)
		retryAfter := int(nextWindow - time.Now().UTC().Unix())
		if retryAfter < 1 {
			retryAfter = 1
		}
		l.log.Warn("resource limiter quota exceeded",
			zap.String("limiter_group", group),
			zap.String("resource", resource),
			zap.Int64("count", count),
		)
		return &ApplyResourceLimiterOutput{Allowed: false, RetryAfterSecs: retryAfter}, nil
	}

	return &ApplyResourceLimiterOutput{Allowed: true}, nil
}
