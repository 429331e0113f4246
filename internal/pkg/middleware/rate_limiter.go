package middleware

import (
	"context"
	"sync"
	"time"

	"storefront-service/config"
	"storefront-service/internal/pkg/clock"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

type keyLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per key in memory.
type RateLimiter struct {
	conf    config.RateLimitConfig
	clock   clock.Clock
	mu      sync.Mutex
	buckets map[string]*keyLimiter
}

func NewRateLimiter(conf config.RateLimitConfig, c clock.Clock) *RateLimiter {
	return &RateLimiter{
		conf:    conf,
		clock:   c,
		buckets: make(map[string]*keyLimiter),
	}
}

// StartEviction drops idle buckets until ctx is done.
func (rl *RateLimiter) StartEviction(ctx context.Context) {
	interval := rl.conf.IdleTTL / 2
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Evict()
		}
	}
}

// Evict removes buckets not used for longer than IdleTTL.
func (rl *RateLimiter) Evict() int {
	now := rl.clock.Now()
	rl.mu.Lock()
	defer rl.mu.Unlock()
	var n int
	for k, v := range rl.buckets {
		if now.Sub(v.lastSeen) > rl.conf.IdleTTL {
			delete(rl.buckets, k)
			n++
		}
	}
	return n
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := rl.clock.Now()
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if b, ok := rl.buckets[key]; ok {
		b.lastSeen = now
		return b.limiter
	}

	lim := rate.NewLimiter(rate.Limit(rl.conf.RPS), rl.conf.Burst)
	rl.buckets[key] = &keyLimiter{limiter: lim, lastSeen: now}
	return lim
}

type KeySelector func(ctx *fiber.Ctx) string

func ByIP(ctx *fiber.Ctx) string { return ctx.IP() }

func (rl *RateLimiter) Handler(selectKey KeySelector) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		lim := rl.getLimiter(selectKey(ctx))
		if !lim.AllowN(rl.clock.Now(), 1) {
			ctx.Set(fiber.HeaderRetryAfter, "1")
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "too many requests, please try again later",
			})
		}
		return ctx.Next()
	}
}
