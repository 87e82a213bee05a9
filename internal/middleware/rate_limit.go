package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
)

// idleTTL is how long a client IP may stay silent before its bucket is
// dropped. A dropped bucket comes back full, which an idle client would
// have refilled to anyway.
const idleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	every     rate.Limit
	burst     int
	log       *zap.Logger
	now       func() time.Time
	lastSweep time.Time
}

func NewRateLimiter(perMinute, burst int, log *zap.Logger) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 20
	}
	if burst <= 0 {
		burst = 5
	}

	return &RateLimiter{
		visitors: make(map[string]*visitor),
		every:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		log:      log,
		now:      time.Now,
	}
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.every, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep drops idle visitors, at most once per idleTTL. Callers hold rl.mu.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < idleTTL {
		return
	}
	rl.lastSweep = now

	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) >= idleTTL {
			delete(rl.visitors, ip)
		}
	}
}

func (rl *RateLimiter) tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.limiter(ip).Allow() {
			rl.log.Warn("rate_limited",
				zap.String("ip", ip),
				zap.String("path", c.FullPath()),
				zap.String("request_id", GetRequestID(c)),
			)
			httperr.TooManyRequests(c, "rate_limited", "Too many requests. Try again later.")
			return
		}
		c.Next()
	}
}
