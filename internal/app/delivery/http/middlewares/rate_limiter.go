package middlewares

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"delivery-hours-service/internal/pkg/constvars"
	"delivery-hours-service/internal/pkg/exceptions"
	"delivery-hours-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter throttles clients per IP and temporarily blocks an IP that
// keeps hammering past its limit. It is meant for the delivery-hours
// route, where every request may fan out to two upstream services.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	log       *zap.Logger
}

func NewRateLimiter(requests int, per, blockTime time.Duration, log *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		log:       log,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		r.mu.Lock()
		if blockedUntil, found := r.blocked[ip]; found {
			if time.Now().Before(blockedUntil) {
				r.mu.Unlock()
				w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(time.Until(blockedUntil).Seconds())+1))
				utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(
					fmt.Errorf("ip %s is temporarily blocked", ip),
				))
				return
			}
			delete(r.blocked, ip)
		}

		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.per), r.requests)
			r.limiters[ip] = limiter
		}
		r.mu.Unlock()

		if !limiter.Allow() {
			r.mu.Lock()
			r.blocked[ip] = time.Now().Add(r.blockTime)
			r.mu.Unlock()

			r.log.Warn("ip temporarily blocked for exceeding the rate limit",
				zap.String(constvars.LoggingRemoteAddrKey, ip),
				zap.Duration("block_time", r.blockTime),
			)
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(r.blockTime.Seconds())))
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(
				fmt.Errorf("ip %s exceeded the request rate", ip),
			))
			return
		}

		next.ServeHTTP(w, req)
	})
}
