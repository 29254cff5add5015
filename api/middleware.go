package api

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/killallgit/podcast-api/api/types"
	"github.com/killallgit/podcast-api/pkg/config"
	"github.com/killallgit/podcast-api/pkg/logging"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

const (
	limiterIdleTimeout = 10 * time.Minute
	limiterSweepEvery  = 5 * time.Minute
)

// clientLimiter holds a rate limiter and its last accessed time
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

func (cl *clientLimiter) touch(now time.Time) {
	cl.lastSeen.Store(now.UnixNano())
}

func (cl *clientLimiter) idle(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, cl.lastSeen.Load()))
}

// CORS answers preflight requests and sets the allow headers from cfg.
func CORS(cfg config.SecurityConfig) gin.HandlerFunc {
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	wildcard := len(origins) == 1 && origins[0] == "*"
	methods := strings.Join(cfg.CORSMethods, ", ")
	headers := strings.Join(cfg.CORSHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case wildcard:
			c.Header("Access-Control-Allow-Origin", "*")
		case allowedOrigin(origins, origin):
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		if methods != "" {
			c.Header("Access-Control-Allow-Methods", methods)
		}
		if headers != "" {
			c.Header("Access-Control-Allow-Headers", headers)
		}
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func allowedOrigin(origins []string, origin string) bool {
	if origin == "" {
		return false
	}
	for _, o := range origins {
		if strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

// RequestSizeLimit caps request bodies at maxBytes. Requests that declare a
// larger Content-Length are rejected before the handler runs.
func RequestSizeLimit(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = 1 << 20
	}
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, types.ErrorResponse{
				Status:  types.StatusError,
				Message: fmt.Sprintf("request body exceeds %d bytes", maxBytes),
				Error:   "PAYLOAD_TOO_LARGE",
			})
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// RequestID tags every request with an id, reusing a well-formed incoming one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(logging.RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RateLimiter keeps one token bucket per client. Authenticated clients are
// keyed by user id, anonymous ones by IP.
type RateLimiter struct {
	limiters sync.Map
	rps      rate.Limit
	burst    int
	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter starts a limiter allowing rps requests per second with the
// given burst, and a sweeper that forgets idle clients.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	rl := &RateLimiter{
		rps:   rate.Limit(rps),
		burst: burst,
		stop:  make(chan struct{}),
	}
	go rl.sweep()
	return rl
}

// Middleware enforces the limit
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(clientKey(c), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "rate limit exceeded, please slow down your requests",
				Error:   "RATE_LIMITED",
			})
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(key string, now time.Time) bool {
	v, ok := rl.limiters.Load(key)
	if !ok {
		v, _ = rl.limiters.LoadOrStore(key, &clientLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)})
	}
	cl := v.(*clientLimiter)
	cl.touch(now)
	return cl.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(limiterSweepEvery)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			rl.forgetIdle(now)
		case <-rl.stop:
			return
		}
	}
}

func (rl *RateLimiter) forgetIdle(now time.Time) {
	rl.limiters.Range(func(key, value any) bool {
		if value.(*clientLimiter).idle(now) > limiterIdleTimeout {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// Stop ends the sweeper
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func clientKey(c *gin.Context) string {
	if id := types.RequesterID(c); id != 0 {
		return fmt.Sprintf("user:%d", id)
	}
	return "ip:" + c.ClientIP()
}

// NotFoundHandler answers unknown routes with the error envelope
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "route not found",
			Error:   "NOT_FOUND",
		})
	}
}
