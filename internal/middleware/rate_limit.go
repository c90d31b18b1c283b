package middleware

import (
	"slices"
	"sync"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// maxTrackedKeys membatasi ukuran map sebelum limiter yang sudah penuh kembali dibuang.
const maxTrackedKeys = 10000

type IPRateLimiter struct {
	ips     map[string]*rate.Limiter
	mu      *sync.Mutex
	r       rate.Limit // jumlah request per detik
	b       int        // burst (kapasitas kantong)
	maxKeys int
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*rate.Limiter),
		mu:  &sync.Mutex{},
		r:       r,
		b:       b,
		maxKeys: maxTrackedKeys,
	}
}

func (i *IPRateLimiter) GetLimiter(key string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.ips[key]
	if !exists {
		if len(i.ips) >= i.maxKeys {
			i.prune()
		}
		limiter = rate.NewLimiter(i.r, i.b)
		i.ips[key] = limiter
	}

	return limiter
}

// prune drops limiters whose bucket has refilled; they behave exactly like a new one.
func (i *IPRateLimiter) prune() {
	for key, l := range i.ips {
		if l.Tokens() >= float64(i.b) {
			delete(i.ips, key)
		}
	}
}

// RateLimitByIP: r = request per detik, b = burst.
// Hanya method di onlyMethods yang dihitung; kosong berarti semua.
func RateLimitByIP(r rate.Limit, b int, onlyMethods ...string) gin.HandlerFunc {
	limiter := NewIPRateLimiter(r, b)
	return func(c *gin.Context) {
		if len(onlyMethods) > 0 && !slices.Contains(onlyMethods, c.Request.Method) {
			c.Next()
			return
		}
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			response.AbortError(c, apperror.ErrTooManyRequests.HTTPStatus, apperror.ErrTooManyRequests.Message)
			return
		}
		c.Next()
	}
}
