package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"skylift/config"
	"skylift/internal/model"
)

func TestRateLimiter(t *testing.T) {
	t.Run("Allows Within Burst", func(t *testing.T) {
		rl := newRateLimiter(config.RateLimitConfig{PerMinute: 60, Burst: 5, CacheSize: 10, CacheTTL: time.Minute})
		for i := 0; i < 5; i++ {
			if !rl.allow("user-a") {
				t.Fatalf("request %d unexpectedly limited", i)
			}
		}
	})

	t.Run("Blocks Over Burst", func(t *testing.T) {
		rl := newRateLimiter(config.RateLimitConfig{PerMinute: 60, Burst: 2, CacheSize: 10, CacheTTL: time.Minute})
		rl.allow("user-b")
		rl.allow("user-b")
		if rl.allow("user-b") {
			t.Error("expected third immediate request to be limited")
		}
	})

	t.Run("Keys Are Independent", func(t *testing.T) {
		rl := newRateLimiter(config.RateLimitConfig{PerMinute: 60, Burst: 1, CacheSize: 10, CacheTTL: time.Minute})
		if !rl.allow("user-c") {
			t.Fatal("first request for user-c limited")
		}
		if !rl.allow("user-d") {
			t.Error("user-d should not share user-c's bucket")
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		rl := newRateLimiter(config.RateLimitConfig{})
		if rl.burst < 1 {
			t.Errorf("expected burst >= 1, got %d", rl.burst)
		}
	})
}

// Authenticated requests must be limited per principal, not per client
// IP: two users behind the same address get independent budgets.
func TestRateLimitKeying(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := Middleware{limiter: newRateLimiter(config.RateLimitConfig{
		PerMinute: 60, Burst: 1, CacheSize: 16, CacheTTL: time.Minute,
	})}

	asUser := func(id string) gin.HandlerFunc {
		return func(c *gin.Context) { c.Set(scopeContextKey, model.Scope{UserID: id}) }
	}
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	r := gin.New()
	r.GET("/a", asUser("user-a"), m.RateLimit(), ok)
	r.GET("/b", asUser("user-b"), m.RateLimit(), ok)
	r.GET("/anon", m.RateLimit(), ok)

	do := func(path string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "203.0.113.7:50000" // every request shares one IP
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("Principals Do Not Share Budgets", func(t *testing.T) {
		if code := do("/a"); code != http.StatusOK {
			t.Fatalf("first request for user-a got %d", code)
		}
		if code := do("/a"); code != http.StatusTooManyRequests {
			t.Errorf("user-a over burst got %d, want 429", code)
		}
		if code := do("/b"); code != http.StatusOK {
			t.Errorf("user-b throttled by user-a's traffic: got %d", code)
		}
	})

	t.Run("Anonymous Keyed By IP", func(t *testing.T) {
		if code := do("/anon"); code != http.StatusOK {
			t.Fatalf("first anonymous request got %d", code)
		}
		if code := do("/anon"); code != http.StatusTooManyRequests {
			t.Errorf("anonymous over burst got %d, want 429", code)
		}
	})
}
