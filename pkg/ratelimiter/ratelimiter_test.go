package ratelimiter_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/staffdesk/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newLimiter(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Limiter, *fakeClock) {
	t.Helper()
	lim, err := ratelimiter.New(cfg)
	require.NoError(t, err)
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	lim.SetClock(clock.Now)
	return lim, clock
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	for _, cfg := range []ratelimiter.Config{
		{RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1},
	} {
		_, err := ratelimiter.New(cfg)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	}
}

func TestLimiter_Allow(t *testing.T) {
	t.Parallel()

	lim, clock := newLimiter(t, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Second})

	assert.True(t, lim.Allow("a").Allowed())
	assert.True(t, lim.Allow("a").Allowed())
	denied := lim.Allow("a")
	assert.False(t, denied.Allowed())
	assert.Equal(t, time.Second, denied.RetryAfter(clock.Now()))

	assert.True(t, lim.Allow("b").Allowed(), "keys are independent")

	clock.Advance(time.Second)
	assert.True(t, lim.Allow("a").Allowed())
	assert.False(t, lim.Allow("a").Allowed())

	clock.Advance(time.Hour)
	res := lim.Allow("a")
	assert.Equal(t, 1, res.Remaining, "refill is capped at capacity")

	lim.Reset("a")
	assert.Equal(t, 1, lim.Allow("a").Remaining)
}

func TestLimiter_Prune(t *testing.T) {
	t.Parallel()

	lim, clock := newLimiter(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second, IdleTTL: time.Minute})
	lim.Allow("old")
	clock.Advance(2 * time.Minute)
	lim.Allow("new")

	lim.Prune()
	assert.Equal(t, 1, lim.Len())
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	lim, _ := newLimiter(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
	h := ratelimiter.Middleware(lim, func(r *http.Request) string { return r.Header.Get("X-Key") })(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }),
	)

	send := func(key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if key != "" {
			req.Header.Set("X-Key", key)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := send("k")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = send("k")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"too many requests"}`, rec.Body.String())

	for range 3 {
		assert.Equal(t, http.StatusNoContent, send("").Code)
	}
}
