package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitBurstThenReject(t *testing.T) {
	h := RateLimit(RateLimitConfig{Burst: 2, RefillPerMin: 1})(okHandler())

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/import", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/import", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Errorf("missing Retry-After header")
	}
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("X-RateLimit-Remaining = %q, want 0", got)
	}
}

func TestRateLimitPerClient(t *testing.T) {
	h := RateLimit(RateLimitConfig{Burst: 1, RefillPerMin: 1})(okHandler())

	first := httptest.NewRequest(http.MethodPost, "/import", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("first client: status = %d, want 200", rec.Code)
	}

	// A different client has its own bucket.
	second := httptest.NewRequest(http.MethodPost, "/import", nil)
	second.RemoteAddr = "10.0.0.2:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, second)
	if rec.Code != http.StatusOK {
		t.Fatalf("second client: status = %d, want 200", rec.Code)
	}
}

func TestRateLimitTokensRefill(t *testing.T) {
	l := newLimiter(RateLimitConfig{Burst: 1, RefillPerMin: 60})

	now := time.Now()
	if ok, _, _ := l.allow("10.0.0.1", now); !ok {
		t.Fatalf("first request should pass")
	}
	if ok, _, _ := l.allow("10.0.0.1", now); ok {
		t.Fatalf("second immediate request should be rejected")
	}
	// One token per second at 60/min.
	if ok, _, _ := l.allow("10.0.0.1", now.Add(time.Second)); !ok {
		t.Fatalf("request after refill should pass")
	}
}

func TestRateLimitSweepDropsIdleBuckets(t *testing.T) {
	l := newLimiter(RateLimitConfig{Burst: 1, RefillPerMin: 1, SweepInterval: time.Minute, IdleTTL: time.Minute})

	now := time.Now()
	l.allow("10.0.0.1", now)
	l.sweepMaybe(now.Add(2 * time.Minute))

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.buckets) != 0 {
		t.Errorf("buckets = %d, want 0 after sweep", len(l.buckets))
	}
}
