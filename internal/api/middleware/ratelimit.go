package middleware

import (
	"net/http"
	"sync"
	"time"
)

// RateLimiter is a fixed-window in-memory rate limiter keyed by client IP.
// State is per-process; a multi-instance deployment limits per instance.
type RateLimiter struct {
	windows  map[string]*window
	requests int
	interval time.Duration
	mu       sync.Mutex
}

type window struct {
	resetAt time.Time
	count   int
}

// NewRateLimiter creates a rate limiter allowing requests per interval
// for each client.
func NewRateLimiter(requests int, interval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		windows:  make(map[string]*window),
		requests: requests,
		interval: interval,
	}

	go rl.evictExpired()

	return rl
}

// Middleware rejects clients over their window budget with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now().UTC()

	win, ok := rl.windows[client]
	if !ok || now.After(win.resetAt) {
		rl.windows[client] = &window{count: 1, resetAt: now.Add(rl.interval)}
		return true
	}

	if win.count < rl.requests {
		win.count++
		return true
	}

	return false
}

// evictExpired drops stale windows once per interval so the map doesn't
// grow with every client ever seen.
func (rl *RateLimiter) evictExpired() {
	ticker := time.NewTicker(rl.interval)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now().UTC()
		for client, win := range rl.windows {
			if now.After(win.resetAt) {
				delete(rl.windows, client)
			}
		}
		rl.mu.Unlock()
	}
}

// clientIP prefers proxy headers over the raw remote address.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
