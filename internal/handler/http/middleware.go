// Package http provides HTTP handlers and middleware for the tracker API.
// It includes handlers for subjects, watch lists, findings, contacts, search
// URL generation, stats, health checks, and metrics collection.
package http

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"osint-tracker/internal/handler/http/requestid"
	"osint-tracker/internal/handler/http/respond"
	"osint-tracker/internal/handler/http/responsewriter"

	"go.opentelemetry.io/otel/trace"
)

// Logging returns middleware that emits one structured log line per
// completed request, carrying the request ID and trace ID so log lines
// can be joined with traces.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := responsewriter.Wrap(w)

			next.ServeHTTP(wrapped, r)

			span := trace.SpanFromContext(r.Context())
			logger.Info("request completed",
				slog.String("request_id", requestid.FromContext(r.Context())),
				slog.String("trace_id", span.SpanContext().TraceID().String()),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("query", r.URL.RawQuery),
				slog.String("remote_addr", r.RemoteAddr),
				slog.Int("status", wrapped.StatusCode()),
				slog.Int("bytes", wrapped.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// Recover returns middleware that converts handler panics into 500
// responses instead of tearing down the server.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				logger.Error("panic recovered",
					slog.String("request_id", requestid.FromContext(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
				)
				respond.SafeError(w, http.StatusInternalServerError, fmt.Errorf("internal error"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// LimitRequestBody returns middleware that caps request body size.
func LimitRequestBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// visitor holds the request timestamps of one client IP inside the
// sliding window. Guarded by its own mutex so hot IPs do not contend
// with each other.
type visitor struct {
	mu   sync.Mutex
	seen []time.Time
}

// RateLimiter is a per-IP sliding-window limiter. A request is allowed
// when fewer than limit requests from the same IP fall inside the
// trailing window.
type RateLimiter struct {
	visitors sync.Map // client IP -> *visitor
	limit    int
	window   time.Duration

	sweepMu   sync.Mutex
	lastSweep time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per window
// per client IP.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		window:    window,
		lastSweep: time.Now(),
	}
}

// Limit wraps next, rejecting over-limit clients with 429.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rl.sweep()
		if !rl.allow(extractIP(r)) {
			respond.Error(w, http.StatusTooManyRequests, fmt.Errorf("rate limit exceeded"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	now := time.Now()
	cutoff := now.Add(-rl.window)

	val, _ := rl.visitors.LoadOrStore(ip, &visitor{})
	v := val.(*visitor)

	v.mu.Lock()
	defer v.mu.Unlock()

	// Compact in place: timestamps arrive in order, so everything
	// before the first in-window entry is expired.
	keep := 0
	for keep < len(v.seen) && !v.seen[keep].After(cutoff) {
		keep++
	}
	v.seen = append(v.seen[:0], v.seen[keep:]...)

	if len(v.seen) >= rl.limit {
		return false
	}
	v.seen = append(v.seen, now)
	return true
}

// sweep drops visitors whose every timestamp has aged out, at most
// once every ten minutes.
func (rl *RateLimiter) sweep() {
	rl.sweepMu.Lock()
	defer rl.sweepMu.Unlock()

	if time.Since(rl.lastSweep) < 10*time.Minute {
		return
	}
	rl.lastSweep = time.Now()
	cutoff := time.Now().Add(-2 * rl.window)

	rl.visitors.Range(func(key, val interface{}) bool {
		v := val.(*visitor)
		v.mu.Lock()
		stale := len(v.seen) == 0 || !v.seen[len(v.seen)-1].After(cutoff)
		v.mu.Unlock()
		if stale {
			rl.visitors.Delete(key)
		}
		return true
	})
}

// extractIP returns the client IP, preferring X-Forwarded-For, then
// X-Real-IP, then RemoteAddr.
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		if ip := net.ParseIP(xri); ip != nil {
			return ip.String()
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
