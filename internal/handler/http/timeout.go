package http

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Timeout returns middleware that bounds request handling time. When
// the deadline passes first, the client gets 504 Gateway Timeout and
// any late handler writes are discarded. The request context carries
// the deadline so downstream code can stop early.
func Timeout(duration time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), duration)
			defer cancel()

			gw := &guardedWriter{inner: w}
			done := make(chan struct{})

			go func() {
				defer close(done)
				next.ServeHTTP(gw, r.WithContext(ctx))
			}()

			select {
			case <-done:
			case <-ctx.Done():
				gw.abandon()
			}
		})
	}
}

// guardedWriter serializes access to the response between the handler
// goroutine and the timeout branch. Whichever side writes first wins;
// the other side's writes are dropped.
type guardedWriter struct {
	mu        sync.Mutex
	inner     http.ResponseWriter
	started   bool
	abandoned bool
}

func (g *guardedWriter) Header() http.Header {
	return g.inner.Header()
}

func (g *guardedWriter) WriteHeader(statusCode int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.abandoned || g.started {
		return
	}
	g.started = true
	g.inner.WriteHeader(statusCode)
}

func (g *guardedWriter) Write(data []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if !g.started {
		g.started = true
		g.inner.WriteHeader(http.StatusOK)
	}
	return g.inner.Write(data)
}

// abandon sends the timeout response unless the handler already
// started writing, then blocks all further handler writes.
func (g *guardedWriter) abandon() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.started {
		g.inner.Header().Set("Content-Type", "application/json")
		g.inner.WriteHeader(http.StatusGatewayTimeout)
		_, _ = g.inner.Write([]byte(`{"error":"request timeout"}`))
	}
	g.abandoned = true
}
