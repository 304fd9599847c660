// Package throttle fornece um middleware net/http de rate limit por cliente.
//
// Token bucket (golang.org/x/time/rate) por IP de origem. Serve para proteger
// o serviço de um cliente insistente; não é um rate limit distribuído.
package throttle

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Options struct {
	// RPS <= 0 desliga o middleware (passa direto).
	RPS   float64
	Burst int

	RejectStatus int
	RetryAfter   time.Duration
}

// Middleware devolve o wrapper. Cada cliente (IP) tem seu próprio bucket.
func Middleware(opts Options) func(next http.Handler) http.Handler {
	if opts.RPS <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if opts.Burst <= 0 {
		opts.Burst = 1
	}
	if opts.RejectStatus == 0 {
		opts.RejectStatus = http.StatusTooManyRequests
	}
	if opts.RetryAfter == 0 {
		opts.RetryAfter = 1 * time.Second
	}

	buckets := &clientBuckets{
		entries: make(map[string]*rate.Limiter),
		rps:     rate.Limit(opts.RPS),
		burst:   opts.Burst,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !buckets.get(clientKey(r)).Allow() {
				w.Header().Set("Retry-After", strconv.Itoa(int(opts.RetryAfter.Seconds())))
				http.Error(w, http.StatusText(opts.RejectStatus), opts.RejectStatus)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type clientBuckets struct {
	mu      sync.Mutex
	entries map[string]*rate.Limiter
	rps     rate.Limit
	burst   int
}

func (b *clientBuckets) get(key string) *rate.Limiter {
	b.mu.Lock()
	defer b.mu.Unlock()

	if lim, ok := b.entries[key]; ok {
		return lim
	}
	lim := rate.NewLimiter(b.rps, b.burst)
	b.entries[key] = lim
	return lim
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
