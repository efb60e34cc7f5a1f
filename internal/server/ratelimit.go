package server

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Idle clients older than this are dropped from the limiter map.
const limiterIdleAfter = 10 * time.Minute

type limiterEntry struct {
	lim  *rate.Limiter
	seen time.Time
}

// ipLimiter keeps one token bucket per client IP. The map is pruned on
// insert once it grows past a soft cap.
type ipLimiter struct {
	mu    sync.Mutex
	perIP map[string]*limiterEntry
	rps   rate.Limit
	burst int
}

func newIPLimiter(rps rate.Limit, burst int) *ipLimiter {
	return &ipLimiter{perIP: make(map[string]*limiterEntry), rps: rps, burst: burst}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.perIP[ip]
	if !ok {
		if len(l.perIP) > 1024 {
			l.prune()
		}
		e = &limiterEntry{lim: rate.NewLimiter(l.rps, l.burst)}
		l.perIP[ip] = e
	}
	e.seen = time.Now()
	return e.lim.Allow()
}

// prune drops entries idle longer than limiterIdleAfter. Caller holds mu.
func (l *ipLimiter) prune() {
	cutoff := time.Now().Add(-limiterIdleAfter)
	for ip, e := range l.perIP {
		if e.seen.Before(cutoff) {
			delete(l.perIP, ip)
		}
	}
}

// limited wraps a public handler with the per-IP rate limiter.
func (s *Server) limited(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.allow(clientIP(r)) {
			writeError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next(w, r)
	}
}
