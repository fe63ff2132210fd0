package worker

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter rate-limits fetches per target domain so batch runs stay polite
type Limiter struct {
	mu           sync.RWMutex
	perDomain    map[string]*rate.Limiter
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a limiter with the given per-domain rate
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}
	return &Limiter{
		perDomain:    make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
	}
}

// Wait blocks until the domain of rawURL has rate-limit clearance
func (l *Limiter) Wait(ctx context.Context, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	return l.limiter(parsed.Host).Wait(ctx)
}

// Allow reports whether a request to rawURL may proceed without waiting
func (l *Limiter) Allow(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return l.limiter(parsed.Host).Allow()
}

func (l *Limiter) limiter(domain string) *rate.Limiter {
	l.mu.RLock()
	lim, ok := l.perDomain[domain]
	l.mu.RUnlock()
	if ok {
		return lim
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if lim, ok := l.perDomain[domain]; ok {
		return lim
	}
	lim = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.perDomain[domain] = lim
	return lim
}
