package util

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// RobotsChecker gates fetches on robots.txt. Unreachable or unparseable
// robots files fail open: the fetch proceeds.
type RobotsChecker struct {
	mu         sync.RWMutex
	perHost    map[string]*robotstxt.RobotsData
	httpClient *http.Client
	userAgent  string
}

// NewRobotsChecker creates a checker that caches robots data per host
func NewRobotsChecker(userAgent string, timeout time.Duration) *RobotsChecker {
	return &RobotsChecker{
		perHost:    make(map[string]*robotstxt.RobotsData),
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// Allowed reports whether rawURL may be fetched for the configured agent
func (r *RobotsChecker) Allowed(ctx context.Context, rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	data, err := r.robotsData(ctx, parsed)
	if err != nil {
		return true
	}

	return data.TestAgent(parsed.Path, r.userAgent)
}

func (r *RobotsChecker) robotsData(ctx context.Context, parsed *url.URL) (*robotstxt.RobotsData, error) {
	r.mu.RLock()
	data, ok := r.perHost[parsed.Host]
	r.mu.RUnlock()
	if ok {
		return data, nil
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", parsed.Scheme, parsed.Host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err = robotstxt.FromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}

	r.mu.Lock()
	r.perHost[parsed.Host] = data
	r.mu.Unlock()

	return data, nil
}

// Clear drops all cached robots data
func (r *RobotsChecker) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.perHost = make(map[string]*robotstxt.RobotsData)
}
