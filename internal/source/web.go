package source

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/okafor/stylerules/internal/cache"
	"github.com/okafor/stylerules/internal/model"
	"github.com/okafor/stylerules/internal/util"
	"github.com/okafor/stylerules/internal/worker"
)

// chrome elements removed before text extraction
const strippedSelector = "script, style, noscript, nav, header, footer, aside"

// content-bearing elements whose text is concatenated
const contentSelector = "p, li, h2, h3"

// WebReader extracts visible content text from hypertext sources
type WebReader struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
	pages      cache.Cache
	cacheTTL   time.Duration
}

// NewWebReader creates a web reader from configuration. The page cache is
// enabled or nil per cfg.Cache.
func NewWebReader(cfg *model.Config) *WebReader {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy),
	}
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	var pages cache.Cache
	if cfg.Cache.Enabled {
		pages = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	return &WebReader{
		httpClient: &http.Client{
			Timeout:   cfg.HTTP.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		robots:    util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout),
		limiter:   worker.NewLimiter(cfg.HTTP.RequestsPerSecond, cfg.HTTP.Burst),
		pages:     pages,
		cacheTTL:  cfg.Cache.DiskTTL,
	}
}

// Kind implements Reader
func (r *WebReader) Kind() model.SourceKind {
	return model.SourceWeb
}

// Read fetches rawURL and returns its visible content text: the document is
// parsed, non-content elements are stripped, and the text of paragraph,
// list-item, and heading elements is joined by single spaces.
func (r *WebReader) Read(ctx context.Context, rawURL string) (string, error) {
	if r.pages != nil {
		if cached, ok := r.pages.Get(cache.Key(rawURL)); ok {
			return string(cached), nil
		}
	}

	if err := r.limiter.Wait(ctx, rawURL); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	if !r.robots.Allowed(ctx, rawURL) {
		return "", fmt.Errorf("disallowed by robots.txt: %s", rawURL)
	}

	htmlContent, err := r.fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}

	text, err := extractContentText(htmlContent)
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	if r.pages != nil {
		_ = r.pages.Set(cache.Key(rawURL), []byte(text), r.cacheTTL)
	}

	return text, nil
}

func (r *WebReader) fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, r.maxBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return string(body), nil
}

// extractContentText strips non-content elements and joins the text of
// content-bearing blocks with single spaces.
func extractContentText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	doc.Find(strippedSelector).Remove()

	var blocks []string
	doc.Find(contentSelector).Each(func(_ int, s *goquery.Selection) {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if text != "" {
			blocks = append(blocks, text)
		}
	})

	return strings.Join(blocks, " "), nil
}
