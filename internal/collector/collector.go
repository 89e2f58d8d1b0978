// Package collector fetches crawled pages and turns them into the
// PageInput records consumed by the checker core. It is the crawl
// collaborator: everything network-shaped lives here so the evaluation
// path stays pure.
package collector

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/headgrade/headgrade/internal/checker"
)

const (
	defaultTimeout = 10 * time.Second
	// maxBodyBytes caps page bodies kept for content-aware checks.
	maxBodyBytes = 512 * 1024
)

// Options configures a crawl run.
type Options struct {
	Concurrency  int
	RateLimit    int // requests per second, shared across workers
	Timeout      time.Duration
	MaxDepth     int
	MaxPages     int
	SameHostOnly bool
	UserAgent    string
}

// Collector walks same-host links breadth-first from a set of seed URLs
// and captures response headers and markup for each fetched page.
type Collector struct {
	opts    Options
	client  *http.Client
	limiter *rate.Limiter
	log     *zap.SugaredLogger
}

// New builds a Collector with sane fallbacks for zero option values.
func New(opts Options, log *zap.SugaredLogger) *Collector {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 1
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = 1
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Collector{
		opts: opts,
		client: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: false,
					MinVersion:         tls.VersionTLS12,
				},
			},
		},
		limiter: rate.NewLimiter(rate.Limit(opts.RateLimit), opts.RateLimit),
		log:     log,
	}
}

type fetchedPage struct {
	input checker.PageInput
	links []string
}

// Collect fetches the seed URLs and, up to MaxDepth hops and MaxPages
// pages, every same-host link discovered in their markup. Fetch
// failures are logged and skipped; a single bad page never fails the
// run. The returned slice follows discovery order.
func (c *Collector) Collect(ctx context.Context, seeds []string) ([]checker.PageInput, error) {
	roots := make([]*url.URL, 0, len(seeds))
	for _, seed := range seeds {
		u, err := normalizeSeed(seed)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", seed, err)
		}
		roots = append(roots, u)
	}
	if len(roots) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, c.opts.MaxPages)
	frontier := make([]*url.URL, 0, len(roots))
	for _, root := range roots {
		key := canonicalURL(root)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		frontier = append(frontier, root)
	}

	pages := make([]checker.PageInput, 0, c.opts.MaxPages)

	for depth := 0; len(frontier) > 0 && len(pages) < c.opts.MaxPages; depth++ {
		if len(frontier) > c.opts.MaxPages-len(pages) {
			frontier = frontier[:c.opts.MaxPages-len(pages)]
		}

		fetched := c.fetchLevel(ctx, frontier)
		if err := ctx.Err(); err != nil {
			return pages, err
		}

		next := make([]*url.URL, 0)
		for _, page := range fetched {
			if page.input.URL == "" {
				continue
			}
			pages = append(pages, page.input)

			if depth+1 > c.opts.MaxDepth {
				continue
			}
			for _, raw := range page.links {
				u, err := url.Parse(raw)
				if err != nil {
					continue
				}
				if c.opts.SameHostOnly && !hostsMatch(roots, u) {
					continue
				}
				if looksLikeAsset(u.Path) {
					continue
				}
				key := canonicalURL(u)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				next = append(next, u)
			}
		}
		frontier = next
	}

	return pages, nil
}

// fetchLevel retrieves one BFS level with a bounded worker pool and the
// shared rate limiter. Slot order matches the input so discovery order
// stays deterministic.
func (c *Collector) fetchLevel(ctx context.Context, targets []*url.URL) []fetchedPage {
	results := make([]fetchedPage, len(targets))
	sem := make(chan struct{}, c.opts.Concurrency)
	var wg sync.WaitGroup

	for i, target := range targets {
		wg.Add(1)
		go func(slot int, u *url.URL) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			if err := c.limiter.Wait(ctx); err != nil {
				return
			}

			page, err := c.fetchPage(ctx, u)
			if err != nil {
				c.log.Warnw("fetch failed", "url", u.String(), "error", err)
				return
			}
			results[slot] = page
		}(i, target)
	}
	wg.Wait()

	return results
}

func (c *Collector) fetchPage(ctx context.Context, u *url.URL) (fetchedPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fetchedPage{}, err
	}
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fetchedPage{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fetchedPage{}, err
	}

	page := fetchedPage{
		input: checker.PageInput{
			URL:     u.String(),
			Headers: flattenHeaders(resp.Header),
		},
	}

	if isHTML(resp.Header.Get("Content-Type")) {
		page.input.Content = string(body)
		page.links = extractLinks(u, string(body))
	}

	c.log.Debugw("fetched page",
		"url", u.String(),
		"status", resp.StatusCode,
		"links", len(page.links),
	)
	return page, nil
}

// flattenHeaders keeps the first value of each response header; the
// checker core only ever needs one value per name.
func flattenHeaders(h http.Header) checker.HeaderMap {
	m := make(checker.HeaderMap, len(h))
	for name := range h {
		m[name] = h.Get(name)
	}
	return m
}

func normalizeSeed(seed string) (*url.URL, error) {
	s := strings.TrimSpace(seed)
	if s == "" {
		return nil, fmt.Errorf("empty target")
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("missing host")
	}
	return u, nil
}

func hostsMatch(roots []*url.URL, u *url.URL) bool {
	for _, root := range roots {
		if strings.EqualFold(root.Hostname(), u.Hostname()) {
			return true
		}
	}
	return false
}

func isHTML(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml")
}
