package crawler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	netUrl "net/url"
	"regexp"
	"strings"
	"time"

	"github.com/IliaW/partner-evaluator/internal/model"
)

type CrawlResult struct {
	Pages   []model.PageContent // in fetch order
	Visited []string            // in visit order
	Fetched int
	Failed  int
}

// Scheduler runs a priority-ordered crawl confined to the seed's host.
type Scheduler struct {
	fetcher PageFetcher
	log     *slog.Logger
}

func NewScheduler(fetcher PageFetcher, log *slog.Logger) *Scheduler {
	return &Scheduler{fetcher: fetcher, log: log}
}

// Crawl visits at most maxPages distinct URLs of the seed's host, most relevant first.
// Page failures and page timeouts are logged and skipped. The returned error wraps ErrNoContent
// when no page produced text, or is ctx.Err() when the caller's context is done.
func (s *Scheduler) Crawl(ctx context.Context, seedURL string, timeoutPerPage time.Duration,
	maxPages int) (*CrawlResult, error) {
	seed := NormalizeSeed(seedURL)
	u, err := netUrl.Parse(seed)
	if err != nil {
		return nil, fmt.Errorf("invalid seed url: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid seed url: %q has no host", seedURL)
	}
	baseDomain := u.Host

	res := &CrawlResult{}
	visited := make(map[string]struct{}, maxPages)
	queue := &pageQueue{}
	queue.push(ScoredPage{URL: seed, Score: HighScore, Depth: 0})

	for queue.len() > 0 && len(visited) < maxPages {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		current := queue.pop()
		if _, ok := visited[current.URL]; ok {
			continue
		}
		visited[current.URL] = struct{}{}
		res.Visited = append(res.Visited, current.URL)
		s.log.Info("scraping page.", slog.String("url", current.URL),
			slog.String("page", fmt.Sprintf("%d/%d", len(visited), maxPages)),
			slog.Float64("score", current.Score), slog.Int("depth", current.Depth))

		page, err := s.fetch(ctx, current.URL, timeoutPerPage)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return res, ctxErr
			}
			res.Failed++
			if errors.Is(err, ErrPageTimeout) {
				s.log.Error("timeout scraping page.", slog.String("url", current.URL),
					slog.Duration("timeout", timeoutPerPage))
			} else {
				s.log.Error("failed to scrape page.", slog.String("url", current.URL),
					slog.String("err", err.Error()))
			}
			continue
		}
		res.Fetched++

		if strings.TrimSpace(page.Text) != "" {
			res.Pages = append(res.Pages, model.PageContent{URL: current.URL, Text: page.Text})
		}
		s.enqueueLinks(queue, visited, current, page.Links, baseDomain)
	}

	if len(res.Pages) == 0 {
		if res.Fetched == 0 {
			return res, ErrNothingFetched
		}
		return res, ErrEmptyContent
	}
	return res, nil
}

func (s *Scheduler) enqueueLinks(queue *pageQueue, visited map[string]struct{}, current ScoredPage,
	links []string, baseDomain string) {
	if len(links) == 0 {
		return
	}
	base, err := netUrl.Parse(current.URL)
	if err != nil {
		s.log.Warn("failed to parse page url. Links skipped.", slog.String("url", current.URL),
			slog.String("err", err.Error()))
		return
	}
	queued := 0
	for _, link := range links {
		u, ok := ResolveLink(base, link)
		if !ok || u.Host != baseDomain {
			continue
		}
		full := u.String()
		if _, ok := visited[full]; ok {
			continue
		}
		queue.push(ScoredPage{URL: full, Score: ScoreURL(full), Depth: current.Depth + 1})
		queued++
	}
	s.log.Debug("links queued.", slog.String("url", current.URL), slog.Int("found", len(links)),
		slog.Int("queued", queued))
}

// fetch calls the fetcher with a per-page deadline. A fetcher that ignores its context is
// abandoned once the deadline passes.
func (s *Scheduler) fetch(ctx context.Context, url string, timeout time.Duration) (*model.Page, error) {
	if timeout <= 0 {
		page, err := s.fetcher.Fetch(ctx, url)
		if err == nil && page == nil {
			return nil, fmt.Errorf("%w: %s: empty response", ErrFetch, url)
		}
		return page, err
	}
	pageCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		page *model.Page
		err  error
	}
	done := make(chan result, 1)
	go func() {
		page, err := s.fetcher.Fetch(pageCtx, url)
		done <- result{page: page, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			if ctx.Err() == nil && errors.Is(pageCtx.Err(), context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: %s", ErrPageTimeout, url)
			}
			return nil, r.err
		}
		if r.page == nil {
			return nil, fmt.Errorf("%w: %s: empty response", ErrFetch, url)
		}
		return r.page, nil
	case <-pageCtx.Done():
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", ErrPageTimeout, url)
	}
}

var schemeRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)

// HasScheme reports whether raw starts with a URL scheme followed by "://".
func HasScheme(raw string) bool {
	return schemeRe.MatchString(raw)
}

// NormalizeSeed prefixes scheme-less input with https://.
func NormalizeSeed(seed string) string {
	seed = strings.TrimSpace(seed)
	if !HasScheme(seed) {
		return "https://" + seed
	}
	return seed
}

// ResolveLink resolves href against base and drops the fragment.
// Only http and https links are kept.
func ResolveLink(base *netUrl.URL, href string) (*netUrl.URL, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return nil, false
	}
	ref, err := netUrl.Parse(href)
	if err != nil {
		return nil, false
	}
	abs := base.ResolveReference(ref)
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return nil, false
	}
	abs.Fragment = ""
	abs.RawFragment = ""
	return abs, true
}
