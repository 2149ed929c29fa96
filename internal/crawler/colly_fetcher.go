package crawler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/IliaW/partner-evaluator/internal/model"
	"github.com/gocolly/colly"
)

// CollyFetcher downloads pages with a plain HTTP client.
type CollyFetcher struct {
	userAgent string
	timeout   time.Duration
}

func NewCollyFetcher(userAgent string, timeout time.Duration) *CollyFetcher {
	return &CollyFetcher{userAgent: userAgent, timeout: timeout}
}

func (f *CollyFetcher) Fetch(ctx context.Context, url string) (*model.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); timeout <= 0 || left < timeout {
			timeout = left
		}
	}

	c := colly.NewCollector()
	if timeout > 0 {
		c.SetRequestTimeout(timeout)
	}
	if f.userAgent != "" {
		c.UserAgent = f.userAgent
	}

	var (
		body        []byte
		contentType string
		finalURL    = url
	)
	c.OnResponse(func(resp *colly.Response) {
		body = resp.Body
		contentType = resp.Headers.Get("Content-Type")
		finalURL = resp.Request.URL.String()
	})

	if err := c.Visit(url); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrFetch, url, err.Error())
	}
	if contentType != "" && !strings.Contains(strings.ToLower(contentType), "html") {
		return nil, fmt.Errorf("%w: %s: unsupported content type %q", ErrFetch, url, contentType)
	}

	page, err := ParseHTML(finalURL, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrFetch, url, err.Error())
	}
	return page, nil
}
