//go:generate mockgen -destination=../mocks/page_fetcher_mock.go -package=mocks . PageFetcher

package crawler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/IliaW/partner-evaluator/config"
	"github.com/IliaW/partner-evaluator/internal/model"
)

var (
	ErrFetch       = errors.New("failed to fetch page")
	ErrPageTimeout = errors.New("page fetch timed out")

	// ErrNoContent is returned when a crawl collected no usable text.
	ErrNoContent      = errors.New("no content retrieved")
	ErrNothingFetched = fmt.Errorf("%w: no page could be fetched", ErrNoContent)
	ErrEmptyContent   = fmt.Errorf("%w: fetched pages contain no text", ErrNoContent)
)

// PageFetcher retrieves a single page and extracts its text and outbound links.
// Implementations must return when ctx is done.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*model.Page, error)
}

func NewPageFetcher(mechanism model.FetchMechanism, cfg *config.CrawlerConfig, log *slog.Logger) (PageFetcher, error) {
	switch mechanism {
	case model.Curl:
		return NewCollyFetcher(cfg.UserAgent, cfg.TimeoutPerPage), nil
	case model.HeadlessBrowser:
		return NewBrowserFetcher(cfg.UserAgent, log), nil
	case model.CommonCrawl:
		return NewArchiveFetcher(cfg.CommonCrawl, log), nil
	default:
		return nil, fmt.Errorf("unsupported fetch mechanism: %d", mechanism)
	}
}
