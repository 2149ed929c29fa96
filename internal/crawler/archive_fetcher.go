package crawler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sync"
	"time"

	"github.com/IliaW/partner-evaluator/config"
	"github.com/IliaW/partner-evaluator/internal/model"
	jsoniter "github.com/json-iterator/go"
	"github.com/karust/gogetcrawl/common"
	"github.com/karust/gogetcrawl/commoncrawl"
	"github.com/patrickmn/go-cache"
)

const indexListUrl = "https://index.commoncrawl.org/collinfo.json"

var htmlRe = regexp.MustCompile(`(?si)<!doctype html>.*?</html>`)

type Index struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Timegate string `json:"timegate"`
	CdxAPI   string `json:"cdx-api"`
}

// ArchiveFetcher serves pages from the most recent Common Crawl captures instead of the live site.
type ArchiveFetcher struct {
	crawler    *commoncrawl.CommonCrawl
	cfg        *config.CommonCrawlConfig
	log        *slog.Logger
	localCache *cache.Cache
	mu         sync.Mutex
}

func NewArchiveFetcher(cfg *config.CommonCrawlConfig, log *slog.Logger) *ArchiveFetcher {
	c, err := commoncrawl.New(cfg.RequestTimeout, cfg.Retries)
	if err != nil {
		log.Error("failed to create common crawl client", slog.String("err", err.Error()))
	}
	return &ArchiveFetcher{
		crawler:    c,
		cfg:        cfg,
		log:        log,
		localCache: cache.New(72*time.Hour, 72*time.Hour), // indexes update every month
	}
}

func (a *ArchiveFetcher) Fetch(ctx context.Context, url string) (*model.Page, error) {
	type result struct {
		page *model.Page
		err  error
	}
	// gogetcrawl is not context aware.
	done := make(chan result, 1)
	go func() {
		p, err := a.fetch(url)
		done <- result{page: p, err: err}
	}()
	select {
	case r := <-done:
		return r.page, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (a *ArchiveFetcher) fetch(url string) (*model.Page, error) {
	cc, err := a.client()
	if err != nil {
		return nil, err
	}
	indexList, err := a.getIndexes(cc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrFetch, url, err.Error())
	}
	requestCfg := common.RequestConfig{
		URL:     url,
		Filters: []string{"statuscode:200", "mimetype:text/html"},
	}

	for i := 0; i < a.cfg.LastCrawlIndexes && i < len(indexList); i++ {
		p, _ := cc.GetPagesIndex(requestCfg, indexList[i].Id)
		if len(p) == 0 {
			a.log.Debug("no captures found", slog.String("url", url), slog.String("index", indexList[i].Id))
			continue
		}
		resp, err := cc.GetFile(p[len(p)-1]) // last one is the most recent
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrFetch, url, err.Error())
		}
		html := htmlRe.Find(resp)
		if len(html) == 0 {
			continue
		}
		page, err := ParseHTML(url, html)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrFetch, url, err.Error())
		}
		return page, nil
	}
	a.log.Info("no captures found", slog.String("url", url))
	return nil, fmt.Errorf("%w: %s: no captures found", ErrFetch, url)
}

// client lazily reconnects, due to request limitations the client may not be created at startup.
func (a *ArchiveFetcher) client() (*commoncrawl.CommonCrawl, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.crawler != nil {
		return a.crawler, nil
	}
	a.log.Info("connection retry to common crawl.")
	c, err := commoncrawl.New(a.cfg.RequestTimeout, a.cfg.Retries)
	if err != nil {
		a.log.Error("failed to create common crawl client", slog.String("err", err.Error()))
		return nil, errors.Join(ErrFetch, errors.New("connection to common crawl failed"))
	}
	a.crawler = c
	return c, nil
}

func (a *ArchiveFetcher) getIndexes(cc *commoncrawl.CommonCrawl) ([]Index, error) {
	if i, ok := a.localCache.Get("indexes"); ok {
		return i.([]Index), nil
	}

	response, err := common.Get(indexListUrl, cc.MaxTimeout, cc.MaxRetries)
	if err != nil {
		return nil, err
	}

	var indexes []Index
	err = jsoniter.Unmarshal(response, &indexes)
	if err != nil {
		return indexes, err
	}
	a.localCache.Set("indexes", indexes, cache.DefaultExpiration)

	return indexes, nil
}
