package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/IliaW/partner-evaluator/internal/model"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// BrowserFetcher renders pages in headless Chrome before extracting them.
type BrowserFetcher struct {
	userAgent string
	log       *slog.Logger
}

func NewBrowserFetcher(userAgent string, log *slog.Logger) *BrowserFetcher {
	return &BrowserFetcher{userAgent: userAgent, log: log}
}

func (f *BrowserFetcher) Fetch(ctx context.Context, url string) (*model.Page, error) {
	bCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	finalURL := url
	statusCode := int64(0)
	chromedp.ListenTarget(bCtx, func(event interface{}) {
		switch ev := event.(type) {
		case *network.EventResponseReceived:
			if ev.Response.URL == finalURL {
				statusCode = ev.Response.Status
			}
		case *network.EventRequestWillBeSent:
			if ev.RedirectResponse != nil {
				finalURL = ev.Request.URL
				f.log.Debug("redirected.", slog.String("from", ev.RedirectResponse.URL),
					slog.String("to", finalURL))
			}
		}
	})

	var html string
	err := chromedp.Run(bCtx,
		chromedp.Tasks{
			network.Enable(),
			network.SetExtraHTTPHeaders(map[string]interface{}{
				"User-Agent": f.userAgent,
			}),
			enableLifeCycleEvents(),
			navigateAndWaitFor(url, "networkIdle"),
		},
		chromedp.ActionFunc(func(ctx context.Context) error {
			rootNode, err := dom.GetDocument().Do(ctx)
			if err != nil {
				return err
			}
			html, err = dom.GetOuterHTML().WithNodeID(rootNode.NodeID).Do(ctx)
			return err
		}),
	)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrFetch, url, err.Error())
	}
	if statusCode >= 400 {
		return nil, fmt.Errorf("%w: %s: status code %d", ErrFetch, url, statusCode)
	}

	p, err := ParseHTML(finalURL, []byte(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrFetch, url, err.Error())
	}
	return p, nil
}

func enableLifeCycleEvents() chromedp.ActionFunc {
	return func(ctx context.Context) error {
		err := page.Enable().Do(ctx)
		if err != nil {
			return err
		}
		err = page.SetLifecycleEventsEnabled(true).Do(ctx)
		if err != nil {
			return err
		}
		return nil
	}
}

func navigateAndWaitFor(url string, eventName string) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		_, _, _, err := page.Navigate(url).Do(ctx)
		if err != nil {
			return err
		}
		return waitFor(ctx, eventName)
	}
}

func waitFor(ctx context.Context, eventName string) error {
	ch := make(chan struct{})
	var once sync.Once
	cctx, cancel := context.WithCancel(ctx)
	defer cancel()
	chromedp.ListenTarget(cctx, func(ev interface{}) {
		switch e := ev.(type) {
		case *page.EventLifecycleEvent:
			if e.Name == eventName {
				once.Do(func() {
					cancel()
					close(ch)
				})
			}
		}
	})
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
