//go:generate mockgen -destination=../mocks/partner_evaluator_mock.go -package=mocks . PartnerEvaluator

package evaluation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/IliaW/partner-evaluator/config"
	"github.com/IliaW/partner-evaluator/internal/aws_s3"
	"github.com/IliaW/partner-evaluator/internal/cache"
	"github.com/IliaW/partner-evaluator/internal/crawler"
	"github.com/IliaW/partner-evaluator/internal/evaluator"
	"github.com/IliaW/partner-evaluator/internal/model"
	"github.com/IliaW/partner-evaluator/internal/persistence"
	"github.com/google/uuid"
)

var (
	ErrScrape   = errors.New("scrape failed")
	ErrEvaluate = errors.New("evaluation failed")
)

type PartnerEvaluator interface {
	Evaluate(ctx context.Context, url string, force bool) (*model.Report, error)
}

type EvaluationService struct {
	scheduler    *crawler.Scheduler
	evaluator    evaluator.Evaluator
	cache        cache.CachedClient
	s3           aws_s3.BucketClient
	db           persistence.MetadataStorage
	crawlerCfg   *config.CrawlerConfig
	evaluatorCfg *config.EvaluatorConfig
	version      string
	log          *slog.Logger
}

func NewEvaluationService(cfg *config.Config, scheduler *crawler.Scheduler, llm evaluator.Evaluator,
	cacheClient cache.CachedClient, s3 aws_s3.BucketClient, db persistence.MetadataStorage,
	log *slog.Logger) *EvaluationService {
	return &EvaluationService{
		scheduler:    scheduler,
		evaluator:    llm,
		cache:        cacheClient,
		s3:           s3,
		db:           db,
		crawlerCfg:   cfg.CrawlerSettings,
		evaluatorCfg: cfg.EvaluatorSettings,
		version:      cfg.Version,
		log:          log,
	}
}

// Evaluate crawls the website, evaluates the collected content and archives the report.
// A cached report is returned unless force is set. Returned errors wrap ErrScrape or ErrEvaluate
// together with the cause.
func (s *EvaluationService) Evaluate(ctx context.Context, url string, force bool) (*model.Report, error) {
	startTime := time.Now()
	seed := crawler.NormalizeSeed(url)
	if !force {
		if report, ok := s.cache.GetReport(seed); ok {
			s.log.Info("evaluation found in cache.", slog.String("url", seed), slog.String("id", report.ID))
			report.Cached = true
			return report, nil
		}
	}

	s.log.Info("starting content scraping.", slog.String("url", seed))
	crawlCtx, cancel := withTimeout(ctx, s.crawlerCfg.ScrapeTimeout)
	res, err := s.scheduler.Crawl(crawlCtx, seed, s.crawlerCfg.TimeoutPerPage, s.crawlerCfg.MaxPages)
	cancel()
	if err != nil {
		if res != nil {
			s.log.Warn("scraping failed.", slog.String("url", seed), slog.Int("visited", len(res.Visited)),
				slog.Int("fetched", res.Fetched), slog.Int("failed", res.Failed), slog.String("err", err.Error()))
		}
		return nil, fmt.Errorf("%w: %w", ErrScrape, err)
	}
	document, _ := crawler.Aggregate(res.Pages)
	s.log.Info("successfully scraped content.", slog.String("url", seed), slog.Int("length", len(document)),
		slog.Int("pages", len(res.Pages)), slog.Int("visited", len(res.Visited)))

	s.log.Info("starting evaluation.", slog.String("url", seed))
	evalCtx, cancel := withTimeout(ctx, s.evaluatorCfg.Timeout)
	result, err := s.evaluator.Evaluate(evalCtx, crawler.Truncate(document, s.evaluatorCfg.MaxContentChars))
	cancel()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEvaluate, err)
	}

	report := &model.Report{
		ID:               uuid.NewString(),
		URL:              seed,
		Evaluation:       result,
		PagesVisited:     len(res.Visited),
		PagesCollected:   len(res.Pages),
		ContentLength:    len(document),
		FetchMechanism:   model.FetchMechanism(s.crawlerCfg.FetchMechanism).String(),
		TimeToEvaluate:   time.Since(startTime).Milliseconds(),
		EvaluatorVersion: s.version,
		CreatedAt:        time.Now().UTC(),
	}
	s.log.Info("successfully completed evaluation.", slog.String("url", seed), slog.String("id", report.ID),
		slog.Int("probability", result.Probability), slog.String("category", result.Category))

	// The report is archived even if the caller has gone away.
	s.saveReport(context.WithoutCancel(ctx), report, document)

	return report, nil
}

func (s *EvaluationService) saveReport(ctx context.Context, report *model.Report, document string) {
	link := s.s3.WriteReport(ctx, report, document) // Save report and document to S3
	s.db.Save(ctx, report, link)                    // Save metadata to database
	s.cache.SaveReport(report)                      // Cache the report for the url
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
