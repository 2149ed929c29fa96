package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/IliaW/partner-evaluator/config"
	"github.com/IliaW/partner-evaluator/internal/aws_s3"
	"github.com/IliaW/partner-evaluator/internal/broker"
	cacheClient "github.com/IliaW/partner-evaluator/internal/cache"
	"github.com/IliaW/partner-evaluator/internal/crawler"
	"github.com/IliaW/partner-evaluator/internal/evaluation"
	"github.com/IliaW/partner-evaluator/internal/evaluator"
	"github.com/IliaW/partner-evaluator/internal/model"
	"github.com/IliaW/partner-evaluator/internal/persistence"
	"github.com/IliaW/partner-evaluator/internal/server"
	"github.com/IliaW/partner-evaluator/internal/worker"
	"github.com/go-sql-driver/mysql"
	"github.com/lmittmann/tint"
)

var (
	cfg          *config.Config
	log          *slog.Logger
	db           *sql.DB
	s3           aws_s3.BucketClient
	cache        cacheClient.CachedClient
	metadataRepo persistence.MetadataStorage
	service      *evaluation.EvaluationService
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg = config.MustLoad()
	log = setupLogger()
	db = setupDatabase()
	defer closeDatabase()
	s3 = aws_s3.NewS3BucketClient(cfg.S3Settings, log)
	cache = cacheClient.NewMemcachedClient(cfg.CacheSettings, log)
	defer cache.Close()
	metadataRepo = persistence.NewMetadataRepository(db, log)

	fetchMechanism := model.FetchMechanism(cfg.CrawlerSettings.FetchMechanism)
	fetcher, err := crawler.NewPageFetcher(fetchMechanism, cfg.CrawlerSettings, log)
	if err != nil {
		log.Error("failed to create page fetcher.", slog.String("err", err.Error()))
		os.Exit(1)
	}
	scheduler := crawler.NewScheduler(fetcher, log)
	llm := evaluator.NewOpenAIClient(cfg.EvaluatorSettings, log)
	service = evaluation.NewEvaluationService(cfg, scheduler, llm, cache, s3, metadataRepo, log)
	log.Info("starting application on port "+cfg.Port, slog.String("env", cfg.Env),
		slog.String("fetch_mechanism", fetchMechanism.String()))

	kafkaWg := &sync.WaitGroup{}
	workerWg := &sync.WaitGroup{}
	if cfg.WorkerSettings.Enabled {
		startWorkers(ctx, kafkaWg, workerWg)
	}

	// Graceful shutdown.
	// 1. Stop the http server and the Kafka Consumer by system call. Close taskChan
	// 2. Wait till all Workers processed all tasks from taskChan. Close reportChan
	// 3. Wait till Producer process all reports from reportChan and write to kafka
	// 4. Close database and memcached connections
	srv := server.NewServer(service, log)
	if err = srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Error("http server failed.", slog.String("err", err.Error()))
		stop()
	}
	log.Info("stopping server...")
	if cfg.WorkerSettings.Enabled {
		workerWg.Wait()
		kafkaWg.Wait()
	}
}

func startWorkers(ctx context.Context, kafkaWg *sync.WaitGroup, workerWg *sync.WaitGroup) {
	taskChan := make(chan *model.EvaluationTask, cfg.WorkerSettings.MaxWorkers)
	reportChan := make(chan *model.Report, 100)
	panicChan := make(chan struct{}, cfg.WorkerSettings.MaxWorkers)

	kafkaWg.Add(1)
	go broker.NewKafkaConsumer(taskChan, cfg.KafkaSettings.Consumer, log, kafkaWg).Run(ctx)

	evaluationWorker := &worker.EvaluationWorker{
		InputChan:  taskChan,
		OutputChan: reportChan,
		PanicChan:  panicChan,
		Evaluator:  service,
		Log:        log,
		Wg:         workerWg,
	}
	for i := 0; i < cfg.WorkerSettings.MaxWorkers; i++ {
		workerWg.Add(1)
		go evaluationWorker.Run()
	}
	// Restart workers if they panic.
	go func() {
		for range panicChan {
			workerWg.Add(1)
			go evaluationWorker.Run()
			time.Sleep(3 * time.Minute) // timeout to avoid polluting logs if something unrecoverable happened
		}
	}()

	kafkaWg.Add(1)
	go broker.NewKafkaProducer(reportChan, cfg.KafkaSettings.Producer, log, kafkaWg).Run()

	go func() {
		<-ctx.Done()
		workerWg.Wait()
		close(reportChan)
		log.Info("close reportChan.")
		close(panicChan)
		log.Info("close panicChan.")
	}()
}

func setupLogger() *slog.Logger {
	resolvedLogLevel := func() slog.Level {
		envLogLevel := strings.ToLower(cfg.LogLevel)
		switch envLogLevel {
		case "info":
			return slog.LevelInfo
		case "error":
			return slog.LevelError
		default:
			return slog.LevelDebug
		}
	}

	replaceAttrs := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.SourceKey {
			source := a.Value.Any().(*slog.Source)
			source.File = filepath.Base(source.File)
		}
		return a
	}

	var logger *slog.Logger
	if strings.ToLower(cfg.LogType) == "json" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource:   true,
			Level:       resolvedLogLevel(),
			ReplaceAttr: replaceAttrs}))
	} else {
		logger = slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			AddSource:   true,
			Level:       resolvedLogLevel(),
			ReplaceAttr: replaceAttrs,
			NoColor:     false}))
	}

	slog.SetDefault(logger)
	logger.Debug("debug messages are enabled.")

	return logger
}

func setupDatabase() *sql.DB {
	log.Info("connecting to the database...")
	sqlCfg := mysql.Config{
		User:                 cfg.DbSettings.User,
		Passwd:               cfg.DbSettings.Password,
		Net:                  "tcp",
		Addr:                 fmt.Sprintf("%s:%s", cfg.DbSettings.Host, cfg.DbSettings.Port),
		DBName:               cfg.DbSettings.Name,
		AllowNativePasswords: true,
		ParseTime:            true,
	}
	database, err := sql.Open("mysql", sqlCfg.FormatDSN())
	if err != nil {
		log.Error("failed to establish database connection.", slog.String("err", err.Error()))
		os.Exit(1)
	}
	database.SetConnMaxLifetime(cfg.DbSettings.ConnMaxLifetime)
	database.SetMaxOpenConns(cfg.DbSettings.MaxOpenConns)
	database.SetMaxIdleConns(cfg.DbSettings.MaxIdleConns)

	maxRetry := 6
	for i := 1; i <= maxRetry; i++ {
		log.Info("ping the database.", slog.String("attempt", fmt.Sprintf("%d/%d", i, maxRetry)))
		pingErr := database.Ping()
		if pingErr != nil {
			log.Error("not responding.", slog.String("err", pingErr.Error()))
			if i == maxRetry {
				log.Error("failed to establish database connection.")
				os.Exit(1)
			}
			log.Info(fmt.Sprintf("wait %d seconds", 5*i))
			time.Sleep(time.Duration(5*i) * time.Second)
		} else {
			break
		}
	}
	log.Info("connected to the database!")

	return database
}

func closeDatabase() {
	log.Info("closing database connection.")
	err := db.Close()
	if err != nil {
		log.Error("failed to close database connection.", slog.String("err", err.Error()))
	}
}
