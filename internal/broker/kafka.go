package broker

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/IliaW/partner-evaluator/config"
	"github.com/IliaW/partner-evaluator/internal/model"
	jsoniter "github.com/json-iterator/go"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress/lz4"
)

// KafkaProducerClient publishes evaluation reports from reportChan to kafka in batches.
// It keeps writing until reportChan is closed and drained.
type KafkaProducerClient struct {
	reportChan <-chan *model.Report
	cfg        *config.ProducerConfig
	log        *slog.Logger
	wg         *sync.WaitGroup
}

func NewKafkaProducer(reportChan <-chan *model.Report, cfg *config.ProducerConfig, log *slog.Logger,
	wg *sync.WaitGroup) *KafkaProducerClient {
	return &KafkaProducerClient{
		reportChan: reportChan,
		cfg:        cfg,
		log:        log,
		wg:         wg,
	}
}

func (p *KafkaProducerClient) Run() {
	defer p.wg.Done()
	p.log.Info("starting kafka producer...", slog.String("topic", p.cfg.WriteTopicName))

	w := kafka.Writer{
		Addr:         kafka.TCP(strings.Split(p.cfg.Addr, ",")...),
		Topic:        p.cfg.WriteTopicName,
		Balancer:     &kafka.Hash{},
		MaxAttempts:  p.cfg.MaxAttempts,
		BatchSize:    1,                // the parameter is controlled by 'batchTicker' variable
		BatchTimeout: time.Millisecond, // the parameter is controlled by 'batch' variable
		ReadTimeout:  p.cfg.ReadTimeout,
		WriteTimeout: p.cfg.WriteTimeout,
		RequiredAcks: kafka.RequiredAcks(p.cfg.RequiredAsks),
		Async:        p.cfg.Async,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				p.log.Error("failed to send messages to kafka.", slog.String("err", err.Error()))
			}
		},
		Compression: kafka.Compression(new(lz4.Codec).Code()),
	}
	defer func() {
		err := w.Close()
		if err != nil {
			p.log.Error("failed to close kafka writer.", slog.String("err", err.Error()))
		}
	}()

	batchTicker := time.NewTicker(p.cfg.BatchTimeout)
	batch := make([]kafka.Message, 0, p.cfg.BatchSize)
	writeMessage := func(batch []kafka.Message) {
		ctx, cancel := context.WithTimeout(context.Background(), p.cfg.WriteTimeout)
		defer cancel()
		err := w.WriteMessages(ctx, batch...)
		if err != nil {
			p.log.Error("failed to send messages to kafka.", slog.String("err", err.Error()))
			return
		}
		p.log.Debug("successfully sent messages to kafka.", slog.Int("batch length", len(batch)))
	}

	for report := range p.reportChan {
		body, err := jsoniter.Marshal(report)
		if err != nil {
			p.log.Error("marshaling error.", slog.String("err", err.Error()), slog.String("id", report.ID))
			continue
		}
		batch = append(batch, kafka.Message{
			Key:   []byte(report.URL),
			Value: body,
		})
		select {
		case <-batchTicker.C:
			writeMessage(batch)
			batch = batch[:0]
		default:
			if len(batch) >= p.cfg.BatchSize {
				writeMessage(batch)
				batch = batch[:0]
			}
		}
	}
	batchTicker.Stop()
	// Some messages may remain in the batch after reportChan is closed
	if len(batch) > 0 {
		p.log.Debug("messages in batch.", slog.Int("count", len(batch)))
		writeMessage(batch)
	}
	p.log.Info("stopping kafka writer.")
}

// KafkaConsumerClient reads evaluation tasks from kafka and sends them to taskChan.
// taskChan is closed when the context is done.
type KafkaConsumerClient struct {
	taskChan chan<- *model.EvaluationTask
	cfg      *config.ConsumerConfig
	log      *slog.Logger
	wg       *sync.WaitGroup
}

func NewKafkaConsumer(taskChan chan<- *model.EvaluationTask, cfg *config.ConsumerConfig, log *slog.Logger,
	wg *sync.WaitGroup) *KafkaConsumerClient {
	return &KafkaConsumerClient{
		taskChan: taskChan,
		cfg:      cfg,
		log:      log,
		wg:       wg,
	}
}

func (c *KafkaConsumerClient) Run(ctx context.Context) {
	c.log.Info("starting kafka consumer.", slog.String("topic", c.cfg.ReadTopicName))
	defer c.wg.Done()

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:          strings.Split(c.cfg.Brokers, ","),
		Topic:            c.cfg.ReadTopicName,
		GroupID:          c.cfg.GroupID,
		MaxWait:          c.cfg.MaxWait,
		ReadBatchTimeout: c.cfg.ReadBatchTimeout,
	})

	for {
		select {
		case <-ctx.Done():
			c.log.Info("stopping kafka reader.")
			err := r.Close()
			if err != nil {
				c.log.Error("failed to close kafka reader.", slog.String("err", err.Error()))
			}
			close(c.taskChan)
			c.log.Info("close taskChan.")
			return
		default:
			m, err := r.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() == nil {
					c.log.Error("failed to read message from kafka.", slog.String("err", err.Error()))
				}
				continue
			}
			c.log.Debug("successfully read messages from kafka.")

			task, err := decodeTask(m.Value)
			if err != nil {
				c.log.Error("failed to decode task.", slog.String("err", err.Error()))
				continue
			}
			c.taskChan <- task
		}
	}
}

func decodeTask(value []byte) (*model.EvaluationTask, error) {
	var task model.EvaluationTask
	if err := jsoniter.Unmarshal(value, &task); err != nil {
		return nil, err
	}
	if task.URL == "" {
		return nil, errors.New("task without url")
	}
	return &task, nil
}
