//go:generate mockgen -destination=../mocks/evaluator_mock.go -package=mocks . Evaluator

package evaluator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/IliaW/partner-evaluator/config"
	"github.com/IliaW/partner-evaluator/internal/model"
	"github.com/sashabaranov/go-openai"
)

// ErrEvaluation covers transport failures, malformed model output and missing result fields.
var ErrEvaluation = errors.New("failed to evaluate content")

type Evaluator interface {
	Evaluate(ctx context.Context, document string) (*model.Evaluation, error)
}

type OpenAIClient struct {
	client *openai.Client
	cfg    *config.EvaluatorConfig
	log    *slog.Logger
}

func NewOpenAIClient(cfg *config.EvaluatorConfig, log *slog.Logger) *OpenAIClient {
	if cfg.ApiKey == "" {
		log.Warn("evaluator api key is empty.")
	}
	clientCfg := openai.DefaultConfig(cfg.ApiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
		log:    log,
	}
}

// Evaluate submits the document as is. Callers truncate it beforehand.
func (o *OpenAIClient) Evaluate(ctx context.Context, document string) (*model.Evaluation, error) {
	startTime := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.cfg.Model,
		Temperature: o.cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(document)},
		},
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrEvaluation, ctxErr)
		}
		return nil, fmt.Errorf("%w: %s", ErrEvaluation, err.Error())
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: model returned no choices", ErrEvaluation)
	}
	o.log.Debug("model responded.", slog.String("model", resp.Model),
		slog.Int("total_tokens", resp.Usage.TotalTokens),
		slog.Int64("time_ms", time.Since(startTime).Milliseconds()))

	text := resp.Choices[0].Message.Content
	evaluation, err := ParseEvaluation(text)
	if err != nil {
		o.log.Error("failed to parse model response.", slog.String("err", err.Error()),
			slog.String("response", text))
		return nil, err
	}
	return evaluation, nil
}
