package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicClient implements LLMClient using the Anthropic Messages API.
type anthropicClient struct {
	cfg      LLMConfig
	client   anthropic.Client
	observer Observer
}

// NewAnthropicClient creates an LLMClient backed by the Anthropic API.
// Requires an API key from config or ANTHROPIC_API_KEY.
func NewAnthropicClient(cfg LLMConfig, observer Observer) (LLMClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic provider selected but no API key set (ANTHROPIC_API_KEY)")
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	return &anthropicClient{
		cfg:      cfg,
		client:   anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		observer: observer,
	}, nil
}

func (c *anthropicClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}
	if maxTok <= 0 {
		maxTok = 1024
	}

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:       anthropic.Model(c.cfg.AnthropicModel),
			MaxTokens:   int64(maxTok),
			Temperature: anthropic.Float(temp),
			System: []anthropic.TextBlockParam{
				{Text: req.SystemPrompt},
			},
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(req.UserPrompt)),
			},
		})
		if err == nil {
			var text string
			for _, block := range resp.Content {
				if block.Type == "text" {
					text += block.Text
				}
			}
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(LLMCallEvent{
				Task:      req.Task,
				Model:     c.cfg.AnthropicModel,
				LatencyMs: latency,
				Success:   true,
			})
			return &GenerateResponse{
				Text:      text,
				Model:     c.cfg.AnthropicModel,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout
		if ctx.Err() != nil {
			break
		}
	}

	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(LLMCallEvent{
		Task:      req.Task,
		Model:     c.cfg.AnthropicModel,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	return nil, fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

// Available reports whether the client is usable. The Anthropic API has
// no cheap health endpoint, so key presence is the proxy.
func (c *anthropicClient) Available(ctx context.Context) bool {
	return c.cfg.APIKey != ""
}
