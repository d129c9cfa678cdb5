package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/graduation-team-project-4nd/KiMate-AI/internal/entity"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/pkg/logger"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const (
	maxAttempts    = 2
	attemptTimeout = 15 * time.Second
	retryBackoff   = 500 * time.Millisecond
)

// Client talks to the chat-completion API. It holds no per-request state,
// so one instance serves concurrent callers.
type Client struct {
	client *openai.Client
	model  string
	log    logger.ILogger
}

// New creates a new LLM client
func New(apiKey, model, baseURL string, log logger.ILogger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	// For OpenRouter/Groq/LocalLLM the BaseURL must be overridable
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)
	return &Client{
		client: &client,
		model:  model,
		log:    log,
	}
}

// Analyze asks the model which action fits the decision context. It makes a
// bounded number of attempts; any network, decode, or validation problem on
// the last attempt surfaces as an error and the caller falls back.
func (c *Client) Analyze(ctx context.Context, dc entity.DecisionContext) (*entity.ActionResult, error) {
	messages := ConstructMessages(dc)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := c.analyzeOnce(ctx, messages, dc.Candidates)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt < maxAttempts {
			c.log.Warn("llm", "analyze attempt failed, retrying", map[string]interface{}{
				"attempt": attempt,
				"error":   err.Error(),
			})
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * retryBackoff):
			}
		}
	}
	return nil, lastErr
}

func (c *Client) analyzeOnce(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion, visible []string) (*entity.ActionResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(callCtx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    messages,
		Temperature: openai.Opt[float64](0.3),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("llm returned no choices")
	}

	return ParseResponse(resp.Choices[0].Message.Content, visible)
}
