package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"career-advisor/internal/logger"
	"career-advisor/internal/metrics"
)

const (
	DefaultBaseURL     = "https://openrouter.ai/api/v1"
	DefaultModel       = "openai/gpt-3.5-turbo"
	DefaultMaxTokens   = 1024
	DefaultTemperature = 0.1

	systemPrompt = "Return only valid JSON responses."
)

// Options configures an OpenAIClient. Empty BaseURL and Model and a non-positive
// MaxTokens fall back to the defaults above. Temperature is sent as given, so 0 means
// greedy decoding; callers wanting DefaultTemperature must set it.
type Options struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int64
	Temperature float64
	Timeout     time.Duration // 0 keeps the transport default
	HTTPClient  *http.Client
	Log         *slog.Logger
}

// OpenAIClient calls an OpenAI-compatible Chat Completions endpoint (OpenRouter by default).
type OpenAIClient struct {
	client      *openai.Client
	apiKey      string
	model       openai.ChatModel
	maxTokens   int64
	temperature float64
	log         *slog.Logger
}

// NewOpenAIClient builds a client. A missing API key is not rejected here;
// every Complete call reports ErrMissingAPIKey before touching the network.
func NewOpenAIClient(opts Options) *OpenAIClient {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	if opts.Log == nil {
		opts.Log = logger.Discard()
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithBaseURL(opts.BaseURL),
		option.WithMaxRetries(0),
		option.WithHeader("X-Title", "career-advisor"),
	}
	if opts.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(opts.HTTPClient))
	}
	if opts.Timeout > 0 {
		reqOpts = append(reqOpts, option.WithRequestTimeout(opts.Timeout))
	}
	cli := openai.NewClient(reqOpts...)

	return &OpenAIClient{
		client:      &cli,
		apiKey:      opts.APIKey,
		model:       openai.ChatModel(opts.Model),
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
		log:         opts.Log,
	}
}

// Complete sends prompt and returns the first choice's message content.
// An empty choice list yields "" without error.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		metrics.LLMRequests.WithLabelValues(metrics.OutcomeConfigError).Inc()
		return "", ErrMissingAPIKey
	}

	start := time.Now()
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    buildMessages(systemPrompt, prompt),
		MaxTokens:   openai.Int(c.maxTokens),
		Temperature: openai.Float(c.temperature),
	})
	metrics.LLMRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			metrics.LLMRequests.WithLabelValues(metrics.OutcomeHTTPError).Inc()
			body := apiErr.RawJSON()
			c.log.Error("API error", "status", apiErr.StatusCode, "body", body)
			return "", &StatusError{StatusCode: apiErr.StatusCode, Body: body}
		}
		metrics.LLMRequests.WithLabelValues(metrics.OutcomeFetchError).Inc()
		c.log.Error("error during API request", "err", err)
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	metrics.LLMRequests.WithLabelValues(metrics.OutcomeSuccess).Inc()
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func buildMessages(system, user string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(system),
				},
			},
		},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(user),
				},
			},
		},
	}
}
