package provider

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// chatCompletion serves any OpenAI-compatible chat completions endpoint.
type chatCompletion struct {
	client      openai.Client
	name        string
	model       string
	temperature float64
	maxTokens   int64
	ready       bool
}

func newOpenAI(cfg *Config) *chatCompletion {
	opts := []option.RequestOption{
		option.WithBaseURL(cfg.BaseURL),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(cfg.TimeoutDuration()),
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	return &chatCompletion{
		client:      openai.NewClient(opts...),
		name:        cfg.Name,
		model:       cfg.Model,
		temperature: cfg.TemperatureValue(),
		maxTokens:   int64(cfg.MaxTokens),
		ready:       cfg.APIKey != "",
	}
}

func (c *chatCompletion) Name() string  { return c.name }
func (c *chatCompletion) Model() string { return c.model }

func (c *chatCompletion) Complete(ctx context.Context, req Request) (*Response, error) {
	if !c.ready {
		return nil, missingCredentials(c.name)
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.Prompt),
		},
		Temperature: openai.Float(c.temperature),
		MaxTokens:   openai.Int(c.maxTokens),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, classifyOpenAI(c.name, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, emptyResponse(c.name)
	}

	return &Response{
		Content: resp.Choices[0].Message.Content,
		Model:   resp.Model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
	}, nil
}

func classifyOpenAI(name string, err error) *Error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return classify(name, apiErr.StatusCode, err)
	}
	return classify(name, 0, err)
}
