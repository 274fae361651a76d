package provider

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type messages struct {
	client      anthropic.Client
	model       anthropic.Model
	temperature float64
	maxTokens   int64
	ready       bool
}

func newAnthropic(cfg *Config) *messages {
	opts := []option.RequestOption{
		option.WithMaxRetries(0),
		option.WithRequestTimeout(cfg.TimeoutDuration()),
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &messages{
		client:      anthropic.NewClient(opts...),
		model:       anthropic.Model(cfg.Model),
		temperature: cfg.TemperatureValue(),
		maxTokens:   int64(cfg.MaxTokens),
		ready:       cfg.APIKey != "",
	}
}

func (m *messages) Name() string  { return Anthropic }
func (m *messages) Model() string { return string(m.model) }

func (m *messages) Complete(ctx context.Context, req Request) (*Response, error) {
	if !m.ready {
		return nil, missingCredentials(Anthropic)
	}

	resp, err := m.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     m.model,
		MaxTokens: m.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: req.System},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
		Temperature: anthropic.Float(m.temperature),
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return nil, classify(Anthropic, apiErr.StatusCode, err)
		}
		return nil, classify(Anthropic, 0, err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(variant.Text)
		}
	}
	if text.Len() == 0 {
		return nil, emptyResponse(Anthropic)
	}

	return &Response{
		Content: text.String(),
		Model:   string(resp.Model),
		Usage: Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
		},
	}, nil
}
