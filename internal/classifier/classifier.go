// Package classifier orchestrates the four-dimension classification of a
// business description: it fans a request out to one retry-wrapped
// provider call per dimension, validates each response, and joins the
// results all-or-nothing.
package classifier

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/taxonomist/internal/taxonomy"
	"github.com/JaimeStill/taxonomist/pkg/formatting"
	"github.com/JaimeStill/taxonomist/pkg/provider"
	"github.com/JaimeStill/taxonomist/pkg/retry"
)

// System defines the public contract for classification.
type System interface {
	Handler() *Handler
	Classify(ctx context.Context, req Request) (*Response, error)
	Provider() provider.Provider
}

// Config holds orchestration settings.
type Config struct {
	Retry retry.Config
	// RetryAuthFailures keeps retrying attempts that fail with missing or
	// rejected credentials. When false such failures end the task at once.
	RetryAuthFailures bool
}

type classifier struct {
	provider provider.Provider
	cfg      Config
	specs    []taxonomy.Spec
	logger   *slog.Logger
	metrics  *Metrics
}

// New creates a classification System. metrics may be nil.
func New(p provider.Provider, cfg Config, logger *slog.Logger, metrics *Metrics) System {
	return &classifier{
		provider: p,
		cfg:      cfg,
		specs:    taxonomy.All(),
		logger:   logger.With("system", "classifier"),
		metrics:  metrics,
	}
}

func (c *classifier) Handler() *Handler {
	return NewHandler(c, c.logger)
}

func (c *classifier) Provider() provider.Provider {
	return c.provider
}

// Classify validates req, runs every dimension concurrently, and returns
// either all four results or an error. No provider call is made when req
// is invalid. The first dimension to exhaust its retries cancels the rest.
func (c *classifier) Classify(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		c.metrics.observeRequest(time.Since(start), err)
		return nil, err
	}

	logger := c.logger.With(
		"request_id", uuid.New().String(),
		"provider", c.provider.Name(),
		"model", c.provider.Model(),
	)
	logger.Info("classification started", "name", req.Name)

	resp, err := c.dispatch(ctx, logger, req)
	c.metrics.observeRequest(time.Since(start), err)

	if err != nil {
		logger.Error("classification failed", "error", err, "duration", time.Since(start))
		return nil, err
	}

	logger.Info("classification complete", "duration", time.Since(start))
	return resp, nil
}

func (c *classifier) dispatch(ctx context.Context, logger *slog.Logger, req Request) (*Response, error) {
	results := make([]AgentResult, len(c.specs))
	failures := make([]*TaskError, len(c.specs))

	var (
		first     *TaskError
		firstOnce sync.Once
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(len(c.specs))

	for i, spec := range c.specs {
		g.Go(func() error {
			result, err := c.runTask(gctx, logger, spec, req)
			if err != nil {
				failures[i] = err
				if !errors.Is(err, retry.ErrAborted) {
					firstOnce.Do(func() { first = err })
				}
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err == nil {
		var resp Response
		for i, spec := range c.specs {
			resp.set(spec.Dimension, results[i])
		}
		return &resp, nil
	}

	if ctx.Err() != nil {
		return nil, errors.Join(ErrClassificationFailed, ctx.Err())
	}

	agg := &AggregateError{First: first}
	for _, f := range failures {
		if f == nil || errors.Is(f, retry.ErrAborted) {
			continue
		}
		agg.Failures = append(agg.Failures, f)
	}
	return nil, agg
}

func (c *classifier) runTask(ctx context.Context, logger *slog.Logger, spec taxonomy.Spec, req Request) (AgentResult, *TaskError) {
	logger = logger.With("dimension", spec.Dimension)
	prompt := spec.BuildPrompt(req.Name, req.Description)

	policy := retry.New(
		&c.cfg.Retry,
		retry.WithRetryable(c.retryable),
		retry.WithOnRetry(func(attempt int, err error, wait time.Duration) {
			logger.Warn("attempt failed, retrying", "attempt", attempt, "wait", wait, "error", err)
		}),
	)

	result, err := retry.Do(ctx, policy, func(actx context.Context, attempt int) (AgentResult, error) {
		started := time.Now()
		resp, err := c.provider.Complete(actx, provider.Request{
			System: taxonomy.SystemInstruction,
			Prompt: prompt,
		})
		elapsed := time.Since(started)

		if err != nil {
			c.metrics.observeAttempt(spec.Dimension, elapsed, err)
			return AgentResult{}, err
		}

		result, err := Validate(formatting.Normalize(resp.Content), spec.Allowed)
		c.metrics.observeAttempt(spec.Dimension, elapsed, err)
		if err != nil {
			logger.Debug("invalid model output", "attempt", attempt, "error", err)
		}
		return result, err
	})

	if err != nil {
		taskErr := &TaskError{Dimension: spec.Dimension, Cause: err}
		var exhausted *retry.ExhaustedError
		if errors.As(err, &exhausted) {
			taskErr.Attempts = exhausted.Attempts
			taskErr.Cause = exhausted.Err
			logger.Error("task failed", "attempts", exhausted.Attempts, "error", exhausted.Err)
		}
		return AgentResult{}, taskErr
	}

	logger.Debug("task complete", "main", result.Main)
	return result, nil
}

func (c *classifier) retryable(err error) bool {
	if !c.cfg.RetryAuthFailures && errors.Is(err, provider.ErrAuthMissing) {
		return false
	}
	return true
}
