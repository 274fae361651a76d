package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/JaimeStill/taxonomist/internal/classifier"
	"github.com/JaimeStill/taxonomist/internal/extraction"
	"github.com/JaimeStill/taxonomist/pkg/provider"
	"github.com/JaimeStill/taxonomist/pkg/retry"
)

const EnvClassifierRetryAuthFailures = "TAXONOMIST_CLASSIFIER_RETRY_AUTH_FAILURES"

var providerEnv = &provider.Env{
	Name:        "TAXONOMIST_PROVIDER_NAME",
	APIKey:      "TAXONOMIST_PROVIDER_API_KEY",
	BaseURL:     "TAXONOMIST_PROVIDER_BASE_URL",
	Model:       "TAXONOMIST_PROVIDER_MODEL",
	Temperature: "TAXONOMIST_PROVIDER_TEMPERATURE",
	MaxTokens:   "TAXONOMIST_PROVIDER_MAX_TOKENS",
	Timeout:     "TAXONOMIST_PROVIDER_TIMEOUT",
	APIVersion:  "TAXONOMIST_PROVIDER_API_VERSION",
	AuthType:    "TAXONOMIST_PROVIDER_AUTH_TYPE",
}

var retryEnv = &retry.Env{
	MaxAttempts:       "TAXONOMIST_CLASSIFIER_MAX_ATTEMPTS",
	Backoff:           "TAXONOMIST_CLASSIFIER_BACKOFF",
	BackoffMultiplier: "TAXONOMIST_CLASSIFIER_BACKOFF_MULTIPLIER",
	MaxBackoff:        "TAXONOMIST_CLASSIFIER_MAX_BACKOFF",
	AttemptTimeout:    "TAXONOMIST_CLASSIFIER_ATTEMPT_TIMEOUT",
}

var extractionEnv = &extraction.Env{
	MinTextLength: "TAXONOMIST_EXTRACTION_MIN_TEXT_LENGTH",
	Keywords:      "TAXONOMIST_EXTRACTION_KEYWORDS",
}

// ProviderConfig selects and configures the completion provider.
type ProviderConfig = provider.Config

// ExtractionConfig holds PDF text extraction settings.
type ExtractionConfig = extraction.Config

// ClassifierConfig holds the per-dimension retry policy. Retry fields sit
// directly in the [classifier] table.
type ClassifierConfig struct {
	retry.Config
	RetryAuthFailures *bool `toml:"retry_auth_failures"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ClassifierConfig) Finalize() error {
	if c.RetryAuthFailures == nil {
		retryAuth := true
		c.RetryAuthFailures = &retryAuth
	}
	if v := os.Getenv(EnvClassifierRetryAuthFailures); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvClassifierRetryAuthFailures, err)
		}
		c.RetryAuthFailures = &b
	}
	return c.Config.Finalize(retryEnv)
}

// Merge overwrites non-zero fields from overlay.
func (c *ClassifierConfig) Merge(overlay *ClassifierConfig) {
	c.Config.Merge(&overlay.Config)
	if overlay.RetryAuthFailures != nil {
		c.RetryAuthFailures = overlay.RetryAuthFailures
	}
}

// Orchestrator returns the finalized settings in the form the classifier consumes.
func (c *ClassifierConfig) Orchestrator() classifier.Config {
	return classifier.Config{
		Retry:             c.Config,
		RetryAuthFailures: c.RetryAuthFailures == nil || *c.RetryAuthFailures,
	}
}
