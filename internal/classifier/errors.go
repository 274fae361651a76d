package classifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/taxonomist/internal/taxonomy"
	"github.com/JaimeStill/taxonomist/pkg/provider"
)

// Domain errors for classification.
var (
	ErrInvalidInput         = errors.New("invalid classification request")
	ErrInvalidOutput        = errors.New("model output failed validation")
	ErrClassificationFailed = errors.New("classification failed")
	ErrRequestTooLarge      = fmt.Errorf("%w: request body too large", ErrInvalidInput)
)

// InputError rejects a request before dispatch. It is never retried.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ValidationKind categorizes why model output was rejected.
type ValidationKind int

const (
	ParseFailure ValidationKind = iota
	SchemaViolation
	DisallowedMain
)

func (k ValidationKind) String() string {
	switch k {
	case SchemaViolation:
		return "schema_violation"
	case DisallowedMain:
		return "disallowed_main"
	default:
		return "parse_failure"
	}
}

// ValidationError reports model output that does not satisfy the result contract.
type ValidationError struct {
	Kind   ValidationKind
	Detail string
	// Value holds the rejected primary label for DisallowedMain.
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case DisallowedMain:
		return fmt.Sprintf("%s: %q is not an allowed value", e.Kind, e.Value)
	case SchemaViolation:
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	default:
		return fmt.Sprintf("%s: response is not valid JSON", e.Kind)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidOutput
}

// TaskError is the terminal failure of one dimension after its retry
// budget was spent or a non-retryable error occurred.
type TaskError struct {
	Dimension taxonomy.Dimension
	Attempts  int
	Cause     error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("%s: %v", e.Dimension, e.Cause)
}

func (e *TaskError) Unwrap() error {
	return e.Cause
}

// AggregateError fails a whole request. Failures lists every dimension that
// failed on its own account, in dimension order; dimensions that were only
// interrupted because a sibling failed are omitted. First is the failure
// observed earliest.
type AggregateError struct {
	Failures []*TaskError
	First    *TaskError
}

func (e *AggregateError) Error() string {
	return fmt.Sprintf("%s: %s", ErrClassificationFailed, strings.Join(e.dimensionNames(), ", "))
}

func (e *AggregateError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures)+1)
	errs = append(errs, ErrClassificationFailed)
	for _, f := range e.Failures {
		errs = append(errs, f)
	}
	return errs
}

// Dimensions returns the failed dimensions in dimension order.
func (e *AggregateError) Dimensions() []taxonomy.Dimension {
	dims := make([]taxonomy.Dimension, len(e.Failures))
	for i, f := range e.Failures {
		dims[i] = f.Dimension
	}
	return dims
}

func (e *AggregateError) dimensionNames() []string {
	names := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		names[i] = string(f.Dimension)
	}
	return names
}

// MapHTTPStatus maps classification errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrRequestTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Failure is the client-facing description of a failed request.
type Failure struct {
	Error    string `json:"error"`
	Message  string `json:"message"`
	Provider string `json:"provider"`
}

// Describe builds the client-facing failure for err. Messages are derived
// from error kinds and dimension names only, never from upstream bodies.
func Describe(err error, providerName string) Failure {
	if errors.Is(err, ErrInvalidInput) {
		return Failure{
			Error:    "Invalid request",
			Message:  err.Error(),
			Provider: providerName,
		}
	}

	msg := "Classification could not be completed. Please try again."

	var agg *AggregateError
	if errors.As(err, &agg) && agg.First != nil {
		msg = causeMessage(agg.First.Cause)
		msg += fmt.Sprintf(" Failed dimensions: %s.", strings.Join(agg.dimensionNames(), ", "))
	} else if errors.Is(err, context.DeadlineExceeded) {
		msg = "Classification timed out. Please try again."
	}

	return Failure{
		Error:    "Classification failed",
		Message:  msg,
		Provider: providerName,
	}
}

func causeMessage(cause error) string {
	var verr *ValidationError
	if errors.As(cause, &verr) {
		if verr.Kind == ParseFailure {
			return "AI returned invalid response format. Please try again."
		}
		return "AI returned a response outside the allowed classification values. Please try again."
	}

	switch kind, ok := provider.KindOf(cause); {
	case !ok:
		return "Classification could not be completed. Please try again."
	case kind == provider.KindAuthMissing:
		return "API key configuration error. Please check the provider credentials."
	case kind == provider.KindRateLimited:
		return "AI provider rate limit exceeded. Please try again later."
	case kind == provider.KindMalformedUpstream:
		return "AI provider rejected the request."
	default:
		return "AI provider is unreachable. Please try again."
	}
}
