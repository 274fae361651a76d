package provider

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes a completion failure.
type Kind int

const (
	KindNetworkFailure Kind = iota
	KindAuthMissing
	KindRateLimited
	KindMalformedUpstream
)

func (k Kind) String() string {
	switch k {
	case KindAuthMissing:
		return "auth_missing"
	case KindRateLimited:
		return "rate_limited"
	case KindMalformedUpstream:
		return "malformed_upstream"
	default:
		return "network_failure"
	}
}

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrAuthMissing       = errors.New("provider credentials missing or rejected")
	ErrRateLimited       = errors.New("provider rate limit exceeded")
	ErrNetworkFailure    = errors.New("provider unreachable")
	ErrMalformedUpstream = errors.New("provider returned an unusable response")

	ErrUnknownProvider = errors.New("unknown provider")
)

func (k Kind) sentinel() error {
	switch k {
	case KindAuthMissing:
		return ErrAuthMissing
	case KindRateLimited:
		return ErrRateLimited
	case KindMalformedUpstream:
		return ErrMalformedUpstream
	default:
		return ErrNetworkFailure
	}
}

// Error is a completion failure. Its message never includes credentials
// or raw upstream bodies.
type Error struct {
	Kind       Kind
	Provider   string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Provider, e.Kind.sentinel())
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// KindOf extracts the failure kind from err. The second result is false
// when err is not a provider error.
func KindOf(err error) (Kind, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind, true
	}
	return 0, false
}

// classify maps an upstream status code to a provider error. A zero status
// means no response was received and is treated as a network failure.
func classify(provider string, status int, err error) *Error {
	kind := KindNetworkFailure
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = KindAuthMissing
	case status == http.StatusTooManyRequests:
		kind = KindRateLimited
	case status >= 500:
		kind = KindNetworkFailure
	case status >= 400:
		kind = KindMalformedUpstream
	}
	return &Error{Kind: kind, Provider: provider, StatusCode: status, Err: err}
}

func missingCredentials(provider string) *Error {
	return &Error{Kind: KindAuthMissing, Provider: provider}
}

func emptyResponse(provider string) *Error {
	return &Error{
		Kind:     KindMalformedUpstream,
		Provider: provider,
		Err:      errors.New("response contained no text content"),
	}
}
