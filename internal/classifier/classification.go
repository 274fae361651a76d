package classifier

import (
	"strings"
	"unicode/utf8"

	"github.com/JaimeStill/taxonomist/internal/taxonomy"
)

// MinDescriptionLength is the minimum description length in characters.
const MinDescriptionLength = 10

// Request is a single business to classify.
type Request struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks the request before any provider call is made.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &InputError{Field: "name", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(r.Description) < MinDescriptionLength {
		return &InputError{Field: "description", Reason: "must be at least 10 characters"}
	}
	return nil
}

// AgentResult is the validated output of one classification task.
// Main is always a member of the task's allowed set and Justification is
// never empty. Other is never nil.
type AgentResult struct {
	Main          string   `json:"main"`
	Other         []string `json:"other"`
	Justification string   `json:"justification"`
}

// Response joins one result per dimension. It is only ever produced with
// all four fields populated.
type Response struct {
	Customer     AgentResult `json:"customer"`
	Revenue      AgentResult `json:"revenue"`
	Architecture AgentResult `json:"architecture"`
	Industry     AgentResult `json:"industry"`
}

// Get returns the result for a dimension.
func (r *Response) Get(d taxonomy.Dimension) AgentResult {
	switch d {
	case taxonomy.Customer:
		return r.Customer
	case taxonomy.Revenue:
		return r.Revenue
	case taxonomy.Architecture:
		return r.Architecture
	default:
		return r.Industry
	}
}

func (r *Response) set(d taxonomy.Dimension, result AgentResult) {
	switch d {
	case taxonomy.Customer:
		r.Customer = result
	case taxonomy.Revenue:
		r.Revenue = result
	case taxonomy.Architecture:
		r.Architecture = result
	case taxonomy.Industry:
		r.Industry = result
	}
}
