// Package taxonomy defines the four classification tasks as data: the
// rubric each task applies, the closed set of values its primary label may
// take, and the response format the model is instructed to produce.
package taxonomy

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// SystemInstruction is sent with every task prompt.
const SystemInstruction = "You are a business analyst. Always respond with ONLY valid JSON. No explanations, no markdown, just the JSON object."

// Example is the sample result embedded in a task's response format.
type Example struct {
	Main          string   `json:"main"`
	Other         []string `json:"other"`
	Justification string   `json:"justification"`
}

// Spec is the static definition of one classification task.
type Spec struct {
	Dimension Dimension `json:"dimension"`
	Title     string    `json:"title"`
	Allowed   []string  `json:"allowed"`
	Example   Example   `json:"example"`

	Role   string `json:"-"`
	Rubric string `json:"-"`
	// OtherHint describes what secondary labels in "other" represent.
	OtherHint string `json:"-"`
	// JustificationHint states what the justification must cite.
	JustificationHint string `json:"-"`
	Focus             string `json:"-"`
}

var registry = map[Dimension]Spec{
	Customer:     customerSpec,
	Revenue:      revenueSpec,
	Architecture: architectureSpec,
	Industry:     industrySpec,
}

// Lookup returns the task spec for a dimension.
// Returns ErrInvalidDimension if the dimension is not recognized.
func Lookup(d Dimension) (Spec, error) {
	spec, ok := registry[d]
	if !ok {
		return Spec{}, ErrInvalidDimension
	}
	return spec, nil
}

// All returns every task spec in fixed dimension order.
func All() []Spec {
	specs := make([]Spec, 0, len(dimensions))
	for _, d := range dimensions {
		specs = append(specs, registry[d])
	}
	return specs
}

// Allows reports whether value is a legal primary label for this task.
// Matching is exact and case-sensitive.
func (s Spec) Allows(value string) bool {
	return slices.Contains(s.Allowed, value)
}

// BuildPrompt renders the task prompt for a business. Name and description
// are embedded verbatim. The result is deterministic for a given input.
func (s Spec) BuildPrompt(name, description string) string {
	var b strings.Builder

	b.WriteString(s.Role)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Business Name: %s\n", name)
	fmt.Fprintf(&b, "Business Description: %s\n\n", description)

	b.WriteString(strings.TrimSpace(s.Rubric))
	b.WriteString("\n\n")

	b.WriteString("Respond with ONLY a valid JSON object in this exact format:\n")
	b.WriteString(s.example())
	b.WriteString("\n\n")

	b.WriteString("Rules:\n")
	fmt.Fprintf(&b, "- \"main\" must be exactly one of: %s\n", quoteAll(s.Allowed))
	fmt.Fprintf(&b, "- \"other\" must be an array (can be empty [] or contain secondary %s)\n", s.OtherHint)
	fmt.Fprintf(&b, "- \"justification\" must %s\n", s.JustificationHint)
	if s.Focus != "" {
		fmt.Fprintf(&b, "- %s\n", s.Focus)
	}
	b.WriteString("- Return ONLY the JSON, no other text")

	return b.String()
}

func (s Spec) example() string {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.Example); err != nil {
		return "{}"
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}
