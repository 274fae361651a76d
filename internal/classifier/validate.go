package classifier

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/JaimeStill/taxonomist/pkg/formatting"
)

// Validate parses normalized model output and enforces the result contract:
// "main" must be a string in allowed, "justification" a non-empty string,
// and "other" an array of strings when present. A missing or null "other"
// becomes an empty slice; a present one is kept verbatim. Unknown fields
// are ignored.
func Validate(candidate string, allowed []string) (AgentResult, error) {
	raw, err := formatting.Parse[json.RawMessage](candidate)
	if err != nil {
		return AgentResult{}, &ValidationError{Kind: ParseFailure, Err: err}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return AgentResult{}, schemaViolation("response is not a JSON object")
	}

	var result AgentResult

	rawMain, ok := fields["main"]
	if !ok {
		return AgentResult{}, schemaViolation(`missing "main"`)
	}
	if err := json.Unmarshal(rawMain, &result.Main); err != nil || isNull(rawMain) {
		return AgentResult{}, schemaViolation(`"main" must be a string`)
	}

	justification, ok := fields["justification"]
	if !ok {
		return AgentResult{}, schemaViolation(`missing "justification"`)
	}
	if err := json.Unmarshal(justification, &result.Justification); err != nil || isNull(justification) {
		return AgentResult{}, schemaViolation(`"justification" must be a string`)
	}
	if strings.TrimSpace(result.Justification) == "" {
		return AgentResult{}, schemaViolation(`"justification" must not be empty`)
	}

	result.Other = []string{}
	if other, ok := fields["other"]; ok && !isNull(other) {
		if err := json.Unmarshal(other, &result.Other); err != nil {
			return AgentResult{}, schemaViolation(`"other" must be an array of strings`)
		}
	}

	if !slices.Contains(allowed, result.Main) {
		return AgentResult{}, &ValidationError{Kind: DisallowedMain, Value: result.Main}
	}

	return result, nil
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

func schemaViolation(detail string) *ValidationError {
	return &ValidationError{Kind: SchemaViolation, Detail: detail}
}
