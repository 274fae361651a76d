package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrParseFailed is returned when content cannot be decoded as JSON.
var ErrParseFailed = errors.New("failed to parse response")

// Parse unmarshals content as JSON into T. Content is expected to have
// already passed through Normalize; only surrounding whitespace is trimmed.
func Parse[T any](content string) (T, error) {
	var result T
	content = strings.TrimSpace(content)

	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return result, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	return result, nil
}
