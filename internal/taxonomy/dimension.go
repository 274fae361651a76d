package taxonomy

import (
	"encoding/json"
	"slices"
)

// Dimension identifies one independent axis of business classification.
type Dimension string

// Classification dimensions, in response order.
const (
	Customer     Dimension = "customer"
	Revenue      Dimension = "revenue"
	Architecture Dimension = "architecture"
	Industry     Dimension = "industry"
)

var dimensions = []Dimension{
	Customer,
	Revenue,
	Architecture,
	Industry,
}

// Dimensions returns every dimension in fixed response order.
func Dimensions() []Dimension {
	return slices.Clone(dimensions)
}

// UnmarshalJSON validates that the decoded string is a known dimension.
func (d *Dimension) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseDimension(raw)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// ParseDimension validates a string as a known dimension.
// Returns ErrInvalidDimension if the value is not recognized.
func ParseDimension(s string) (Dimension, error) {
	v := Dimension(s)
	if !slices.Contains(dimensions, v) {
		return "", ErrInvalidDimension
	}
	return v, nil
}
