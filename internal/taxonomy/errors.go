package taxonomy

import (
	"errors"
	"net/http"
)

// ErrInvalidDimension indicates an unrecognized dimension name.
var ErrInvalidDimension = errors.New("dimension must be customer, revenue, architecture, or industry")

// MapHTTPStatus maps taxonomy errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidDimension) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
