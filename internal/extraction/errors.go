package extraction

import (
	"errors"
	"net/http"
)

// Domain errors for text extraction.
var (
	ErrInvalidFile      = errors.New("invalid file")
	ErrNotPDF           = errors.New("only PDF files are supported")
	ErrFileTooLarge     = errors.New("file exceeds maximum upload size")
	ErrUnreadablePDF    = errors.New("PDF could not be read")
	ErrInsufficientText = errors.New("PDF contains insufficient text; image-only PDFs require OCR, which is not supported")
)

// MapHTTPStatus maps extraction errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidFile), errors.Is(err, ErrNotPDF):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnreadablePDF), errors.Is(err, ErrInsufficientText):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
