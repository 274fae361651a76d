package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/taxonomist/pkg/formatting"
	"github.com/JaimeStill/taxonomist/pkg/handlers"
	"github.com/JaimeStill/taxonomist/pkg/routes"
)

// MaxRequestBytes caps the classify request body.
const MaxRequestBytes int64 = 1 << 20

// Handler provides the HTTP endpoint for classification.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "classifier"),
	}
}

// Routes returns the route group definition for classification endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/classify",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Classify},
		},
	}
}

// Classify decodes a {name, description} body and returns all four
// classifications, or a failure descriptor.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBytes)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.fail(w, fmt.Errorf("%w: limit %s", ErrRequestTooLarge, formatting.FormatBytes(MaxRequestBytes, 0)))
			return
		}
		h.fail(w, &InputError{Field: "body", Reason: "must be a JSON object with name and description"})
		return
	}

	resp, err := h.sys.Classify(r.Context(), req)
	if err != nil {
		h.fail(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	status := MapHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("classification request failed", "error", err, "status", status)
	} else {
		h.logger.Warn("classification request rejected", "error", err, "status", status)
	}
	handlers.RespondJSON(w, status, Describe(err, h.sys.Provider().Name()))
}
