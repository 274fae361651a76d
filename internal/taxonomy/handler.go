package taxonomy

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/taxonomist/pkg/handlers"
	"github.com/JaimeStill/taxonomist/pkg/routes"
)

// Handler exposes the task registry over HTTP.
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger.With("handler", "taxonomy"),
	}
}

// Routes returns the route group definition for taxonomy endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/dimensions",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{dimension}", Handler: h.Find},
		},
	}
}

// List returns every dimension with its allowed values.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, All())
}

// Find returns a single dimension by name.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	d, err := ParseDimension(r.PathValue("dimension"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	spec, err := Lookup(d)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, spec)
}
