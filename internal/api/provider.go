package api

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/taxonomist/pkg/handlers"
	"github.com/JaimeStill/taxonomist/pkg/provider"
	"github.com/JaimeStill/taxonomist/pkg/routes"
)

// ProviderInfo describes the configured completion provider. It never
// carries the credential itself.
type ProviderInfo struct {
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	HasAPIKey bool   `json:"hasApiKey"`
}

type providerHandler struct {
	info   ProviderInfo
	logger *slog.Logger
}

func newProviderHandler(p provider.Provider, hasCredentials bool, logger *slog.Logger) *providerHandler {
	return &providerHandler{
		info: ProviderInfo{
			Provider:  p.Name(),
			Model:     p.Model(),
			HasAPIKey: hasCredentials,
		},
		logger: logger.With("handler", "provider"),
	}
}

func (h *providerHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/provider",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.find},
		},
	}
}

func (h *providerHandler) find(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.info)
}
