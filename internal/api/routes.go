package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/taxonomist/internal/config"
	"github.com/JaimeStill/taxonomist/internal/taxonomy"
	"github.com/JaimeStill/taxonomist/pkg/openapi"
	"github.com/JaimeStill/taxonomist/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) error {
	spec, err := openapi.MarshalJSON(Spec(cfg))
	if err != nil {
		return fmt.Errorf("openapi: %w", err)
	}

	routes.Register(
		mux,
		domain.Classifier.Handler().Routes(),
		domain.Extraction.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		taxonomy.NewHandler(runtime.Logger).Routes(),
		newProviderHandler(runtime.Provider, runtime.HasCredentials, runtime.Logger).routes(),
		routes.Group{
			Routes: []routes.Route{
				{Method: "GET", Pattern: "/openapi.json", Handler: openapi.ServeSpec(spec)},
			},
		},
	)

	return nil
}
