package api

import (
	"github.com/JaimeStill/taxonomist/internal/classifier"
	"github.com/JaimeStill/taxonomist/internal/config"
	"github.com/JaimeStill/taxonomist/internal/extraction"
	"github.com/JaimeStill/taxonomist/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Classifier     classifier.Config
	Extraction     extraction.Config
	HasCredentials bool
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Provider:  infra.Provider,
			Metrics:   infra.Metrics,
		},
		Classifier:     cfg.Classifier.Orchestrator(),
		Extraction:     cfg.Extraction,
		HasCredentials: cfg.Provider.HasCredentials(),
	}
}
