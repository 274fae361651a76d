// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, completion provider, metrics) that domain systems require.
package infrastructure

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/JaimeStill/taxonomist/internal/config"
	"github.com/JaimeStill/taxonomist/pkg/lifecycle"
	"github.com/JaimeStill/taxonomist/pkg/provider"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, the completion provider, and the metrics registry.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Provider  provider.Provider
	Metrics   *prometheus.Registry
}

// New creates an Infrastructure from the application configuration, logging to stderr.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput is New with an explicit log destination.
func NewWithOutput(cfg *config.Config, out io.Writer) (*Infrastructure, error) {
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.Level()}))

	p, err := provider.New(&cfg.Provider)
	if err != nil {
		return nil, fmt.Errorf("provider init failed: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Provider:  p,
		Metrics:   reg,
	}, nil
}

// Start registers infrastructure hooks with the lifecycle coordinator.
// A provider without credentials still starts; classification requests
// report the missing key.
func (i *Infrastructure) Start(cfg *config.Config) error {
	logger := i.Logger.With("system", "provider")

	i.Lifecycle.OnStartup(func() {
		if !cfg.Provider.HasCredentials() {
			logger.Warn("no credentials configured", "provider", i.Provider.Name())
			return
		}
		logger.Info("provider ready", "provider", i.Provider.Name(), "model", i.Provider.Model())
	})

	return nil
}
