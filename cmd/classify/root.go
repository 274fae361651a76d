package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/taxonomist/internal/classifier"
	"github.com/JaimeStill/taxonomist/internal/config"
	"github.com/JaimeStill/taxonomist/internal/extraction"
	"github.com/JaimeStill/taxonomist/internal/infrastructure"
)

type classifyOptions struct {
	configPath  string
	name        string
	description string
	file        string
	pdf         string
}

func newRootCmd() *cobra.Command {
	opts := &classifyOptions{}

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a business description",
		Long: `Classifies a business along four dimensions (customer, revenue,
architecture, industry) using the configured completion provider.

The description can be given inline, read from a text file, or extracted
from a PDF. The result is printed as JSON; on failure the failure
descriptor is printed and the exit status is non-zero.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runClassify(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.BaseConfigFile, "Path to the base TOML config")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Business name")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Business description")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the description from a text file")
	cmd.Flags().StringVar(&opts.pdf, "pdf", "", "Extract the description from a PDF")

	cmd.MarkFlagRequired("name")
	cmd.MarkFlagsMutuallyExclusive("description", "file", "pdf")
	cmd.MarkFlagsOneRequired("description", "file", "pdf")

	cmd.AddCommand(newDimensionsCmd())
	cmd.AddCommand(newOpenAPICmd(&opts.configPath))

	return cmd
}

func runClassify(ctx context.Context, stdout, stderr io.Writer, opts *classifyOptions) error {
	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return err
	}

	infra, err := infrastructure.NewWithOutput(cfg, stderr)
	if err != nil {
		return err
	}
	logger := infra.Logger.With("module", "cli")

	description, err := readDescription(ctx, cfg, infra, opts)
	if err != nil {
		return err
	}

	sys := classifier.New(infra.Provider, cfg.Classifier.Orchestrator(), logger, nil)

	resp, err := sys.Classify(ctx, classifier.Request{
		Name:        opts.name,
		Description: description,
	})
	if err != nil {
		writeJSON(stdout, classifier.Describe(err, infra.Provider.Name()))
		return err
	}

	return writeJSON(stdout, resp)
}

func readDescription(ctx context.Context, cfg *config.Config, infra *infrastructure.Infrastructure, opts *classifyOptions) (string, error) {
	switch {
	case opts.file != "":
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", fmt.Errorf("read description: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	case opts.pdf != "":
		data, err := os.ReadFile(opts.pdf)
		if err != nil {
			return "", fmt.Errorf("read pdf: %w", err)
		}
		doc, err := extraction.New(cfg.Extraction, infra.Logger).Extract(ctx, data)
		if err != nil {
			return "", err
		}
		return doc.Text, nil
	default:
		return opts.description, nil
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
