package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/taxonomist/internal/api"
	"github.com/JaimeStill/taxonomist/internal/config"
	"github.com/JaimeStill/taxonomist/pkg/openapi"
)

func newOpenAPICmd(configPath *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Write the HTTP API's OpenAPI document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(*configPath)
			if err != nil {
				return err
			}

			spec := api.Spec(cfg)
			if output == "" {
				data, err := openapi.MarshalJSON(spec)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}

			if err := openapi.WriteJSON(spec, output); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}
