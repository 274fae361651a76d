package main

import (
	"github.com/spf13/cobra"

	"github.com/JaimeStill/taxonomist/internal/taxonomy"
)

func newDimensionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dimensions [dimension]",
		Short: "Print classification dimensions and their allowed values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeJSON(cmd.OutOrStdout(), taxonomy.All())
			}

			spec, err := taxonomy.Lookup(taxonomy.Dimension(args[0]))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), spec)
		},
	}
}
