package main

import (
	"errors"
	"fmt"

	"notesgraph/internal/domain"
	"notesgraph/internal/loader"

	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <dataset>",
		Short: "Check a dataset and print its graph statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cliLogger()
			defer func() { _ = logger.Sync() }()

			out := cmd.OutOrStdout()
			ds, err := loader.New(nil, logger).Load(cmd.Context(), args[0])
			if err != nil {
				var verr *domain.ValidationError
				if errors.As(err, &verr) {
					bad.Fprintf(out, "%s is malformed\n", args[0])
					for _, p := range verr.Problems {
						fmt.Fprintf(out, "  %s %s\n", bad.Sprint("x"), p)
					}
					return fmt.Errorf("%d problems", len(verr.Problems))
				}
				return err
			}

			stats := domain.DeriveGraph(ds).Stats()
			good.Fprintf(out, "%s is valid\n", args[0])
			fmt.Fprintf(out, "  %s %d\n", subtle.Sprint("nodes    "), stats.Nodes)
			fmt.Fprintf(out, "  %s %d\n", subtle.Sprint("links    "), stats.Links)
			fmt.Fprintf(out, "  %s %d\n", subtle.Sprint("isolated "), stats.Isolated)
			fmt.Fprintf(out, "  %s %d\n", subtle.Sprint("max deg  "), stats.MaxDegree)
			if stats.DroppedLinks > 0 {
				warn.Fprintf(out, "  %d links point at unknown notes and will be skipped\n", stats.DroppedLinks)
			}
			return nil
		},
	}
}
