package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"saints/internal/catalog"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Show the configured volumes and podcast seasons",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, 8)
			for _, col := range catalog.Volumes(cfg) {
				rows = append(rows, []string{string(col.Kind), col.Name, col.Slug})
			}
			for _, col := range catalog.Podcasts(cfg) {
				rows = append(rows, []string{string(col.Kind), col.Name, col.Slug})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Kind", "Name", "Slug"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
