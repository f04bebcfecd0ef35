// View list command.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var viewListTable string

var viewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the views of a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx, viewListTable)
		if err != nil {
			return exitError(exitSysError, err.Error())
		}
		defer s.close()

		views := s.store.Items()
		if flagJSON {
			rows := make([]viewRow, 0, len(views))
			for _, v := range views {
				rows = append(rows, viewRow{
					ID:              v.ID,
					TableID:         v.TableID,
					Type:            v.Type,
					Name:            v.Name,
					Order:           v.Order,
					FiltersDisabled: v.FiltersDisabled,
					Filters:         len(v.Filters),
					Sorts:           len(v.Sorts),
				})
			}
			return printJSON(rows)
		}

		if len(views) == 0 {
			fmt.Println("No views.")
			return nil
		}
		for _, v := range views {
			fmt.Fprintf(os.Stdout, "%s  %-8s %-20s filters=%d sorts=%d\n",
				v.ID, v.Type, v.Name, len(v.Filters), len(v.Sorts))
		}
		return nil
	},
}

func init() {
	viewListCmd.Flags().StringVar(&viewListTable, "table", "", "table identifier (required)")
	viewListCmd.MarkFlagRequired("table")
}
