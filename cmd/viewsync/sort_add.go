// Sort add command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tablekit/viewsync/pkg/types"
)

var (
	sortAddTable string
	sortAddField string
	sortAddOrder string
)

var sortAddCmd = &cobra.Command{
	Use:   "add <view-id>",
	Short: "Add a sort rule to a view",
	Long: `Add a sort rule to a view. A view carries at most one sort per field:
when the field is already sorted on, the existing rule's direction is
updated instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx, sortAddTable)
		if err != nil {
			return exitError(exitSysError, err.Error())
		}
		defer s.close()

		view, err := lookupView(s, args[0])
		if err != nil {
			return err
		}
		field, err := s.fields.Get(ctx, sortAddField)
		if err != nil {
			if isNotFound(err) {
				return exitError(exitUserError, fmt.Sprintf("field %q not found", sortAddField))
			}
			return exitError(exitSysError, err.Error())
		}

		// One sort per (view, field): reuse the existing rule.
		if existing := s.store.SortForField(view, field.ID); existing != nil {
			if err := s.store.UpdateSort(ctx, existing, map[string]any{"order": sortAddOrder}); err != nil {
				return exitError(exitUserError, fmt.Sprintf("update sort: %s", err))
			}
			if flagJSON {
				return printJSON(newSortRow(existing))
			}
			fmt.Printf("Updated sort %s to %s\n", existing.ID, existing.Order)
			return nil
		}

		srt, err := s.store.CreateSort(ctx, view, field, map[string]any{"order": sortAddOrder})
		if err != nil {
			return exitError(exitUserError, fmt.Sprintf("add sort: %s", err))
		}

		if flagJSON {
			return printJSON(newSortRow(srt))
		}
		fmt.Printf("Added %s sort %s on field %s\n", srt.Order, srt.ID, field.Name)
		return nil
	},
}

func init() {
	sortAddCmd.Flags().StringVar(&sortAddTable, "table", "", "table identifier (required)")
	sortAddCmd.Flags().StringVar(&sortAddField, "field", "", "field identifier (required)")
	sortAddCmd.Flags().StringVar(&sortAddOrder, "order", types.SortOrderASC, "sort direction (ASC or DESC)")
	sortAddCmd.MarkFlagRequired("table")
	sortAddCmd.MarkFlagRequired("field")
}
