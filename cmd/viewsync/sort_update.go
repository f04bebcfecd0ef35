// Sort update command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	sortUpdateTable string
	sortUpdateOrder string
	sortUpdateField string
)

var sortUpdateCmd = &cobra.Command{
	Use:   "update <view-id> <sort-id>",
	Short: "Update a sort rule",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		values := map[string]any{}
		if cmd.Flags().Changed("order") {
			values["order"] = sortUpdateOrder
		}
		if cmd.Flags().Changed("field") {
			values["field"] = sortUpdateField
		}
		if len(values) == 0 {
			return exitError(exitUserError, "update: at least one of --order or --field must be provided")
		}

		s, err := openSession(ctx, sortUpdateTable)
		if err != nil {
			return exitError(exitSysError, err.Error())
		}
		defer s.close()

		view, err := lookupView(s, args[0])
		if err != nil {
			return err
		}
		srt, err := lookupSort(view, args[1])
		if err != nil {
			return err
		}
		if err := s.store.UpdateSort(ctx, srt, values); err != nil {
			return exitError(exitUserError, fmt.Sprintf("update sort: %s", err))
		}

		if flagJSON {
			return printJSON(newSortRow(srt))
		}
		fmt.Printf("Updated sort %s\n", srt.ID)
		return nil
	},
}

func init() {
	sortUpdateCmd.Flags().StringVar(&sortUpdateTable, "table", "", "table identifier (required)")
	sortUpdateCmd.Flags().StringVar(&sortUpdateOrder, "order", "", "new sort direction (ASC or DESC)")
	sortUpdateCmd.Flags().StringVar(&sortUpdateField, "field", "", "new field identifier")
	sortUpdateCmd.MarkFlagRequired("table")
}
