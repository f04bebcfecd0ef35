// Filter delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var filterDeleteTable string

var filterDeleteCmd = &cobra.Command{
	Use:   "delete <view-id> <filter-id>",
	Short: "Delete a filter from a view",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx, filterDeleteTable)
		if err != nil {
			return exitError(exitSysError, err.Error())
		}
		defer s.close()

		view, err := lookupView(s, args[0])
		if err != nil {
			return err
		}
		filter, err := lookupFilter(view, args[1])
		if err != nil {
			return err
		}
		if err := s.store.DeleteFilter(ctx, view, filter); err != nil {
			return exitError(exitSysError, fmt.Sprintf("delete filter: %s", err))
		}

		fmt.Printf("Deleted filter %s\n", args[1])
		return nil
	},
}

func init() {
	filterDeleteCmd.Flags().StringVar(&filterDeleteTable, "table", "", "table identifier (required)")
	filterDeleteCmd.MarkFlagRequired("table")
}
