// Sort delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sortDeleteTable string

var sortDeleteCmd = &cobra.Command{
	Use:   "delete <view-id> <sort-id>",
	Short: "Delete a sort rule from a view",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx, sortDeleteTable)
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
		if err := s.store.DeleteSort(ctx, view, srt); err != nil {
			return exitError(exitSysError, fmt.Sprintf("delete sort: %s", err))
		}

		fmt.Printf("Deleted sort %s\n", args[1])
		return nil
	},
}

func init() {
	sortDeleteCmd.Flags().StringVar(&sortDeleteTable, "table", "", "table identifier (required)")
	sortDeleteCmd.MarkFlagRequired("table")
}
