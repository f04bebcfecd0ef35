// View delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var viewDeleteTable string

var viewDeleteCmd = &cobra.Command{
	Use:   "delete <view-id>",
	Short: "Delete a view and its filters and sorts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx, viewDeleteTable)
		if err != nil {
			return exitError(exitSysError, err.Error())
		}
		defer s.close()

		view, err := lookupView(s, args[0])
		if err != nil {
			return err
		}
		// Select first so the navigation target gets computed, mirroring
		// deleting the view a user is looking at.
		if err := s.store.Select(view); err != nil {
			return exitError(exitSysError, err.Error())
		}

		target, err := s.store.Delete(ctx, view)
		if err != nil {
			return exitError(exitSysError, fmt.Sprintf("delete view: %s", err))
		}

		if flagJSON {
			return printJSON(map[string]any{
				"deleted": view.ID,
				"target":  target,
			})
		}
		fmt.Printf("Deleted view %s\n", view.ID)
		if !target.IsZero() {
			fmt.Printf("Navigate to %s\n", target.Route)
		}
		return nil
	},
}

func init() {
	viewDeleteCmd.Flags().StringVar(&viewDeleteTable, "table", "", "table identifier (required)")
	viewDeleteCmd.MarkFlagRequired("table")
}
