// View update command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	viewUpdateTable           string
	viewUpdateName            string
	viewUpdateFiltersDisabled bool
)

var viewUpdateCmd = &cobra.Command{
	Use:   "update <view-id>",
	Short: "Update a view's attributes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		values := map[string]any{}
		if cmd.Flags().Changed("name") {
			values["name"] = viewUpdateName
		}
		if cmd.Flags().Changed("filters-disabled") {
			values["filters_disabled"] = viewUpdateFiltersDisabled
		}
		if len(values) == 0 {
			return exitError(exitUserError, "update: at least one of --name or --filters-disabled must be provided")
		}

		s, err := openSession(ctx, viewUpdateTable)
		if err != nil {
			return exitError(exitSysError, err.Error())
		}
		defer s.close()

		view, err := lookupView(s, args[0])
		if err != nil {
			return err
		}
		if err := s.store.Update(ctx, view, values); err != nil {
			return exitError(exitSysError, fmt.Sprintf("update view: %s", err))
		}

		if flagJSON {
			return printJSON(viewRow{
				ID: view.ID, TableID: view.TableID, Type: view.Type,
				Name: view.Name, Order: view.Order, FiltersDisabled: view.FiltersDisabled,
				Filters: len(view.Filters), Sorts: len(view.Sorts),
			})
		}
		fmt.Printf("Updated view %s\n", view.ID)
		return nil
	},
}

func init() {
	viewUpdateCmd.Flags().StringVar(&viewUpdateTable, "table", "", "table identifier (required)")
	viewUpdateCmd.Flags().StringVar(&viewUpdateName, "name", "", "new view name")
	viewUpdateCmd.Flags().BoolVar(&viewUpdateFiltersDisabled, "filters-disabled", false, "disable the view's filters")
	viewUpdateCmd.MarkFlagRequired("table")
}
