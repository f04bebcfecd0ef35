// Filter update command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	filterUpdateTable string
	filterUpdateField string
	filterUpdateType  string
	filterUpdateValue string
)

var filterUpdateCmd = &cobra.Command{
	Use:   "update <view-id> <filter-id>",
	Short: "Update a filter's attributes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		values := map[string]any{}
		if cmd.Flags().Changed("field") {
			values["field"] = filterUpdateField
		}
		if cmd.Flags().Changed("type") {
			values["type"] = filterUpdateType
		}
		if cmd.Flags().Changed("value") {
			values["value"] = filterUpdateValue
		}
		if len(values) == 0 {
			return exitError(exitUserError, "update: at least one of --field, --type, or --value must be provided")
		}

		s, err := openSession(ctx, filterUpdateTable)
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
		if err := s.store.UpdateFilter(ctx, filter, values); err != nil {
			return exitError(exitUserError, fmt.Sprintf("update filter: %s", err))
		}

		if flagJSON {
			return printJSON(newFilterRow(filter))
		}
		fmt.Printf("Updated filter %s\n", filter.ID)
		return nil
	},
}

func init() {
	filterUpdateCmd.Flags().StringVar(&filterUpdateTable, "table", "", "table identifier (required)")
	filterUpdateCmd.Flags().StringVar(&filterUpdateField, "field", "", "new field identifier")
	filterUpdateCmd.Flags().StringVar(&filterUpdateType, "type", "", "new filter type")
	filterUpdateCmd.Flags().StringVar(&filterUpdateValue, "value", "", "new filter value")
	filterUpdateCmd.MarkFlagRequired("table")
}
