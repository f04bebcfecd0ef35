// Filter add command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	filterAddTable string
	filterAddField string
	filterAddType  string
	filterAddValue string
)

var filterAddCmd = &cobra.Command{
	Use:   "add <view-id>",
	Short: "Add a filter to a view",
	Long: `Add a filter to a view. When --type is omitted the first filter type
compatible with the field's type is used.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx, filterAddTable)
		if err != nil {
			return exitError(exitSysError, err.Error())
		}
		defer s.close()

		view, err := lookupView(s, args[0])
		if err != nil {
			return err
		}
		field, err := s.fields.Get(ctx, filterAddField)
		if err != nil {
			if isNotFound(err) {
				return exitError(exitUserError, fmt.Sprintf("field %q not found", filterAddField))
			}
			return exitError(exitSysError, err.Error())
		}

		values := map[string]any{}
		if cmd.Flags().Changed("type") {
			values["type"] = filterAddType
		}
		if cmd.Flags().Changed("value") {
			values["value"] = filterAddValue
		}

		filter, err := s.store.CreateFilter(ctx, view, field, values)
		if err != nil {
			return exitError(exitUserError, fmt.Sprintf("add filter: %s", err))
		}

		if flagJSON {
			return printJSON(newFilterRow(filter))
		}
		fmt.Printf("Added %s filter %s on field %s\n", filter.Type, filter.ID, field.Name)
		return nil
	},
}

func init() {
	filterAddCmd.Flags().StringVar(&filterAddTable, "table", "", "table identifier (required)")
	filterAddCmd.Flags().StringVar(&filterAddField, "field", "", "field identifier (required)")
	filterAddCmd.Flags().StringVar(&filterAddType, "type", "", "filter type (default: first compatible)")
	filterAddCmd.Flags().StringVar(&filterAddValue, "value", "", "filter value")
	filterAddCmd.MarkFlagRequired("table")
	filterAddCmd.MarkFlagRequired("field")
}
