// Field list command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fieldListTable string

var fieldListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the fields of a table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		backend, err := attachBackend()
		if err != nil {
			return exitError(exitSysError, err.Error())
		}
		defer backend.Detach()

		fields, err := backend.Fields().FetchAll(ctx, fieldListTable)
		if err != nil {
			return exitError(exitSysError, fmt.Sprintf("list fields: %s", err))
		}

		if flagJSON {
			rows := make([]fieldRow, 0, len(fields))
			for _, f := range fields {
				rows = append(rows, newFieldRow(f))
			}
			return printJSON(rows)
		}
		for _, f := range fields {
			fmt.Printf("%s  %-12s %s\n", f.ID, f.Type, f.Name)
		}
		return nil
	},
}

func init() {
	fieldListCmd.Flags().StringVar(&fieldListTable, "table", "", "table identifier (required)")
	fieldListCmd.MarkFlagRequired("table")
}
