// Field delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fieldDeleteTable string

var fieldDeleteCmd = &cobra.Command{
	Use:   "delete <field-id>",
	Short: "Delete a field",
	Long: `Delete a field together with every filter and sort that references it,
in storage and in the loaded views.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx, fieldDeleteTable)
		if err != nil {
			return exitError(exitSysError, err.Error())
		}
		defer s.close()

		field, err := s.fields.Get(ctx, args[0])
		if err != nil {
			if isNotFound(err) {
				return exitError(exitUserError, fmt.Sprintf("field %q not found", args[0]))
			}
			return exitError(exitSysError, err.Error())
		}

		if err := s.fields.Delete(ctx, field.ID); err != nil {
			return exitError(exitSysError, fmt.Sprintf("delete field: %s", err))
		}
		s.store.FieldDeleted(field)

		if flagJSON {
			return printJSON(map[string]string{"deleted": field.ID})
		}
		fmt.Printf("Deleted field %s\n", field.Name)
		return nil
	},
}

func init() {
	fieldDeleteCmd.Flags().StringVar(&fieldDeleteTable, "table", "", "table identifier (required)")
	fieldDeleteCmd.MarkFlagRequired("table")
}
