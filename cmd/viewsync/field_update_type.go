// Field update-type command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fieldUpdateTypeTable string

var fieldUpdateTypeCmd = &cobra.Command{
	Use:   "update-type <field-id> <type>",
	Short: "Change a field's type",
	Long: `Change a field's type. Filters whose type is incompatible with the new
field type are removed, as are sorts when the new type cannot be sorted.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx, fieldUpdateTypeTable)
		if err != nil {
			return exitError(exitSysError, err.Error())
		}
		defer s.close()

		fieldType, ok := s.reg.FieldType(args[1])
		if !ok {
			return exitError(exitUserError, fmt.Sprintf("unknown field type %q", args[1]))
		}

		field, err := s.fields.UpdateType(ctx, s.reg, args[0], args[1])
		if err != nil {
			if isNotFound(err) {
				return exitError(exitUserError, fmt.Sprintf("field %q not found", args[0]))
			}
			return exitError(exitSysError, fmt.Sprintf("update field type: %s", err))
		}
		s.store.FieldUpdated(field, fieldType)

		if flagJSON {
			return printJSON(newFieldRow(field))
		}
		fmt.Printf("Field %s is now %s\n", field.Name, field.Type)
		return nil
	},
}

func init() {
	fieldUpdateTypeCmd.Flags().StringVar(&fieldUpdateTypeTable, "table", "", "table identifier (required)")
	fieldUpdateTypeCmd.MarkFlagRequired("table")
}
