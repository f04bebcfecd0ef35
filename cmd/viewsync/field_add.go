// Field add command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tablekit/viewsync/pkg/registry"
)

var (
	fieldAddTable string
	fieldAddType  string
)

var fieldAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a field to a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		backend, err := attachBackend()
		if err != nil {
			return exitError(exitSysError, err.Error())
		}
		defer backend.Detach()

		if _, ok := registry.NewBuiltin().FieldType(fieldAddType); !ok {
			return exitError(exitUserError, fmt.Sprintf("unknown field type %q", fieldAddType))
		}

		field, err := backend.Fields().Create(ctx, fieldAddTable, args[0], fieldAddType)
		if err != nil {
			return exitError(exitSysError, fmt.Sprintf("add field: %s", err))
		}

		if flagJSON {
			return printJSON(newFieldRow(field))
		}
		fmt.Printf("Added %s field %s (%s)\n", field.Type, field.Name, field.ID)
		return nil
	},
}

func init() {
	fieldAddCmd.Flags().StringVar(&fieldAddTable, "table", "", "table identifier (required)")
	fieldAddCmd.Flags().StringVar(&fieldAddType, "type", "text", "field type")
	fieldAddCmd.MarkFlagRequired("table")
}
