// Field command group for the viewsync CLI. The CLI plays the sibling
// field-lifecycle role here: field changes run the authoritative cascade in
// the backend and then notify the store so it catches up locally.
package main

import (
	"github.com/spf13/cobra"

	"github.com/tablekit/viewsync/pkg/types"
)

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Manage the fields of a table",
}

func init() {
	fieldCmd.AddCommand(fieldAddCmd)
	fieldCmd.AddCommand(fieldListCmd)
	fieldCmd.AddCommand(fieldUpdateTypeCmd)
	fieldCmd.AddCommand(fieldDeleteCmd)
}

// fieldRow is the JSON shape printed for a field.
type fieldRow struct {
	ID      string `json:"id"`
	TableID string `json:"table_id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
}

func newFieldRow(f *types.Field) fieldRow {
	return fieldRow{ID: f.ID, TableID: f.TableID, Name: f.Name, Type: f.Type}
}
