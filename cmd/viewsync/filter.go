// Filter command group for the viewsync CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tablekit/viewsync/pkg/types"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Manage the filters of a view",
}

func init() {
	filterCmd.AddCommand(filterAddCmd)
	filterCmd.AddCommand(filterUpdateCmd)
	filterCmd.AddCommand(filterDeleteCmd)
}

// filterRow is the JSON shape printed for a filter.
type filterRow struct {
	ID    string `json:"id"`
	View  string `json:"view_id"`
	Field string `json:"field_id"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

func newFilterRow(f *types.Filter) filterRow {
	return filterRow{ID: f.ID, View: f.ViewID, Field: f.FieldID, Type: f.Type, Value: f.Value}
}

// lookupFilter resolves a filter id on a view.
func lookupFilter(view *types.View, id string) (*types.Filter, error) {
	f := view.FilterByID(id)
	if f == nil {
		return nil, exitError(exitUserError, fmt.Sprintf("filter %q not found on view %s", id, view.ID))
	}
	return f, nil
}
