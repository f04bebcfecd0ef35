// Sort command group for the viewsync CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tablekit/viewsync/pkg/types"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Manage the sort rules of a view",
}

func init() {
	sortCmd.AddCommand(sortAddCmd)
	sortCmd.AddCommand(sortUpdateCmd)
	sortCmd.AddCommand(sortDeleteCmd)
}

// sortRow is the JSON shape printed for a sort.
type sortRow struct {
	ID    string `json:"id"`
	View  string `json:"view_id"`
	Field string `json:"field_id"`
	Order string `json:"order"`
}

func newSortRow(s *types.Sort) sortRow {
	return sortRow{ID: s.ID, View: s.ViewID, Field: s.FieldID, Order: s.Order}
}

// lookupSort resolves a sort id on a view.
func lookupSort(view *types.View, id string) (*types.Sort, error) {
	srt := view.SortByID(id)
	if srt == nil {
		return nil, exitError(exitUserError, fmt.Sprintf("sort %q not found on view %s", id, view.ID))
	}
	return srt, nil
}
