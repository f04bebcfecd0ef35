// View command group for the viewsync CLI.
package main

import "github.com/spf13/cobra"

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Manage the views of a table",
}

func init() {
	viewCmd.AddCommand(viewListCmd)
	viewCmd.AddCommand(viewCreateCmd)
	viewCmd.AddCommand(viewUpdateCmd)
	viewCmd.AddCommand(viewDeleteCmd)
}

// viewRow is the JSON shape printed for a view.
type viewRow struct {
	ID              string `json:"id"`
	TableID         string `json:"table_id"`
	Type            string `json:"type"`
	Name            string `json:"name"`
	Order           int    `json:"order"`
	FiltersDisabled bool   `json:"filters_disabled"`
	Filters         int    `json:"filters"`
	Sorts           int    `json:"sorts"`
}
