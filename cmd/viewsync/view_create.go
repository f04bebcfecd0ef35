// View create command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tablekit/viewsync/pkg/registry"
)

var (
	viewCreateTable string
	viewCreateType  string
)

var viewCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx, viewCreateTable)
		if err != nil {
			return exitError(exitSysError, err.Error())
		}
		defer s.close()

		if !s.reg.Exists(registry.CategoryView, viewCreateType) {
			return exitError(exitUserError, fmt.Sprintf("unknown view type %q", viewCreateType))
		}

		view, err := s.store.Create(ctx, viewCreateType, viewCreateTable, map[string]any{
			"name": args[0],
		})
		if err != nil {
			return exitError(exitSysError, fmt.Sprintf("create view: %s", err))
		}

		if flagJSON {
			return printJSON(viewRow{
				ID: view.ID, TableID: view.TableID, Type: view.Type,
				Name: view.Name, Order: view.Order,
			})
		}
		fmt.Printf("Created view %s (%s)\n", view.ID, view.Name)
		return nil
	},
}

func init() {
	viewCreateCmd.Flags().StringVar(&viewCreateTable, "table", "", "table identifier (required)")
	viewCreateCmd.Flags().StringVar(&viewCreateType, "type", registry.ViewTypeGrid, "view type")
	viewCreateCmd.MarkFlagRequired("table")
}
