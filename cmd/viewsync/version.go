// Version command for the viewsync CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the CLI version string.
const version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the viewsync version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("viewsync", version)
	},
}
