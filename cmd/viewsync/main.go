// Package main provides the viewsync CLI: a local front end for the view
// synchronization store, persisting through the SQLite-backed resource
// services.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err)

	// Subcommands return coded errors instead of exiting directly so their
	// deferred backend teardown runs first.
	var coded *exitCodeError
	if errors.As(err, &coded) {
		os.Exit(coded.code)
	}
	os.Exit(exitUserError)
}
