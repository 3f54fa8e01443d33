// Package main is the entry point for the purge-comments CLI.
package main

import (
	"fmt"
	"os"

	"github.com/danielolaszy/purge/cmd"
	"github.com/danielolaszy/purge/internal/actions"
	"github.com/danielolaszy/purge/internal/logging"
)

// main executes the root command. On failure it logs the error, prints it with
// its stack trace, marks the Actions step as failed and exits 1.
func main() {
	if err := cmd.Execute(); err != nil {
		logging.Error("command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		if actions.Enabled() {
			actions.SetFailed(os.Stdout, err.Error())
		}
		os.Exit(1)
	}
}
