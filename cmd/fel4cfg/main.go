// Package main is the entry point for the fel4cfg CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thoreinstein/fel4cfg/cmd/fel4cfg/commands"
	cliErrors "github.com/thoreinstein/fel4cfg/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var exitErr *cliErrors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		os.Exit(cliErrors.ExitUser)
	}
}
