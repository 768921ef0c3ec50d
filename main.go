package main

import (
	"os"

	"github.com/posit-dev/connect-gallery-action/cmd"
)

func main() {
	// Execute the root command.
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
