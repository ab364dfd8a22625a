package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/nexus/cmd"
	"github.com/thenoetrevino/nexus/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Command errors are printed by their formatter
		if !cli.Reported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
