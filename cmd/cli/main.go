// Package main is the entry point for the quoteforge CLI.
package main

import (
	"os"

	"quoteforge/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
