// Package main provides the entry point for the localsearch CLI.
package main

import (
	"os"

	"localsearch/cmd/localsearch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
